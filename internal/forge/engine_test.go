package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CardHeist_Go/internal/domain"
)

func owned(r domain.Rarity, qty int) domain.OwnedCard {
	return domain.OwnedCard{Card: domain.Card{Rarity: r}, Quantity: qty}
}

func TestPreviewWeight(t *testing.T) {
	assert.Equal(t, 0, PreviewWeight(nil))
	assert.Equal(t, 5, PreviewWeight([]domain.OwnedCard{owned(domain.RarityCommon, 5)}))
	assert.Equal(t, 1+5+11+23+41, PreviewWeight([]domain.OwnedCard{
		owned(domain.RarityCommon, 1),
		owned(domain.RarityUncommon, 1),
		owned(domain.RarityRare, 1),
		owned(domain.RarityEpic, 1),
		owned(domain.RarityLegendary, 1),
	}))
	assert.Equal(t, 22, PreviewWeight([]domain.OwnedCard{owned(domain.RarityRare, 2)}))
}

func TestApplyModifier(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{0.0, 5},
		{0.29999, 5},
		{0.3, 20},
		{0.59999, 20},
		{0.6, 10},
		{0.99, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ApplyModifier(10, tt.v), "v=%v", tt.v)
	}
	assert.Equal(t, 2.5, ApplyModifier(5, 0.1), "halving keeps the fraction")
}

func TestTierForWeight_Boundaries(t *testing.T) {
	tests := []struct {
		weight float64
		want   domain.Rarity
	}{
		{0, domain.RarityCommon},
		{4.5, domain.RarityCommon},
		{5, domain.RarityUncommon},
		{10.5, domain.RarityUncommon},
		{11, domain.RarityRare},
		{22, domain.RarityRare},
		{23, domain.RarityEpic},
		{40, domain.RarityEpic},
		{41, domain.RarityLegendary},
		{1000, domain.RarityLegendary},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForWeight(tt.weight), "weight=%v", tt.weight)
	}
}

func TestResolve(t *testing.T) {
	cards := []domain.OwnedCard{owned(domain.RarityCommon, 5)}

	w, r := Resolve(cards, func() float64 { return 0.9 })
	assert.Equal(t, 5.0, w)
	assert.Equal(t, domain.RarityUncommon, r)

	w, r = Resolve(cards, func() float64 { return 0.1 })
	assert.Equal(t, 2.5, w)
	assert.Equal(t, domain.RarityCommon, r)

	w, r = Resolve(cards, func() float64 { return 0.45 })
	assert.Equal(t, 10.0, w)
	assert.Equal(t, domain.RarityUncommon, r)
}
