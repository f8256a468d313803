package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardHeist_Go/internal/database/memory"
	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/utils"
)

var testCards = []domain.Card{
	{ID: 3, Name: "Gamma", Rarity: domain.RarityCommon},
	{ID: 1, Name: "Alpha", Rarity: domain.RarityCommon},
	{ID: 2, Name: "Beta", Rarity: domain.RarityRare},
}

func TestNew(t *testing.T) {
	c, err := New(testCards)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []int{1, 2, 3}, ids(c.All()))
	assert.Equal(t, []int{1, 3}, ids(c.ByRarity(domain.RarityCommon)))
	assert.Empty(t, c.ByRarity(domain.RarityEpic))

	_, err = New([]domain.Card{{ID: 1, Rarity: domain.RarityCommon}, {ID: 1, Rarity: domain.RarityRare}})
	assert.True(t, errors.Is(err, ErrDuplicateCardID))

	_, err = New([]domain.Card{{ID: 1, Rarity: "mythic"}})
	assert.True(t, errors.Is(err, domain.ErrInvalidRarity))
}

func TestLookup(t *testing.T) {
	c, err := New(testCards)
	require.NoError(t, err)

	got, err := c.Lookup([]int{1, 2, 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Beta", got[2].Name)

	_, err = c.Lookup([]int{1, 99})
	assert.True(t, errors.Is(err, domain.ErrCardNotFound))

	_, err = c.Get(42)
	assert.True(t, errors.Is(err, domain.ErrCardNotFound))
}

func TestRandom(t *testing.T) {
	c, err := New(testCards)
	require.NoError(t, err)

	card, err := c.Random(utils.NewSequenceSampler(nil, []int{1}), domain.RarityCommon)
	require.NoError(t, err)
	assert.Equal(t, 3, card.ID)

	_, err = c.Random(utils.NewSampler(), domain.RarityLegendary)
	assert.True(t, errors.Is(err, domain.ErrEmptyTier))
}

func TestLoader_EmbeddedSeed(t *testing.T) {
	l, err := NewLoader()
	require.NoError(t, err)

	seed, err := l.Load("")
	require.NoError(t, err)
	require.NotEmpty(t, seed.Cards)

	c, err := New(seed.Cards)
	require.NoError(t, err)
	for _, r := range domain.Rarities {
		assert.NotEmpty(t, c.ByRarity(r), "default seed should populate %s", r)
	}
}

func TestLoader_Parse(t *testing.T) {
	l, err := NewLoader()
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "valid", data: `{"version": "1", "cards": [{"id": 1, "name": "A", "rarity": "common"}]}`},
		{name: "unknown rarity", data: `{"version": "1", "cards": [{"id": 1, "name": "A", "rarity": "mythic"}]}`, wantErr: true},
		{name: "missing name", data: `{"version": "1", "cards": [{"id": 1, "rarity": "common"}]}`, wantErr: true},
		{name: "no cards", data: `{"version": "1", "cards": []}`, wantErr: true},
		{name: "duplicate ids", data: `{"version": "1", "cards": [{"id": 1, "name": "A", "rarity": "common"}, {"id": 1, "name": "B", "rarity": "rare"}]}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Parse([]byte(tt.data), "test")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoader_LoadFile(t *testing.T) {
	l, err := NewLoader()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": "2", "cards": [{"id": 7, "name": "Z", "rarity": "epic"}]}`), 0o644))

	seed, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2", seed.Version)

	_, err = l.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNewLoaderWithSchema(t *testing.T) {
	strict := []byte(`{
		"type": "object",
		"required": ["version", "cards"],
		"properties": {"version": {"const": "locked"}}
	}`)
	l, err := NewLoaderWithSchema(strict)
	require.NoError(t, err)

	_, err = l.Parse([]byte(`{"version": "1", "cards": [{"id": 1, "name": "A", "rarity": "common"}]}`), "test")
	assert.Error(t, err)

	seed, err := l.Parse([]byte(`{"version": "locked", "cards": [{"id": 1, "name": "A", "rarity": "common"}]}`), "test")
	require.NoError(t, err)
	assert.Len(t, seed.Cards, 1)

	_, err = NewLoaderWithSchema([]byte(`{not json`))
	assert.Error(t, err)
}

func TestSync(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.UpsertCards(ctx, []domain.Card{{ID: 50, Name: "Old", Rarity: domain.RarityEpic}}))

	c, err := Sync(ctx, store, &Seed{Version: "1", Cards: testCards})
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len(), "previously stored cards remain resolvable")
	_, err = c.Get(50)
	assert.NoError(t, err)
}

func ids(cards []domain.Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}
