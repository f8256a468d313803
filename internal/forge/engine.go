package forge

import (
	"github.com/osse101/CardHeist_Go/internal/domain"
)

// tierThresholds maps an adjusted weight to a tier: the first threshold the
// weight is strictly below wins, otherwise legendary
var tierThresholds = []struct {
	below  float64
	rarity domain.Rarity
}{
	{5, domain.RarityCommon},
	{11, domain.RarityUncommon},
	{23, domain.RarityRare},
	{41, domain.RarityEpic},
}

// PreviewWeight sums the per-rarity weight of every committed unit
func PreviewWeight(cards []domain.OwnedCard) int {
	total := 0
	for _, c := range cards {
		total += c.Rarity.Weight() * c.Quantity
	}
	return total
}

// ApplyModifier halves the weight when v < 0.3, doubles it when v < 0.6,
// and leaves it unchanged otherwise
func ApplyModifier(weight int, v float64) float64 {
	w := float64(weight)
	switch {
	case v < domain.ForgeHalveBelow:
		return w / 2
	case v < domain.ForgeDoubleBelow:
		return w * 2
	default:
		return w
	}
}

// TierForWeight resolves an adjusted weight to its output tier
func TierForWeight(weight float64) domain.Rarity {
	for _, t := range tierThresholds {
		if weight < t.below {
			return t.rarity
		}
	}
	return domain.RarityLegendary
}

// Resolve draws one modifier value and returns the adjusted weight and output tier
func Resolve(cards []domain.OwnedCard, draw func() float64) (float64, domain.Rarity) {
	weight := ApplyModifier(PreviewWeight(cards), draw())
	return weight, TierForWeight(weight)
}
