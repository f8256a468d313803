package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity is one of the five card tiers
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists every tier in ascending order
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// rarityWeights is the forge weight contributed by one committed card of each tier
var rarityWeights = map[Rarity]int{
	RarityCommon:    1,
	RarityUncommon:  5,
	RarityRare:      11,
	RarityEpic:      23,
	RarityLegendary: 41,
}

var titleCaser = cases.Title(language.English)

// Weight returns the forge weight of the tier, or 0 for an unknown tier
func (r Rarity) Weight() int {
	return rarityWeights[r]
}

// Valid reports whether r is one of the five tiers
func (r Rarity) Valid() bool {
	_, ok := rarityWeights[r]
	return ok
}

// Label returns the display name of the tier
func (r Rarity) Label() string {
	return titleCaser.String(string(r))
}

// ParseRarity normalizes and validates a rarity name
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRarity, s)
	}
	return r, nil
}

// Card is an immutable catalog entry
type Card struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity"`
}

// OwnedCard is a catalog card annotated with a quantity from one ledger view
type OwnedCard struct {
	Card
	Quantity int `json:"quantity"`
}
