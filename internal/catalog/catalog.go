// Package catalog holds the read-only card registry every economy operation draws from.
package catalog

import (
	"fmt"
	"sort"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/utils"
)

// Catalog is an immutable index of card definitions, safe for concurrent reads
type Catalog struct {
	all      []domain.Card
	byID     map[int]domain.Card
	byRarity map[domain.Rarity][]domain.Card
}

// New indexes cards, rejecting duplicate ids and unknown rarities
func New(cards []domain.Card) (*Catalog, error) {
	c := &Catalog{
		all:      make([]domain.Card, 0, len(cards)),
		byID:     make(map[int]domain.Card, len(cards)),
		byRarity: make(map[domain.Rarity][]domain.Card, len(domain.Rarities)),
	}
	for _, card := range cards {
		if !card.Rarity.Valid() {
			return nil, fmt.Errorf("%w: card %d has rarity %q", domain.ErrInvalidRarity, card.ID, card.Rarity)
		}
		if _, dup := c.byID[card.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCardID, card.ID)
		}
		c.byID[card.ID] = card
		c.all = append(c.all, card)
	}
	sort.Slice(c.all, func(i, j int) bool { return c.all[i].ID < c.all[j].ID })
	for _, card := range c.all {
		c.byRarity[card.Rarity] = append(c.byRarity[card.Rarity], card)
	}
	return c, nil
}

// All returns every card ordered by id
func (c *Catalog) All() []domain.Card {
	out := make([]domain.Card, len(c.all))
	copy(out, c.all)
	return out
}

// Get returns one card by id
func (c *Catalog) Get(id int) (domain.Card, error) {
	card, ok := c.byID[id]
	if !ok {
		return domain.Card{}, fmt.Errorf("%w: %d", domain.ErrCardNotFound, id)
	}
	return card, nil
}

// Lookup resolves a set of ids in one pass. Any unknown id fails the whole lookup.
func (c *Catalog) Lookup(ids []int) (map[int]domain.Card, error) {
	out := make(map[int]domain.Card, len(ids))
	for _, id := range ids {
		card, ok := c.byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", domain.ErrCardNotFound, id)
		}
		out[id] = card
	}
	return out, nil
}

// ByRarity returns the cards of one tier ordered by id
func (c *Catalog) ByRarity(r domain.Rarity) []domain.Card {
	tier := c.byRarity[r]
	out := make([]domain.Card, len(tier))
	copy(out, tier)
	return out
}

// Random draws one card of tier r uniformly using s
func (c *Catalog) Random(s utils.Sampler, r domain.Rarity) (domain.Card, error) {
	card, ok := utils.PickOne(s, c.byRarity[r])
	if !ok {
		return domain.Card{}, fmt.Errorf("%w: %s", domain.ErrEmptyTier, r)
	}
	return card, nil
}

// Len returns the number of cards in the catalog
func (c *Catalog) Len() int {
	return len(c.all)
}
