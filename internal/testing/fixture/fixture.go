// Package fixture builds small in-memory economies for package tests.
package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/CardHeist_Go/internal/catalog"
	"github.com/osse101/CardHeist_Go/internal/database/memory"
	"github.com/osse101/CardHeist_Go/internal/domain"
)

// Card ids of the default test catalog
const (
	CommonA    = 1
	CommonB    = 2
	UncommonA  = 3
	RareA      = 4
	RareB      = 5
	EpicA      = 6
	LegendaryA = 7
)

// Cards is the default test catalog: every tier populated, two commons and two rares
var Cards = []domain.Card{
	{ID: CommonA, Name: "Common A", Rarity: domain.RarityCommon},
	{ID: CommonB, Name: "Common B", Rarity: domain.RarityCommon},
	{ID: UncommonA, Name: "Uncommon A", Rarity: domain.RarityUncommon},
	{ID: RareA, Name: "Rare A", Rarity: domain.RarityRare},
	{ID: RareB, Name: "Rare B", Rarity: domain.RarityRare},
	{ID: EpicA, Name: "Epic A", Rarity: domain.RarityEpic},
	{ID: LegendaryA, Name: "Legendary A", Rarity: domain.RarityLegendary},
}

// Catalog returns the default test catalog
func Catalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(Cards)
	require.NoError(t, err)
	return c
}

// Store returns a memory store holding the default catalog and one user per id.
// Each user's username equals its id and both cooldowns are open.
func Store(t testing.TB, userIDs ...string) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.UpsertCards(ctx, Cards))

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	for _, id := range userIDs {
		require.NoError(t, tx.InsertUser(ctx, &domain.User{ID: id, Username: id}))
	}
	require.NoError(t, tx.Commit(ctx))
	return s
}

// Grant adds qty units of card to user, committing count of them to the forge
func Grant(t testing.TB, s *memory.Store, userID string, cardID, qty, committed int) {
	t.Helper()
	ctx := context.Background()
	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.IncrementEntry(ctx, userID, cardID, qty))
	if committed > 0 {
		e, err := tx.GetEntryForUpdate(ctx, userID, cardID)
		require.NoError(t, err)
		e.Committed += committed
		require.NoError(t, tx.UpdateEntry(ctx, *e))
	}
	require.NoError(t, tx.Commit(ctx))
}

// Vault places card directly in user's vault slot for its rarity
func Vault(t testing.TB, s *memory.Store, userID string, card domain.Card) {
	t.Helper()
	ctx := context.Background()
	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.PutVaultEntry(ctx, domain.VaultEntry{UserID: userID, Rarity: card.Rarity, CardID: card.ID}))
	require.NoError(t, tx.Commit(ctx))
}

// Entry returns the committed ledger row, or a zero entry when absent
func Entry(t testing.TB, s *memory.Store, userID string, cardID int) domain.InventoryEntry {
	t.Helper()
	entries, err := s.ListEntries(context.Background(), userID)
	require.NoError(t, err)
	for _, e := range entries {
		if e.CardID == cardID {
			return e
		}
	}
	return domain.InventoryEntry{UserID: userID, CardID: cardID}
}

// Totals sums every unit of every card across free, committed and vaulted pools
func Totals(t testing.TB, s *memory.Store, userIDs ...string) map[int]int {
	t.Helper()
	ctx := context.Background()
	totals := make(map[int]int)
	for _, id := range userIDs {
		entries, err := s.ListEntries(ctx, id)
		require.NoError(t, err)
		for _, e := range entries {
			totals[e.CardID] += e.Count
		}
		vault, err := s.ListVault(ctx, id)
		require.NoError(t, err)
		for _, v := range vault {
			totals[v.CardID]++
		}
	}
	for id, n := range totals {
		if n == 0 {
			delete(totals, id)
		}
	}
	return totals
}

// CheckInvariants asserts 0 <= committed <= count on every row of every user
func CheckInvariants(t testing.TB, s *memory.Store, userIDs ...string) {
	t.Helper()
	ctx := context.Background()
	for _, id := range userIDs {
		entries, err := s.ListEntries(ctx, id)
		require.NoError(t, err)
		for _, e := range entries {
			require.GreaterOrEqual(t, e.Count, 0, "count of user %s card %d", id, e.CardID)
			require.GreaterOrEqual(t, e.Committed, 0, "committed of user %s card %d", id, e.CardID)
			require.LessOrEqual(t, e.Committed, e.Count, "committed exceeds count for user %s card %d", id, e.CardID)
		}
	}
}
