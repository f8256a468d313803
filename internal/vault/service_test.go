package vault

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/ledger"
	"github.com/osse101/CardHeist_Go/internal/repository"
	"github.com/osse101/CardHeist_Go/internal/testing/fixture"
)

const alice = "alice"

func newTestService(t *testing.T, repo repository.Economy) Service {
	t.Helper()
	c := fixture.Catalog(t)
	return NewService(repo, ledger.New(c), c)
}

func TestStore_MovesFreeUnitIntoVault(t *testing.T) {
	ctx := context.Background()
	s := fixture.Store(t, alice)
	fixture.Grant(t, s, alice, fixture.RareA, 2, 0)
	svc := newTestService(t, s)

	result, err := svc.Store(ctx, alice, fixture.RareA)
	require.NoError(t, err)
	assert.Equal(t, fixture.RareA, result.Stored.ID)
	assert.Nil(t, result.Evicted)

	assert.Equal(t, 1, fixture.Entry(t, s, alice, fixture.RareA).Count)
	cards, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, fixture.RareA, cards[0].ID)
}

func TestStore_EvictsPreviousOccupant(t *testing.T) {
	ctx := context.Background()
	s := fixture.Store(t, alice)
	fixture.Grant(t, s, alice, fixture.RareA, 1, 0) // Y
	fixture.Grant(t, s, alice, fixture.RareB, 1, 0) // Z, free copy
	fixture.Vault(t, s, alice, fixture.Cards[fixture.RareB-1])
	svc := newTestService(t, s)

	before := fixture.Totals(t, s, alice)

	result, err := svc.Store(ctx, alice, fixture.RareA)
	require.NoError(t, err)
	require.NotNil(t, result.Evicted)
	assert.Equal(t, fixture.RareB, result.Evicted.ID)

	assert.Equal(t, 2, fixture.Entry(t, s, alice, fixture.RareB).Count, "Z returned to free inventory")
	assert.Equal(t, 0, fixture.Entry(t, s, alice, fixture.RareA).Count, "Y left free inventory")

	vault, err := s.ListVault(ctx, alice)
	require.NoError(t, err)
	require.Len(t, vault, 1)
	assert.Equal(t, domain.VaultEntry{UserID: alice, Rarity: domain.RarityRare, CardID: fixture.RareA}, vault[0])

	assert.Equal(t, before, fixture.Totals(t, s, alice))
}

func TestStore_OneSlotPerRarity(t *testing.T) {
	ctx := context.Background()
	s := fixture.Store(t, alice)
	fixture.Grant(t, s, alice, fixture.CommonA, 1, 0)
	fixture.Grant(t, s, alice, fixture.EpicA, 1, 0)
	svc := newTestService(t, s)

	_, err := svc.Store(ctx, alice, fixture.CommonA)
	require.NoError(t, err)
	_, err = svc.Store(ctx, alice, fixture.EpicA)
	require.NoError(t, err)

	cards, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, domain.RarityCommon, cards[0].Rarity)
	assert.Equal(t, domain.RarityEpic, cards[1].Rarity)
}

func TestStore_Failures(t *testing.T) {
	ctx := context.Background()
	s := fixture.Store(t, alice)
	fixture.Grant(t, s, alice, fixture.RareA, 1, 1)
	svc := newTestService(t, s)

	_, err := svc.Store(ctx, alice, fixture.RareA)
	assert.True(t, errors.Is(err, domain.ErrNotOwnedFree), "committed units cannot be vaulted")
	assert.False(t, errors.Is(err, domain.ErrInsufficientQuantity), "the ledger shortfall is reported as NotOwnedFree only")

	_, err = svc.Store(ctx, alice, fixture.EpicA)
	assert.True(t, errors.Is(err, domain.ErrNotOwnedFree))

	_, err = svc.Store(ctx, alice, 999)
	assert.True(t, errors.Is(err, domain.ErrCardNotFound))

	_, err = svc.Store(ctx, "ghost", fixture.RareA)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))

	e := fixture.Entry(t, s, alice, fixture.RareA)
	assert.Equal(t, 1, e.Count)
	assert.Equal(t, 1, e.Committed)
}

func TestStore_VaultedCardIsNotFree(t *testing.T) {
	ctx := context.Background()
	s := fixture.Store(t, alice)
	fixture.Grant(t, s, alice, fixture.LegendaryA, 1, 0)
	svc := newTestService(t, s)

	_, err := svc.Store(ctx, alice, fixture.LegendaryA)
	require.NoError(t, err)

	_, err = svc.Store(ctx, alice, fixture.LegendaryA)
	assert.True(t, errors.Is(err, domain.ErrNotOwnedFree), "the only unit is already vaulted")
}

func TestRelease(t *testing.T) {
	ctx := context.Background()
	s := fixture.Store(t, alice)
	fixture.Grant(t, s, alice, fixture.UncommonA, 1, 0)
	svc := newTestService(t, s)

	_, err := svc.Release(ctx, alice, domain.RarityUncommon)
	assert.True(t, errors.Is(err, domain.ErrVaultEmpty))

	_, err = svc.Store(ctx, alice, fixture.UncommonA)
	require.NoError(t, err)
	assert.Equal(t, 0, fixture.Entry(t, s, alice, fixture.UncommonA).Count)

	card, err := svc.Release(ctx, alice, domain.RarityUncommon)
	require.NoError(t, err)
	assert.Equal(t, fixture.UncommonA, card.ID)
	assert.Equal(t, 1, fixture.Entry(t, s, alice, fixture.UncommonA).Count)

	cards, err := svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = svc.Release(ctx, alice, domain.Rarity("mythic"))
	assert.True(t, errors.Is(err, domain.ErrInvalidRarity))
}

func TestStore_CommitFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	s := fixture.Store(t, alice)
	fixture.Grant(t, s, alice, fixture.RareA, 1, 0)
	svc := newTestService(t, fixture.FailingCommitStore{Store: s})

	_, err := svc.Store(ctx, alice, fixture.RareA)
	assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
	assert.Equal(t, 1, fixture.Entry(t, s, alice, fixture.RareA).Count)

	vault, err := s.ListVault(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, vault)
}
