package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/repository"
	"github.com/osse101/CardHeist_Go/internal/testing/fixture"
)

func TestUsers_InsertLookupDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	ids := createUsers(t, repo, "Alice", "bob")

	u, err := repo.GetUser(ctx, ids[0])
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Alice", u.Username)
	assert.True(t, u.NextDropTime.IsZero())

	byName, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, ids[0], byName.ID)

	missing, err := repo.GetUser(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, missing)

	names, err := repo.GetUsernames(ctx, []string{ids[0], ids[1], uuid.NewString(), "junk"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{ids[0]: "Alice", ids[1]: "bob"}, names)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	err = tx.InsertUser(ctx, &domain.User{ID: uuid.NewString(), Username: "ALICE"})
	assert.True(t, errors.Is(err, domain.ErrUsernameTaken))
	require.NoError(t, tx.Rollback(ctx))

	grant(t, repo, ids[0], fixture.CommonA, 2)
	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	deleted, err := tx.DeleteUser(ctx, ids[0])
	require.NoError(t, err)
	assert.True(t, deleted)
	require.NoError(t, tx.Commit(ctx))

	entries, err := repo.ListEntries(ctx, ids[0])
	require.NoError(t, err)
	assert.Empty(t, entries, "ledger rows cascade")
}

func TestUsers_CooldownsAndConnections(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	ids := createUsers(t, repo, "alice", "bob", "carol")
	next := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.GetUserForUpdate(ctx, ids[0])
	require.NoError(t, err)
	require.NotNil(t, locked)
	require.NoError(t, tx.UpdateNextDropTime(ctx, ids[0], next))
	require.NoError(t, tx.UpdateNextTheftTime(ctx, ids[0], next.Add(time.Minute)))
	n, err := tx.IncrementConnectionCount(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	err = tx.UpdateNextDropTime(ctx, uuid.NewString(), next)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))

	others, err := tx.ListOtherUserIDs(ctx, ids[0])
	require.NoError(t, err)
	assert.ElementsMatch(t, ids[1:], others)
	require.NoError(t, tx.Commit(ctx))

	u, err := repo.GetUser(ctx, ids[0])
	require.NoError(t, err)
	assert.True(t, next.Equal(u.NextDropTime))
	assert.True(t, next.Add(time.Minute).Equal(u.NextTheftTime))
	assert.Equal(t, 1, u.ConnectionCount)
}

func TestInventory_UpsertUpdateDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	ids := createUsers(t, repo, "alice")
	uid := ids[0]

	grant(t, repo, uid, fixture.RareA, 2)
	grant(t, repo, uid, fixture.RareA, 3)
	assert.Equal(t, 5, entryCount(t, repo, uid, fixture.RareA))

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	e, err := tx.GetEntryForUpdate(ctx, uid, fixture.RareA)
	require.NoError(t, err)
	require.NotNil(t, e)
	e.Committed = 2
	require.NoError(t, tx.UpdateEntry(ctx, *e))

	e.Committed = 9
	err = tx.UpdateEntry(ctx, *e)
	assert.Error(t, err, "committed above count violates the row check")
	require.NoError(t, tx.Rollback(ctx))

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	absent, err := tx.GetEntryForUpdate(ctx, uid, fixture.EpicA)
	require.NoError(t, err)
	assert.Nil(t, absent)
	require.NoError(t, tx.DeleteEntry(ctx, uid, fixture.RareA))
	require.NoError(t, tx.Commit(ctx))

	entries, err := repo.ListEntries(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVaultAndThefts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	ids := createUsers(t, repo, "alice", "bob")
	thief, victim := ids[0], ids[1]
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.PutVaultEntry(ctx, domain.VaultEntry{UserID: victim, Rarity: domain.RarityRare, CardID: fixture.RareA}))
	require.NoError(t, tx.PutVaultEntry(ctx, domain.VaultEntry{UserID: victim, Rarity: domain.RarityRare, CardID: fixture.RareB}))
	require.NoError(t, tx.PutVaultEntry(ctx, domain.VaultEntry{UserID: victim, Rarity: domain.RarityCommon, CardID: fixture.CommonA}))

	first := &domain.TheftRecord{ThiefID: thief, VictimID: victim, CardID: fixture.CommonB, StolenAt: base}
	second := &domain.TheftRecord{ThiefID: thief, VictimID: victim, CardID: fixture.EpicA, StolenAt: base.Add(time.Minute)}
	require.NoError(t, tx.InsertTheft(ctx, first))
	require.NoError(t, tx.InsertTheft(ctx, second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
	require.NoError(t, tx.Commit(ctx))

	vault, err := repo.ListVault(ctx, victim)
	require.NoError(t, err)
	require.Len(t, vault, 2, "one slot per rarity")
	assert.Equal(t, domain.RarityCommon, vault[0].Rarity)
	assert.Equal(t, fixture.RareB, vault[1].CardID)

	records, err := repo.ListTheftsByVictim(ctx, victim)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID, "newest first")
	assert.True(t, base.Equal(records[1].StolenAt))

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	ok, err := tx.DeleteTheft(ctx, thief, first.ID)
	require.NoError(t, err)
	assert.False(t, ok, "only the victim owns the record")
	ok, err = tx.DeleteTheft(ctx, victim, first.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	slot, err := tx.GetVaultEntryForUpdate(ctx, victim, domain.RarityEpic)
	require.NoError(t, err)
	assert.Nil(t, slot)
	require.NoError(t, tx.DeleteVaultEntry(ctx, victim, domain.RarityRare))
	require.NoError(t, tx.Commit(ctx))

	records, err = repo.ListTheftsByVictim(ctx, victim)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	vault, err = repo.ListVault(ctx, victim)
	require.NoError(t, err)
	assert.Len(t, vault, 1)
}

func TestCatalog_UpsertAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	renamed := fixture.Cards[0]
	renamed.Name = "Renamed"
	require.NoError(t, repo.UpsertCards(ctx, []domain.Card{renamed}))

	cards, err := repo.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, len(fixture.Cards))
	assert.Equal(t, "Renamed", cards[0].Name)
	assert.Equal(t, domain.RarityCommon, cards[0].Rarity)
}

func TestCommitThenRollbackIsTxClosed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	err = tx.Rollback(ctx)
	require.Error(t, err)
	assert.Equal(t, domain.ErrMsgTxClosed, err.Error())
}
