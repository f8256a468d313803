package fixture_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/CardHeist_Go/internal/cooldown"
	"github.com/osse101/CardHeist_Go/internal/database/memory"
	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/drop"
	"github.com/osse101/CardHeist_Go/internal/forge"
	"github.com/osse101/CardHeist_Go/internal/ledger"
	"github.com/osse101/CardHeist_Go/internal/testing/fixture"
	"github.com/osse101/CardHeist_Go/internal/theft"
	"github.com/osse101/CardHeist_Go/internal/utils"
	"github.com/osse101/CardHeist_Go/internal/vault"
)

type economy struct {
	store  *memory.Store
	users  []string
	forge  forge.Service
	vault  vault.Service
	drops  drop.Service
	thefts theft.Service
}

func newEconomy(t *testing.T, users ...string) *economy {
	t.Helper()
	s := fixture.Store(t, users...)
	c := fixture.Catalog(t)
	l := ledger.New(c)
	sampler := utils.NewSampler()
	clock := cooldown.NewClock(cooldown.Config{
		DevMode:       true,
		DropCooldown:  cooldown.DefaultConfig().DropCooldown,
		TheftCooldown: cooldown.DefaultConfig().TheftCooldown,
	}, time.Now)

	for _, u := range users {
		fixture.Grant(t, s, u, fixture.CommonA, 6, 0)
		fixture.Grant(t, s, u, fixture.RareA, 2, 0)
	}

	return &economy{
		store:  s,
		users:  users,
		forge:  forge.NewService(s, l, c, sampler),
		vault:  vault.NewService(s, l, c),
		drops:  drop.NewService(s, l, c, clock, sampler),
		thefts: theft.NewService(s, l, c, clock, sampler, nil),
	}
}

func (e *economy) freeCards(t *testing.T, user string) []domain.InventoryEntry {
	entries, err := e.store.ListEntries(context.Background(), user)
	require.NoError(t, err)
	var free []domain.InventoryEntry
	for _, en := range entries {
		if en.Count > en.Committed {
			free = append(free, en)
		}
	}
	return free
}

func (e *economy) committed(t *testing.T, user string) []domain.InventoryEntry {
	entries, err := e.store.ListEntries(context.Background(), user)
	require.NoError(t, err)
	var out []domain.InventoryEntry
	for _, en := range entries {
		if en.Committed > 0 {
			out = append(out, en)
		}
	}
	return out
}

// step runs one random operation and returns the expected per-card change in units held
func (e *economy) step(t *testing.T, rng *rand.Rand) (string, map[int]int, error) {
	ctx := context.Background()
	user := e.users[rng.IntN(len(e.users))]

	switch rng.IntN(7) {
	case 0:
		res, err := e.drops.Execute(ctx, user)
		if err != nil {
			return "drop", nil, err
		}
		return "drop", map[int]int{res.Card.ID: 1}, nil

	case 1:
		free := e.freeCards(t, user)
		if len(free) == 0 {
			return "commit", nil, nil
		}
		en := free[rng.IntN(len(free))]
		return "commit", nil, e.forge.Commit(ctx, user, en.CardID, 1+rng.IntN(en.Count-en.Committed))

	case 2:
		rows := e.committed(t, user)
		if len(rows) == 0 {
			return "release", nil, nil
		}
		en := rows[rng.IntN(len(rows))]
		return "release", nil, e.forge.Release(ctx, user, en.CardID, 1+rng.IntN(en.Committed))

	case 3:
		delta := make(map[int]int)
		for _, en := range e.committed(t, user) {
			delta[en.CardID] -= en.Committed
		}
		res, err := e.forge.Execute(ctx, user)
		if err != nil {
			return "forge", nil, err
		}
		delta[res.Awarded.ID]++
		return "forge", delta, nil

	case 4:
		free := e.freeCards(t, user)
		if len(free) == 0 {
			return "store", nil, nil
		}
		_, err := e.vault.Store(ctx, user, free[rng.IntN(len(free))].CardID)
		return "store", nil, err

	case 5:
		r := domain.Rarities[rng.IntN(len(domain.Rarities))]
		_, err := e.vault.Release(ctx, user, r)
		return "unvault", nil, err

	default:
		_, err := e.thefts.Execute(ctx, user)
		return "theft", nil, err
	}
}

func applyDelta(totals, delta map[int]int) {
	for id, d := range delta {
		totals[id] += d
		if totals[id] == 0 {
			delete(totals, id)
		}
	}
}

func requireVaultShape(t *testing.T, s *memory.Store, users []string) {
	t.Helper()
	c := fixture.Catalog(t)
	for _, u := range users {
		entries, err := s.ListVault(context.Background(), u)
		require.NoError(t, err)
		seen := make(map[domain.Rarity]bool)
		for _, v := range entries {
			require.False(t, seen[v.Rarity], "user %s holds two %s vault cards", u, v.Rarity)
			seen[v.Rarity] = true
			card, err := c.Get(v.CardID)
			require.NoError(t, err)
			require.Equal(t, v.Rarity, card.Rarity, "vault slot rarity mismatch for user %s", u)
		}
	}
}

func TestEconomy_RandomOperationsPreserveInvariants(t *testing.T) {
	users := []string{"alice", "bob", "carol", "dave"}

	for seed := uint64(1); seed <= 8; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			e := newEconomy(t, users...)
			rng := rand.New(rand.NewPCG(seed, seed*31))
			want := fixture.Totals(t, e.store, users...)

			for i := 0; i < 300; i++ {
				op, delta, err := e.step(t, rng)
				if err != nil {
					require.False(t, errors.Is(err, domain.ErrStorageUnavailable), "step %d %s: %v", i, op, err)
				}
				applyDelta(want, delta)

				require.Equal(t, want, fixture.Totals(t, e.store, users...), "per-card units after step %d (%s)", i, op)
				fixture.CheckInvariants(t, e.store, users...)
				requireVaultShape(t, e.store, users)
			}
		})
	}
}
