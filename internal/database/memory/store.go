// Package memory is an in-process storage driver. Transactions hold a single
// writer slot for their lifetime and mutate a private copy of the state, which
// replaces the committed state on Commit.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/repository"
)

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

type state struct {
	users     map[string]domain.User
	usernames map[string]string
	entries   map[string]map[int]domain.InventoryEntry
	vault     map[string]map[domain.Rarity]domain.VaultEntry
	thefts    map[int64]domain.TheftRecord
	nextTheft int64
}

func newState() *state {
	return &state{
		users:     make(map[string]domain.User),
		usernames: make(map[string]string),
		entries:   make(map[string]map[int]domain.InventoryEntry),
		vault:     make(map[string]map[domain.Rarity]domain.VaultEntry),
		thefts:    make(map[int64]domain.TheftRecord),
		nextTheft: 1,
	}
}

func (s *state) clone() *state {
	c := newState()
	c.nextTheft = s.nextTheft
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.usernames {
		c.usernames[k] = v
	}
	for uid, rows := range s.entries {
		m := make(map[int]domain.InventoryEntry, len(rows))
		for cid, e := range rows {
			m[cid] = e
		}
		c.entries[uid] = m
	}
	for uid, rows := range s.vault {
		m := make(map[domain.Rarity]domain.VaultEntry, len(rows))
		for r, e := range rows {
			m[r] = e
		}
		c.vault[uid] = m
	}
	for k, v := range s.thefts {
		c.thefts[k] = v
	}
	return c
}

// Store implements repository.Economy and repository.Catalog in memory
type Store struct {
	writer chan struct{}

	mu    sync.RWMutex
	data  *state
	cards map[int]domain.Card
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		writer: make(chan struct{}, 1),
		data:   newState(),
		cards:  make(map[int]domain.Card),
	}
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// BeginTx waits for the writer slot or ctx cancellation
func (s *Store) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	select {
	case s.writer <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &tx{store: s, st: s.snapshot().clone()}, nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(s.snapshot(), userID), nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return getUserByUsername(s.snapshot(), username), nil
}

func (s *Store) GetUsernames(ctx context.Context, userIDs []string) (map[string]string, error) {
	return getUsernames(s.snapshot(), userIDs), nil
}

func (s *Store) ListEntries(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	return listEntries(s.snapshot(), userID), nil
}

func (s *Store) ListVault(ctx context.Context, userID string) ([]domain.VaultEntry, error) {
	return listVault(s.snapshot(), userID), nil
}

func (s *Store) ListTheftsByVictim(ctx context.Context, victimID string) ([]domain.TheftRecord, error) {
	return listThefts(s.snapshot(), victimID), nil
}

// ListCards returns the stored catalog ordered by id
func (s *Store) ListCards(ctx context.Context) ([]domain.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cards := make([]domain.Card, 0, len(s.cards))
	for _, c := range s.cards {
		cards = append(cards, c)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}

// UpsertCards inserts or replaces card definitions by id
func (s *Store) UpsertCards(ctx context.Context, cards []domain.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cards {
		s.cards[c.ID] = c
	}
	return nil
}

// CheckHealth always succeeds for the in-process driver
func (s *Store) CheckHealth(ctx context.Context) error {
	return nil
}

type tx struct {
	store *Store
	st    *state
	done  bool
}

func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	t.store.mu.Lock()
	t.store.data = t.st
	t.store.mu.Unlock()
	<-t.store.writer
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.done {
		return errTxClosed
	}
	t.done = true
	<-t.store.writer
	return nil
}

func (t *tx) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(t.st, userID), nil
}

func (t *tx) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return getUserByUsername(t.st, username), nil
}

func (t *tx) GetUsernames(ctx context.Context, userIDs []string) (map[string]string, error) {
	return getUsernames(t.st, userIDs), nil
}

func (t *tx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(t.st, userID), nil
}

func (t *tx) InsertUser(ctx context.Context, user *domain.User) error {
	key := strings.ToLower(user.Username)
	if _, taken := t.st.usernames[key]; taken {
		return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, user.Username)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	t.st.users[user.ID] = *user
	t.st.usernames[key] = user.ID
	return nil
}

func (t *tx) DeleteUser(ctx context.Context, userID string) (bool, error) {
	u, ok := t.st.users[userID]
	if !ok {
		return false, nil
	}
	delete(t.st.users, userID)
	delete(t.st.usernames, strings.ToLower(u.Username))
	delete(t.st.entries, userID)
	delete(t.st.vault, userID)
	for id, rec := range t.st.thefts {
		if rec.ThiefID == userID || rec.VictimID == userID {
			delete(t.st.thefts, id)
		}
	}
	return true, nil
}

func (t *tx) UpdateNextDropTime(ctx context.Context, userID string, next time.Time) error {
	u, ok := t.st.users[userID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	u.NextDropTime = next
	t.st.users[userID] = u
	return nil
}

func (t *tx) UpdateNextTheftTime(ctx context.Context, userID string, next time.Time) error {
	u, ok := t.st.users[userID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	u.NextTheftTime = next
	t.st.users[userID] = u
	return nil
}

func (t *tx) IncrementConnectionCount(ctx context.Context, userID string) (int, error) {
	u, ok := t.st.users[userID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	u.ConnectionCount++
	t.st.users[userID] = u
	return u.ConnectionCount, nil
}

func (t *tx) ListOtherUserIDs(ctx context.Context, userID string) ([]string, error) {
	ids := make([]string, 0, len(t.st.users))
	for id := range t.st.users {
		if id != userID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (t *tx) ListEntries(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	return listEntries(t.st, userID), nil
}

func (t *tx) ListEntriesForUpdate(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	return listEntries(t.st, userID), nil
}

func (t *tx) GetEntryForUpdate(ctx context.Context, userID string, cardID int) (*domain.InventoryEntry, error) {
	e, ok := t.st.entries[userID][cardID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (t *tx) IncrementEntry(ctx context.Context, userID string, cardID, qty int) error {
	if _, ok := t.st.users[userID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	rows, ok := t.st.entries[userID]
	if !ok {
		rows = make(map[int]domain.InventoryEntry)
		t.st.entries[userID] = rows
	}
	e := rows[cardID]
	e.UserID, e.CardID = userID, cardID
	e.Count += qty
	if err := checkEntry(e); err != nil {
		return err
	}
	rows[cardID] = e
	return nil
}

func (t *tx) UpdateEntry(ctx context.Context, entry domain.InventoryEntry) error {
	rows, ok := t.st.entries[entry.UserID]
	if !ok {
		return fmt.Errorf("memory: no inventory for user %s", entry.UserID)
	}
	if _, ok := rows[entry.CardID]; !ok {
		return fmt.Errorf("memory: no inventory row for card %d", entry.CardID)
	}
	if err := checkEntry(entry); err != nil {
		return err
	}
	rows[entry.CardID] = entry
	return nil
}

func (t *tx) DeleteEntry(ctx context.Context, userID string, cardID int) error {
	delete(t.st.entries[userID], cardID)
	return nil
}

func (t *tx) ListVault(ctx context.Context, userID string) ([]domain.VaultEntry, error) {
	return listVault(t.st, userID), nil
}

func (t *tx) GetVaultEntryForUpdate(ctx context.Context, userID string, rarity domain.Rarity) (*domain.VaultEntry, error) {
	e, ok := t.st.vault[userID][rarity]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (t *tx) PutVaultEntry(ctx context.Context, entry domain.VaultEntry) error {
	if _, ok := t.st.users[entry.UserID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, entry.UserID)
	}
	rows, ok := t.st.vault[entry.UserID]
	if !ok {
		rows = make(map[domain.Rarity]domain.VaultEntry)
		t.st.vault[entry.UserID] = rows
	}
	rows[entry.Rarity] = entry
	return nil
}

func (t *tx) DeleteVaultEntry(ctx context.Context, userID string, rarity domain.Rarity) error {
	delete(t.st.vault[userID], rarity)
	return nil
}

func (t *tx) ListTheftsByVictim(ctx context.Context, victimID string) ([]domain.TheftRecord, error) {
	return listThefts(t.st, victimID), nil
}

func (t *tx) InsertTheft(ctx context.Context, record *domain.TheftRecord) error {
	record.ID = t.st.nextTheft
	t.st.nextTheft++
	t.st.thefts[record.ID] = *record
	return nil
}

func (t *tx) DeleteTheft(ctx context.Context, victimID string, recordID int64) (bool, error) {
	rec, ok := t.st.thefts[recordID]
	if !ok || rec.VictimID != victimID {
		return false, nil
	}
	delete(t.st.thefts, recordID)
	return true, nil
}

// checkEntry mirrors the table constraints of the postgres driver
func checkEntry(e domain.InventoryEntry) error {
	if e.Count < 0 || e.Committed < 0 || e.Committed > e.Count {
		return fmt.Errorf("memory: inventory constraint violated for user %s card %d (count=%d committed=%d)",
			e.UserID, e.CardID, e.Count, e.Committed)
	}
	return nil
}

func getUser(st *state, userID string) *domain.User {
	u, ok := st.users[userID]
	if !ok {
		return nil
	}
	return &u
}

func getUserByUsername(st *state, username string) *domain.User {
	id, ok := st.usernames[strings.ToLower(username)]
	if !ok {
		return nil
	}
	return getUser(st, id)
}

func getUsernames(st *state, userIDs []string) map[string]string {
	names := make(map[string]string, len(userIDs))
	for _, id := range userIDs {
		if u, ok := st.users[id]; ok {
			names[id] = u.Username
		}
	}
	return names
}

func listEntries(st *state, userID string) []domain.InventoryEntry {
	rows := st.entries[userID]
	out := make([]domain.InventoryEntry, 0, len(rows))
	for _, e := range rows {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CardID < out[j].CardID })
	return out
}

func listVault(st *state, userID string) []domain.VaultEntry {
	rows := st.vault[userID]
	out := make([]domain.VaultEntry, 0, len(rows))
	for _, r := range domain.Rarities {
		if e, ok := rows[r]; ok {
			out = append(out, e)
		}
	}
	return out
}

func listThefts(st *state, victimID string) []domain.TheftRecord {
	var out []domain.TheftRecord
	for _, rec := range st.thefts {
		if rec.VictimID == victimID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StolenAt.Equal(out[j].StolenAt) {
			return out[i].StolenAt.After(out[j].StolenAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
