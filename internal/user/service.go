// Package user registers players, hands out their starter pack and serves
// profile and username lookups.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CardHeist_Go/internal/catalog"
	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/ledger"
	"github.com/osse101/CardHeist_Go/internal/logger"
	"github.com/osse101/CardHeist_Go/internal/metrics"
	"github.com/osse101/CardHeist_Go/internal/repository"
	"github.com/osse101/CardHeist_Go/internal/utils"
)

// Service defines the user operations
type Service interface {
	Register(ctx context.Context, username string) (*domain.Registration, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.UserProfile, error)
	RecordConnection(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, userID string) error
	Usernames(ctx context.Context, userIDs []string) (map[string]string, error)
}

// Config holds registration and cache settings
type Config struct {
	StarterPackSize int
	CacheSize       int
	CacheTTL        time.Duration
}

// DefaultConfig returns the canonical starter pack and cache settings
func DefaultConfig() Config {
	return Config{
		StarterPackSize: domain.DefaultStarterPackSize,
		CacheSize:       DefaultCacheSize,
		CacheTTL:        DefaultCacheTTL,
	}
}

type service struct {
	repo    repository.Economy
	ledger  *ledger.Ledger
	catalog *catalog.Catalog
	sampler utils.Sampler
	names   *nameCache
	cfg     Config
	now     func() time.Time
}

// NewService creates a new user service
func NewService(repo repository.Economy, l *ledger.Ledger, c *catalog.Catalog, sampler utils.Sampler, cfg Config) Service {
	if cfg.StarterPackSize < 0 {
		cfg.StarterPackSize = domain.DefaultStarterPackSize
	}
	return &service{
		repo:    repo,
		ledger:  l,
		catalog: c,
		sampler: sampler,
		names:   newNameCache(cfg.CacheSize, cfg.CacheTTL),
		cfg:     cfg,
		now:     time.Now,
	}
}

// Register creates a user with both cooldowns open and grants the starter
// pack of uniformly drawn commons in the same transaction.
func (s *service) Register(ctx context.Context, username string) (*domain.Registration, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)
	log.Debug(LogMsgRegisterCalled, "username", username)

	if username == "" || len(username) > MaxUsernameLength {
		return nil, fmt.Errorf(ErrFmtInvalidUsername, domain.ErrInvalidInput, MaxUsernameLength)
	}

	// Draw before opening the transaction; an empty common tier fails fast
	pack := make([]domain.Card, 0, s.cfg.StarterPackSize)
	for i := 0; i < s.cfg.StarterPackSize; i++ {
		card, err := s.catalog.Random(s.sampler, domain.RarityCommon)
		if err != nil {
			return nil, err
		}
		pack = append(pack, card)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, repository.StorageError(OpBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user := &domain.User{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: s.now().UTC(),
	}
	if err := tx.InsertUser(ctx, user); err != nil {
		return nil, repository.StorageError(OpInsertUser, err)
	}
	for _, card := range pack {
		if err := s.ledger.Add(ctx, tx, user.ID, card.ID, 1); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, repository.StorageError(OpCommitTx, err)
	}

	s.names.Set(user.ID, user.Username)
	metrics.RegistrationsTotal.Inc()
	logger.ForUser(ctx, user.ID).Info(LogMsgUserRegistered, "username", user.Username, "starter_pack", len(pack))

	return &domain.Registration{User: *user, StarterPack: pack}, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, repository.StorageError(OpGetUser, err)
	}
	if user == nil {
		return nil, fmt.Errorf(ErrFmtUserNotFound, domain.ErrUserNotFound, userID)
	}
	s.names.Set(user.ID, user.Username)
	return user, nil
}

// Profile reports card totals and distinct owned cards per rarity across
// free, committed, and vaulted units
func (s *service) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListEntries(ctx, userID)
	if err != nil {
		return nil, repository.StorageError(OpListProfileCards, err)
	}
	vault, err := s.repo.ListVault(ctx, userID)
	if err != nil {
		return nil, repository.StorageError(OpListProfileCards, err)
	}

	profile := &domain.UserProfile{User: *user, DistinctCards: make(domain.RarityStats, len(domain.Rarities))}
	for _, r := range domain.Rarities {
		profile.DistinctCards[r] = 0
	}

	owned := make(map[int]struct{}, len(entries)+len(vault))
	ids := make([]int, 0, len(entries)+len(vault))
	for _, e := range entries {
		if e.Count <= 0 {
			continue
		}
		profile.FreeCards += e.Free()
		profile.CommittedCards += e.Committed
		if _, ok := owned[e.CardID]; !ok {
			owned[e.CardID] = struct{}{}
			ids = append(ids, e.CardID)
		}
	}
	for _, v := range vault {
		profile.VaultedCards++
		if _, ok := owned[v.CardID]; !ok {
			owned[v.CardID] = struct{}{}
			ids = append(ids, v.CardID)
		}
	}

	cards, err := s.catalog.Lookup(ids)
	if err != nil {
		return nil, err
	}
	for _, card := range cards {
		profile.DistinctCards[card.Rarity]++
	}
	return profile, nil
}

func (s *service) RecordConnection(ctx context.Context, userID string) (int, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, repository.StorageError(OpBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return 0, repository.StorageError(OpGetUser, err)
	}
	if user == nil {
		return 0, fmt.Errorf(ErrFmtUserNotFound, domain.ErrUserNotFound, userID)
	}
	count, err := tx.IncrementConnectionCount(ctx, userID)
	if err != nil {
		return 0, repository.StorageError(OpCountConnection, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, repository.StorageError(OpCommitTx, err)
	}

	logger.ForUser(ctx, userID).Debug(LogMsgConnectionCounted, "connections", count)
	return count, nil
}

// Delete removes the user; ledger rows, vault entries and theft records go with it
func (s *service) Delete(ctx context.Context, userID string) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return repository.StorageError(OpBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	deleted, err := tx.DeleteUser(ctx, userID)
	if err != nil {
		return repository.StorageError(OpDeleteUser, err)
	}
	if !deleted {
		return fmt.Errorf(ErrFmtUserNotFound, domain.ErrUserNotFound, userID)
	}
	if err := tx.Commit(ctx); err != nil {
		return repository.StorageError(OpCommitTx, err)
	}

	s.names.Invalidate(userID)
	logger.ForUser(ctx, userID).Info(LogMsgUserDeleted)
	return nil
}

// Usernames resolves ids through the cache, reading misses in one batch.
// Unknown ids are absent from the result.
func (s *service) Usernames(ctx context.Context, userIDs []string) (map[string]string, error) {
	out := make(map[string]string, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	var missing []string
	for _, id := range userIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if name, ok := s.names.Get(id); ok {
			out[id] = name
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out, nil
	}

	found, err := s.repo.GetUsernames(ctx, missing)
	if err != nil {
		return nil, repository.StorageError(OpResolveNames, err)
	}
	for id, name := range found {
		s.names.Set(id, name)
		out[id] = name
	}
	return out, nil
}
