package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/logger"
	"github.com/osse101/CardHeist_Go/internal/repository"
	"github.com/osse101/CardHeist_Go/internal/validation"
)

//go:embed seed/cards.json seed/cards.schema.json
var seedFS embed.FS

const (
	embeddedSeedPath   = "seed/cards.json"
	embeddedSchemaPath = "seed/cards.schema.json"
)

// Seed is the JSON document the catalog is seeded from
type Seed struct {
	Version     string        `json:"version"`
	Description string        `json:"description,omitempty"`
	Cards       []domain.Card `json:"cards"`
}

// Loader reads card seeds and validates them against the embedded schema
type Loader struct {
	validator validation.SchemaValidator
}

// NewLoader creates a Loader with the embedded card schema registered
func NewLoader() (*Loader, error) {
	schema, err := seedFS.ReadFile(embeddedSchemaPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSeedFailed, err)
	}
	return NewLoaderWithSchema(schema)
}

// NewLoaderWithSchema creates a Loader validating seeds against schema
func NewLoaderWithSchema(schema []byte) (*Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.Register(DefaultSchemaName, schema); err != nil {
		return nil, err
	}
	return &Loader{validator: v}, nil
}

// Load reads the seed at path, or the embedded default seed when path is empty
func (l *Loader) Load(path string) (*Seed, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		path = embeddedSeedPath
		data, err = seedFS.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSeedFailed, err)
	}
	return l.Parse(data, path)
}

// Parse validates and decodes a seed document; source is used in error messages
func (l *Loader) Parse(data []byte, source string) (*Seed, error) {
	if err := l.validator.Validate(DefaultSchemaName, data); err != nil {
		return nil, fmt.Errorf(ErrMsgSeedInvalid, source, err)
	}
	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf(ErrMsgParseSeedFailed, err)
	}
	// duplicate ids are not expressible in the schema
	if _, err := New(seed.Cards); err != nil {
		return nil, fmt.Errorf(ErrMsgSeedInvalid, source, err)
	}
	return &seed, nil
}

// Sync writes the seed to storage and builds the catalog from what storage holds,
// so cards persisted by earlier seeds stay resolvable for existing ledger rows.
func Sync(ctx context.Context, repo repository.Catalog, seed *Seed) (*Catalog, error) {
	log := logger.FromContext(ctx)

	if err := repo.UpsertCards(ctx, seed.Cards); err != nil {
		return nil, fmt.Errorf(ErrMsgSyncFailed, err)
	}
	stored, err := repo.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadStoredFailed, err)
	}
	c, err := New(stored)
	if err != nil {
		return nil, err
	}

	for _, r := range domain.Rarities {
		if len(c.byRarity[r]) == 0 {
			log.Warn(LogMsgTierEmpty, "rarity", r)
		}
	}
	log.Info(LogMsgCatalogSynced, "version", seed.Version, "seeded", len(seed.Cards), "total", c.Len())
	return c, nil
}
