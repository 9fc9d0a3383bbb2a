package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/zoo/internal/document"
	"github.com/mesh-intelligence/zoo/pkg/types"
)

// dbFileName is the SQLite database created inside DataDir.
const dbFileName = "zoo.db"

// Compile-time interface check.
var _ types.Registry = (*Backend)(nil)

// Backend implements types.Registry using SQLite as the query engine and
// the zoo document as the source of truth.
type Backend struct {
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *slog.Logger
}

// NewBackend creates a new SQLite backend instance. A nil logger means
// slog.Default. The backend is not attached; call Attach with a Config.
func NewBackend(logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{logger: logger}
}

// Attach validates config, creates DataDir if needed, rebuilds the SQLite
// database and fills it from the zoo document. A missing document is
// created empty. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The database is derived state and always starts fresh.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	b.db = db
	b.config = config

	if err := b.loadDocument(); err != nil {
		db.Close()
		b.db = nil
		return fmt.Errorf("load document: %w", err)
	}

	b.attached = true
	b.logger.Debug("registry attached", "data_dir", dataDir, "document", config.DocumentPath())
	return nil
}

// Detach closes the SQLite connection. After Detach, operations return
// ErrRegistryDetached. Idempotent.
func (b *Backend) Detach() error {
	if !b.attached {
		return nil
	}
	b.attached = false
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		if err != nil {
			return err
		}
	}
	return nil
}

// loadDocument creates an empty document when none exists, otherwise loads
// it into the freshly created tables in a single transaction.
func (b *Backend) loadDocument() error {
	path := b.config.DocumentPath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.logger.Info("creating empty zoo document", "path", path)
			return document.Save(path, types.NewZoo())
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	return b.rebuild()
}

// rebuild replaces every row with the contents of the document.
func (b *Backend) rebuild() error {
	zoo, err := document.Load(b.config.DocumentPath(), b.logger)
	if err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"animals", "staff"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	if err := insertZoo(tx, zoo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// persist rewrites the document from the rows visible to q. Called inside
// the mutating transaction so a failed write rolls the change back. The
// document is authoritative: once it is written, the tables follow it.
func (b *Backend) persist(q querier) error {
	zoo, err := hydrateZoo(q)
	if err != nil {
		return err
	}
	if err := document.Save(b.config.DocumentPath(), zoo); err != nil {
		return fmt.Errorf("persisting document: %w", err)
	}
	return nil
}

// mutate runs fn in a transaction, persists the document and commits.
func (b *Backend) mutate(fn func(tx *sql.Tx) error) error {
	if !b.attached {
		return types.ErrRegistryDetached
	}
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := b.persist(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		// The document already holds the change; bring the tables up to it.
		if rerr := b.rebuild(); rerr != nil {
			return fmt.Errorf("committing transaction: %w (rebuild: %v)", err, rerr)
		}
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Zoo hydrates every stored entity into a new Zoo.
func (b *Backend) Zoo() (*types.Zoo, error) {
	if !b.attached {
		return nil, types.ErrRegistryDetached
	}
	return hydrateZoo(b.db)
}

// Replace discards all stored entities and stores zoo in their place.
func (b *Backend) Replace(zoo *types.Zoo) error {
	for _, a := range zoo.Animals {
		if err := types.ValidateAnimal(a); err != nil {
			return err
		}
	}
	for _, s := range zoo.Staff {
		if err := types.ValidateStaff(s); err != nil {
			return err
		}
	}
	return b.mutate(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM animals"); err != nil {
			return fmt.Errorf("clearing animals: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM staff"); err != nil {
			return fmt.Errorf("clearing staff: %w", err)
		}
		return insertZoo(tx, zoo)
	})
}

// AddAnimal appends a after every stored animal.
// Returns ErrInvalidName or ErrInvalidAge for an invalid animal.
func (b *Backend) AddAnimal(a types.Animal) error {
	if err := types.ValidateAnimal(a); err != nil {
		return err
	}
	return b.mutate(func(tx *sql.Tx) error {
		ordinal, err := nextOrdinal(tx, "animals")
		if err != nil {
			return err
		}
		return insertAnimal(tx, ordinal, a)
	})
}

// AddStaff appends s after every stored staff member.
func (b *Backend) AddStaff(s types.Staff) error {
	if err := types.ValidateStaff(s); err != nil {
		return err
	}
	return b.mutate(func(tx *sql.Tx) error {
		ordinal, err := nextOrdinal(tx, "staff")
		if err != nil {
			return err
		}
		return insertStaff(tx, ordinal, s)
	})
}

// generateUUID generates a new UUID v7 for row IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
