package document

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/zoo/pkg/types"
)

// Save writes zoo to path, replacing any existing document. The write is
// atomic: the document goes to a temp file in the same directory, which is
// synced and renamed over path.
func Save(path string, zoo *types.Zoo) error {
	data, err := Marshal(zoo)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// Load reads the document at path into a new Zoo. Each skipped record is
// logged as a warning on logger (slog.Default when nil). I/O failures are
// returned as-is; structural problems match ErrMalformed.
func Load(path string, logger *slog.Logger) (*types.Zoo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	zoo, skipped, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, s := range skipped {
		logger.Warn("skipping record with unknown type",
			"path", path,
			"collection", s.Collection,
			"index", s.Index,
			"type", s.Tag,
		)
	}
	return zoo, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// writeFile atomically replaces path with data using the temp-file, fsync,
// rename pattern. The temp file is removed on every failure.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".zoo-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("setting document mode: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
