package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/zoo/internal/paths"
	"github.com/mesh-intelligence/zoo/pkg/sqlite"
	"github.com/mesh-intelligence/zoo/pkg/types"
)

// dataDir resolves the data directory: --data-dir flag > config.yaml
// data_dir > ZOO_DATA_DIR > $(CWD)/.zoo-db.
func (e *env) dataDir() (string, error) {
	dir, err := paths.ResolveDataDir(e.flags.dataDir, e.configDataDir)
	if err != nil {
		return "", sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	return dir, nil
}

// attach resolves the storage location and attaches a SQLite registry to
// it. The caller must Detach the returned registry.
func (e *env) attach() (types.Registry, error) {
	dataDir, err := e.dataDir()
	if err != nil {
		return nil, err
	}

	cfg := types.Config{
		DataDir:  dataDir,
		DataFile: e.cfg.GetString(cfgKeyDataFile),
	}

	reg := sqlite.NewBackend(e.logger)
	if err := reg.Attach(cfg); err != nil {
		return nil, classify(fmt.Errorf("attach registry: %w", err))
	}
	return reg, nil
}

// parseAge converts a command-line age.
func parseAge(s string) (int, error) {
	age, err := strconv.Atoi(s)
	if err != nil {
		return 0, userError(fmt.Errorf("age %q is not a whole number", s))
	}
	if age < 0 {
		return 0, userError(fmt.Errorf("%w: %d", types.ErrInvalidAge, age))
	}
	return age, nil
}

// kindList joins kinds for error messages.
func kindList[K ~string](kinds []K) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// findAnimal returns the first stored animal named name.
func findAnimal(reg types.Registry, name string) (types.Animal, error) {
	animals, err := reg.Animals(types.AnimalFilter{Name: name})
	if err != nil {
		return nil, classify(err)
	}
	if len(animals) == 0 {
		return nil, userError(fmt.Errorf("animal %q: %w", name, types.ErrNotFound))
	}
	return animals[0], nil
}

// findStaff returns the first stored staff member named name.
func findStaff(reg types.Registry, name string) (types.Staff, error) {
	staff, err := reg.StaffMembers(types.StaffFilter{Name: name})
	if err != nil {
		return nil, classify(err)
	}
	if len(staff) == 0 {
		return nil, userError(fmt.Errorf("staff member %q: %w", name, types.ErrNotFound))
	}
	return staff[0], nil
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	return nil
}

// detach releases reg, folding a detach failure into err.
func detach(reg types.Registry, err *error) {
	if derr := reg.Detach(); derr != nil && *err == nil {
		*err = sysError(fmt.Errorf("detach registry: %w", derr))
	}
}

var errWrongRole = errors.New("wrong staff role")
