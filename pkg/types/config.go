package types

import (
	"errors"
	"path/filepath"
)

// DefaultDataFile is the document name used when Config.DataFile is empty.
const DefaultDataFile = "zoo.json"

// Config holds the storage location for Registry.Attach.
type Config struct {
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	DataFile string `json:"data_file" yaml:"data_file"`
}

// Config validation errors.
var (
	ErrDataFileInvalid = errors.New("data file must be a plain file name")
)

// Validate checks that the Config is well-formed. An empty DataFile is valid
// and means DefaultDataFile.
func (c Config) Validate() error {
	if c.DataFile == "" {
		return nil
	}
	if c.DataFile != filepath.Base(c.DataFile) || c.DataFile == "." || c.DataFile == ".." {
		return ErrDataFileInvalid
	}
	return nil
}

// DocumentPath returns the path of the persisted zoo document.
func (c Config) DocumentPath() string {
	dir := c.DataDir
	if dir == "" {
		dir = "."
	}
	name := c.DataFile
	if name == "" {
		name = DefaultDataFile
	}
	return filepath.Join(dir, name)
}
