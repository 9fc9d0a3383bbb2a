package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/zoo/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	DataDir  string       `yaml:"data_dir,omitempty"`
	DataFile string       `yaml:"data_file"`
	LogLevel string       `yaml:"log_level"`
	Sound    soundSection `yaml:"sound"`
}

type soundSection struct {
	Player string `yaml:"player"`
	Dir    string `yaml:"dir,omitempty"`
}

func newInitCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize zoo configuration and storage",
		Long:  "Create the configuration and data directories, write a default config.yaml\nif none exists, then initialize the zoo document.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runInit(cmd)
		},
	}
}

func (e *env) runInit(cmd *cobra.Command) error {
	dataDir, err := e.dataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(e.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	configPath := filepath.Join(e.configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, dataDir); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	reg, err := e.attach()
	if err != nil {
		return err
	}
	if err := reg.Detach(); err != nil {
		return sysError(fmt.Errorf("finalize storage: %w", err))
	}

	if e.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), map[string]string{
			"config_dir": e.configDir,
			"data_dir":   dataDir,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Zoo initialized in %s\n", dataDir)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. An existing file is left untouched.
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		DataDir:  dataDir,
		DataFile: types.DefaultDataFile,
		LogLevel: defaultLogLevel,
		Sound:    soundSection{Player: defaultSoundPlayer},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
