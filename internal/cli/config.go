package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/zoo/internal/sound"
	"github.com/mesh-intelligence/zoo/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "zoo"

	cfgKeyDataDir      = "data_dir"
	cfgKeyDataFile     = "data_file"
	cfgKeyLogLevel     = "log_level"
	cfgKeyLogFile      = "log_file"
	cfgKeySoundPlayer  = "sound.player"
	cfgKeySoundDir     = "sound.dir"
	cfgKeySoundCommand = "sound.command"

	defaultLogLevel    = "info"
	defaultSoundPlayer = sound.PlayerLog
)

// loadConfig reads config.yaml from configDir with Viper. A missing file is
// not an error. Environment variables prefixed ZOO_ (including those from
// .env and .env.local) override file values, except data_dir: it is
// returned separately, read from the file alone, so that the data
// directory precedence stays flag > config > ZOO_DATA_DIR.
func loadConfig(configDir string) (*viper.Viper, string, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v := viper.New()
	v.SetDefault(cfgKeyDataFile, types.DefaultDataFile)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeySoundPlayer, defaultSoundPlayer)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("read config: %w", err)
		}
	}
	dataDir := v.GetString(cfgKeyDataDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v, dataDir, nil
}

// soundConfig extracts the sound player settings from v.
func soundConfig(v *viper.Viper) sound.Config {
	return sound.Config{
		Player:  v.GetString(cfgKeySoundPlayer),
		Dir:     v.GetString(cfgKeySoundDir),
		Command: v.GetStringSlice(cfgKeySoundCommand),
	}
}
