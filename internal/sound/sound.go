// Package sound provides types.SoundPlayer implementations. None of them
// decode audio; the command player hands the clip to an external program.
package sound

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/mesh-intelligence/zoo/pkg/types"
)

// Player names accepted by New.
const (
	PlayerNone    = "none"
	PlayerLog     = "log"
	PlayerCommand = "command"
)

// ErrUnknownPlayer is returned by New for an unrecognized player name.
var ErrUnknownPlayer = errors.New("unknown sound player")

// ErrNoCommand is returned by New when the command player has no program.
var ErrNoCommand = errors.New("sound command must not be empty")

// Compile-time interface checks.
var (
	_ types.SoundPlayer = Nop{}
	_ types.SoundPlayer = (*Logger)(nil)
	_ types.SoundPlayer = (*Command)(nil)
)

// Config selects and configures a player.
type Config struct {
	Player  string   // one of PlayerNone, PlayerLog, PlayerCommand
	Dir     string   // directory clip paths are resolved against
	Command []string // program and leading arguments for PlayerCommand
}

// New returns the player described by cfg. An empty Player means PlayerLog.
func New(cfg Config, logger *slog.Logger) (types.SoundPlayer, error) {
	switch cfg.Player {
	case PlayerNone:
		return Nop{}, nil
	case "", PlayerLog:
		return &Logger{Dir: cfg.Dir, Log: logger}, nil
	case PlayerCommand:
		if len(cfg.Command) == 0 || cfg.Command[0] == "" {
			return nil, ErrNoCommand
		}
		return &Command{Dir: cfg.Dir, Program: cfg.Command[0], Args: cfg.Command[1:]}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, cfg.Player)
	}
}

// Nop ignores every clip.
type Nop struct{}

func (Nop) Play(string) error { return nil }

// Logger records each clip on Log instead of playing it.
type Logger struct {
	Dir string
	Log *slog.Logger
}

func (l *Logger) Play(path string) error {
	log := l.Log
	if log == nil {
		log = slog.Default()
	}
	log.Info("play sound", "path", resolve(l.Dir, path))
	return nil
}

// Command runs Program with Args followed by the clip path and waits for it
// to exit.
type Command struct {
	Dir     string
	Program string
	Args    []string
}

func (c *Command) Play(path string) error {
	args := append(append([]string(nil), c.Args...), resolve(c.Dir, path))
	out, err := exec.Command(c.Program, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("running %s: %w: %s", c.Program, err, out)
	}
	return nil
}

// resolve joins a relative clip path onto dir. The clip paths carry their
// own "sound/" prefix, so dir is the directory that contains it.
func resolve(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
