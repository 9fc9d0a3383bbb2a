// Package cli implements the zoo command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/zoo/internal/logging"
	"github.com/mesh-intelligence/zoo/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// env is the state shared by the commands of one root command.
type env struct {
	flags rootFlags

	configDir     string
	configDataDir string
	cfg           *viper.Viper
	logger        *slog.Logger
	closeLog      func()
}

// newRootCmd creates the top-level "zoo" command with global flags and all
// subcommands registered. The caller owns e and must call e.closeLog once
// the command has run.
func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "zoo",
		Short: "Manage the animals and staff of a zoo",
		Long:  "zoo keeps a register of animals and staff, persisted as a JSON document\nand queried through a local SQLite index.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&e.flags.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.zoo)")
	root.PersistentFlags().StringVar(&e.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.zoo-db)")
	root.PersistentFlags().BoolVar(&e.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&e.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(e))
	root.AddCommand(newAnimalCmd(e))
	root.AddCommand(newStaffCmd(e))
	root.AddCommand(newFeedCmd(e))
	root.AddCommand(newHealCmd(e))
	root.AddCommand(newSoundsCmd(e))
	root.AddCommand(newDemoCmd(e))

	return root
}

// setup resolves the config directory, loads configuration and builds the
// logger. It runs before every subcommand.
func (e *env) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(e.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	e.configDir = configDir

	v, dataDir, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	e.cfg = v
	e.configDataDir = dataDir

	levelName := e.flags.logLevel
	if levelName == "" {
		levelName = v.GetString(cfgKeyLogLevel)
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return userError(err)
	}
	logger, closeLog, err := logging.Setup(cmd.ErrOrStderr(), v.GetString(cfgKeyLogFile), level)
	if err != nil {
		return sysError(fmt.Errorf("open log file: %w", err))
	}
	e.logger = logger
	e.closeLog = closeLog
	return nil
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	e := &env{closeLog: func() {}}
	defer func() { e.closeLog() }()

	root := newRootCmd(e)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "zoo:", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// Errors raised by cobra itself are argument or flag problems.
	return exitUserError
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
