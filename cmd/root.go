package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ishwari21/dash-unix-shell/core"
	"github.com/ishwari21/dash-unix-shell/core/config"
	"github.com/ishwari21/dash-unix-shell/core/vos"
)

var cfgPath string

var exitStatus int

// rootCmd is the whole CLI: no script argument starts an interactive
// session, one argument runs a script, anything else is a usage error.
var rootCmd = &cobra.Command{
	Use:           "dash [script]",
	Short:         "A Unix command interpreter",
	Long:          `dash reads command lines interactively or from a script and runs them, optionally in parallel with & and with output redirected by >.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		exitStatus = run(args)
	},
}

// Execute runs the root command and returns the process exit status.
// This is called by main.main().
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, core.ErrorMessage)
		return 1
	}
	return exitStatus
}

func run(args []string) int {
	// Only zero or one script argument is a valid invocation.
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, core.ErrorMessage)
		return 1
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, core.ErrorMessage)
		return 1
	}

	sh := core.NewShell(vos.NewHostOS(), cfg)

	if cfg.AppLog {
		if fd, err := cfg.OpenAppLog(); err == nil {
			defer fd.Close()
			sh.Log = log.New(fd, "dash ", log.LstdFlags)
		}
	}

	if len(args) == 1 {
		return sh.RunScript(args[0])
	}
	return sh.RunInteractive()
}

func loadConfig() (*config.Configuration, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config path")
}
