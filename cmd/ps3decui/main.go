package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/ps3decui/internal/config"
	"github.com/justinpbarnett/ps3decui/internal/log"
	"github.com/justinpbarnett/ps3decui/internal/process"
	"github.com/justinpbarnett/ps3decui/internal/runtime"
	"github.com/justinpbarnett/ps3decui/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagConfigFilePath string // value of --config
	flagLogFile        string // value of --log-file
	flagVerbose        bool   // value of --verbose

	configPath string // settings file actually used
	logger     = slog.New(slog.DiscardHandler)
	logOut     io.Closer
)

func main() {
	root := newRootCmd()
	err := root.Execute()
	if logOut != nil {
		logOut.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ps3decui",
		Short:         "Terminal front-end for the ps3dec ISO decrypter",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runUI,
	}

	root.PersistentFlags().StringVar(&flagConfigFilePath, "config", "",
		"settings file (.json, .yaml or .toml), default $"+config.EnvConfigPath+" or "+config.DefaultFileName)
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "write JSON logs to this file")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "verbose logging")

	root.PersistentPreRunE = setup

	root.AddCommand(newVersionCmd())
	root.AddCommand(newUpdateCmd())
	return root
}

func setup(_ *cobra.Command, _ []string) error {
	w, err := log.Open(flagLogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logOut = w
	logger = log.New(w, flagVerbose)
	slog.SetDefault(logger)

	configPath = config.ResolvePath(flagConfigFilePath)
	return nil
}

func runUI(_ *cobra.Command, _ []string) error {
	cfg := config.Load(configPath)
	logger.Info("starting", "config", configPath, "version", versionString())

	launcher := process.NewLauncher(runtime.NewPS3Dec(), logger)
	app := ui.NewApp(configPath, cfg, launcher, logger)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
