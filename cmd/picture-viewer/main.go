package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"picture-viewer/internal/app"

	"github.com/spf13/cobra"
)

var (
	version = app.AppVersion
	commit  = "dev"
)

func main() {
	rootCmd := newRootCommand(runViewer)
	rootCmd.AddCommand(newAddCommand(systemRegistrar))
	rootCmd.AddCommand(newRemoveCommand(systemRegistrar))

	os.Exit(exitCode(rootCmd.Execute(), os.Stderr))
}

// exitCode prints err unless a command already reported it.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return 1
}

func newRootCommand(run func(app.Options) error) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "picture-viewer [image]",
		Short: "Borderless always-on-top picture viewer",
		Long: `Opens an image in a borderless window that stays above other windows.
Scroll to zoom, drag to move the window or pan a zoomed image, right-click
for the menu and press Escape to quit.

Without an image argument the clipboard is checked for an image before a
file picker is shown.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.ImagePath = args[0]
			}
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "YAML file with startup settings")
	flags.BoolVar(&opts.WatchConfig, "watch-config", false, "reapply settings when the config file changes")
	flags.BoolVar(&opts.LoadLast, "load-last", false, "reopen the last viewed image")
	flags.StringVar(&opts.LogLevel, "log-level", "", "debug, info, warn, error or off")

	return cmd
}

func runViewer(opts app.Options) error {
	application, err := app.NewApplication(opts)
	if err != nil {
		return err
	}
	return application.Run()
}
