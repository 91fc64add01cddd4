package main

import (
	"fmt"

	"picture-viewer/internal/shellreg"

	"github.com/spf13/cobra"
)

// registrar abstracts the shell registry so the commands can be exercised
// without touching it.
type registrar struct {
	executable func() (string, error)
	add        func(exe string) error
	remove     func() error
}

// reportedError marks a failure the command has already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

var systemRegistrar = registrar{
	executable: shellreg.Executable,
	add:        shellreg.Add,
	remove:     shellreg.Remove,
}

func newAddCommand(reg registrar) *cobra.Command {
	return &cobra.Command{
		Use:          "add",
		Short:        "Add \"" + shellreg.MenuLabel + "\" to the shell context menu",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exe, err := reg.executable()
			if err == nil {
				err = reg.add(exe)
			}
			if err != nil {
				cmd.PrintErrf("Failed to add to context menu: %v\n", err)
				return &reportedError{err: fmt.Errorf("add context menu entry: %w", err)}
			}
			cmd.Println("Successfully added to context menu.")
			return nil
		},
	}
}

func newRemoveCommand(reg registrar) *cobra.Command {
	return &cobra.Command{
		Use:          "remove",
		Short:        "Remove the viewer from the shell context menu",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := reg.remove(); err != nil {
				cmd.PrintErrf("Failed to remove from context menu: %v\n", err)
				return &reportedError{err: fmt.Errorf("remove context menu entry: %w", err)}
			}
			cmd.Println("Successfully removed from context menu.")
			return nil
		},
	}
}
