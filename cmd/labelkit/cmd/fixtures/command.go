// Package fixtures provides the commands that manage disposable test directories.
package fixtures

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentstation/labelkit/pkg/errors"
)

// AppContext defines the interface that fixture commands need from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	OutputFormat() string
	Fs() afero.Fs
	FixtureDir() string
	FixtureExtension() string
}

// NewCommand creates the fixtures command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fixtures [command]",
		GroupID: "fixtures",
		Short:   "Create and wipe disposable test files",
		Long: `Fixtures manages throwaway test files inside directories that are
explicitly marked as test areas. A directory is marked when it contains an
empty file named "testmarker"; create, clear and show refuse to touch any
directory without it. Clearing removes everything except the marker.

The directory defaults to the fixture_dir setting, or the current working
directory when it is not set.`,
		Example: `  labelkit fixtures mark ./tmp
  labelkit fixtures create ./tmp --csv --lines 5
  labelkit fixtures clear ./tmp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown command: %s", args[0])
		},
	}

	cmd.AddCommand(NewMarkCommand(app))
	cmd.AddCommand(NewUnmarkCommand(app))
	cmd.AddCommand(NewStatusCommand(app))
	cmd.AddCommand(NewCreateCommand(app))
	cmd.AddCommand(NewClearCommand(app))
	cmd.AddCommand(NewShowCommand(app))

	return cmd
}

// resolveDir picks the directory argument, then the configured fixture
// directory, then the working directory.
func resolveDir(app AppContext, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if dir := app.FixtureDir(); dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapIO("getwd", "", err)
	}
	return wd, nil
}
