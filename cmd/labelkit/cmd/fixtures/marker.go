package fixtures

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentstation/labelkit/internal/cmd/output"
	"github.com/agentstation/labelkit/pkg/errors"
	"github.com/agentstation/labelkit/pkg/fixtures"
)

// Status describes a fixture directory.
type Status struct {
	Path      string `json:"path" yaml:"path"`
	Exists    bool   `json:"exists" yaml:"exists"`
	Directory bool   `json:"directory" yaml:"directory"`
	Marked    bool   `json:"marked" yaml:"marked"`
	Entries   int    `json:"entries" yaml:"entries"`
}

// NewMarkCommand creates the mark subcommand.
func NewMarkCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mark [DIR]",
		Short: "Mark a directory as a disposable test area",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(app, args)
			if err != nil {
				return err
			}
			if err := fixtures.Mark(app.Fs(), dir); err != nil {
				return err
			}
			app.Logger().Info().Str("path", dir).Msg("Directory marked")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Marked %s\n", dir)
			return err
		},
	}
}

// NewUnmarkCommand creates the unmark subcommand.
func NewUnmarkCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unmark [DIR]",
		Short: "Remove the test area marker from a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(app, args)
			if err != nil {
				return err
			}
			if err := fixtures.Unmark(app.Fs(), dir); err != nil {
				return err
			}
			app.Logger().Info().Str("path", dir).Msg("Directory unmarked")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Unmarked %s\n", dir)
			return err
		},
	}
}

// NewStatusCommand creates the status subcommand.
func NewStatusCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status [DIR]",
		Short: "Show whether a directory is a marked test area",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(app, args)
			if err != nil {
				return err
			}
			status, err := inspect(app.Fs(), dir)
			if err != nil {
				return err
			}
			formatter := output.NewFormatter(output.Format(app.OutputFormat()))
			return formatter.Format(cmd.OutOrStdout(), status)
		},
	}
}

func inspect(fs afero.Fs, dir string) (Status, error) {
	status := Status{Path: dir}

	info, err := fs.Stat(dir)
	if stderrors.Is(err, os.ErrNotExist) {
		return status, nil
	}
	if err != nil {
		return status, errors.WrapIO("stat", dir, err)
	}
	status.Exists = true
	status.Directory = info.IsDir()
	if !status.Directory {
		return status, nil
	}

	if status.Marked, err = fixtures.IsMarked(fs, dir); err != nil {
		return status, err
	}
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return status, err
	}
	status.Entries = len(entries)
	return status, nil
}
