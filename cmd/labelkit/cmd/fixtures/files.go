package fixtures

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/labelkit/internal/cmd/output"
	"github.com/agentstation/labelkit/pkg/constants"
	"github.com/agentstation/labelkit/pkg/fixtures"
)

// Created lists the fixture files written by one create run.
type Created struct {
	Files []string `json:"files" yaml:"files"`
}

// NewCreateCommand creates the create subcommand.
func NewCreateCommand(app AppContext) *cobra.Command {
	var (
		asCSV    bool
		columns  int
		lines    int
		multiple bool
		count    int
		ext      string
		header   string
	)

	cmd := &cobra.Command{
		Use:   "create [DIR]",
		Short: "Create fixture files in a marked directory",
		Args:  cobra.MaximumNArgs(1),
		Example: `  labelkit fixtures create ./tmp
  labelkit fixtures create ./tmp --csv --columns 5 --lines 10
  labelkit fixtures create ./tmp --multiple --count 3 --ext txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(app, args)
			if err != nil {
				return err
			}
			if ext == "" {
				ext = app.FixtureExtension()
			}

			opts := []fixtures.Option{
				fixtures.WithFs(app.Fs()),
				fixtures.WithLogger(app.Logger()),
				fixtures.WithMultipleFiles(multiple),
				fixtures.WithLineNumber(lines),
			}
			if cmd.Flags().Changed("header") {
				opts = append(opts, fixtures.WithHeader(header))
			}

			var create func() (string, error)
			if asCSV {
				m := fixtures.NewCSV(dir,
					fixtures.WithColumnNumber(columns),
					fixtures.WithManagerOptions(opts...),
				)
				create = m.CreateCSVFile
			} else {
				m := fixtures.New(dir, append(opts, fixtures.WithExtension(ext))...)
				create = m.CreateFile
			}

			if count < 1 {
				count = 1
			}
			result := Created{}
			for range count {
				name, err := create()
				if err != nil {
					return err
				}
				result.Files = append(result.Files, name)
			}

			app.Logger().Info().Str("path", dir).Int("files", len(result.Files)).Msg("Fixtures created")
			return writeCreated(cmd, app, result)
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "create CSV fixtures with random integer cells")
	cmd.Flags().IntVar(&columns, "columns", constants.DefaultColumnNumber, "index of the last CSV column (3 means col0..col3)")
	cmd.Flags().IntVar(&lines, "lines", constants.DefaultLineNumber, "index of the last generated line")
	cmd.Flags().BoolVar(&multiple, "multiple", false, "write numbered files instead of overwriting demofile0")
	cmd.Flags().IntVar(&count, "count", 1, "number of create runs")
	cmd.Flags().StringVar(&ext, "ext", "", "file extension for plain fixtures (default from fixture_ext)")
	cmd.Flags().StringVar(&header, "header", constants.DefaultHeader, "header text of plain fixtures")

	return cmd
}

func writeCreated(cmd *cobra.Command, app AppContext, result Created) error {
	format := output.Format(app.OutputFormat())
	if format == output.FormatJSON || format == output.FormatYAML {
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), result)
	}
	for _, f := range result.Files {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", f); err != nil {
			return err
		}
	}
	return nil
}

// NewClearCommand creates the clear subcommand.
func NewClearCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear [DIR]",
		Short: "Remove everything except the marker from a marked directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(app, args)
			if err != nil {
				return err
			}
			m := fixtures.New(dir, fixtures.WithFs(app.Fs()), fixtures.WithLogger(app.Logger()))
			if err := m.ClearDir(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", dir)
			return err
		},
	}
}

// NewShowCommand creates the show subcommand.
func NewShowCommand(app AppContext) *cobra.Command {
	var (
		ext   string
		index int
	)

	cmd := &cobra.Command{
		Use:   "show [DIR]",
		Short: "Print a fixture file of a marked directory",
		Args:  cobra.MaximumNArgs(1),
		Example: `  labelkit fixtures show ./tmp
  labelkit fixtures show ./tmp --index 2 --ext txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(app, args)
			if err != nil {
				return err
			}
			if ext == "" {
				ext = app.FixtureExtension()
			}
			m := fixtures.New(dir,
				fixtures.WithFs(app.Fs()),
				fixtures.WithLogger(app.Logger()),
				fixtures.WithExtension(ext),
				fixtures.WithIndex(index),
			)
			app.Logger().Debug().Str("file", filepath.Base(m.Current())).Msg("Showing fixture file")
			if err := m.Show(cmd.OutOrStdout()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVar(&ext, "ext", "", "file extension (default from fixture_ext)")
	cmd.Flags().IntVar(&index, "index", 0, "number of the file to show (demofile<index>)")
	return cmd
}
