package correct

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/labelkit/internal/cmd/output"
	"github.com/agentstation/labelkit/pkg/constants"
	"github.com/agentstation/labelkit/pkg/errors"
	"github.com/agentstation/labelkit/pkg/labels"
	"github.com/agentstation/labelkit/pkg/logging"
)

// NewTableCommand creates the table subcommand.
func NewTableCommand(app AppContext) *cobra.Command {
	var (
		ref      referenceFlags
		outPath  string
		copyMode bool
	)

	cmd := &cobra.Command{
		Use:   "table FILE.csv",
		Short: "Correct the column headers of a CSV file",
		Long: `Table reads a CSV file, renames every column whose header matches a
reference label case-insensitively, and writes the corrected CSV to
stdout or to --out. Cell values are never changed.`,
		Args: cobra.ExactArgs(1),
		Example: `  labelkit correct table data.csv --ref TestE --ref AbiliDEbob
  labelkit correct table data.csv --ref-file reference.csv --out fixed.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, err := ref.labels()
			if err != nil {
				return err
			}

			table, err := labels.LoadTableFile(args[0])
			if err != nil {
				return err
			}

			opts, err := app.ReconcileOptions()
			if err != nil {
				return err
			}
			if copyMode {
				opts = append(opts, labels.WithRenameMode(labels.RenameCopy))
			}

			ctx := logging.WithPath(logging.WithLogger(cmd.Context(), app.Logger()), args[0])
			r := labels.New(table, opts...)
			corrected := r.CorrectContext(ctx, reference).Table()

			app.Logger().Info().
				Str("file", args[0]).
				Int("columns", r.Target().Table().Width()).
				Int("renamed", len(r.Mapping())).
				Msg("Table headers corrected")

			if outPath == "" {
				return corrected.WriteCSV(cmd.OutOrStdout())
			}
			if err := writeTableFile(outPath, corrected); err != nil {
				return err
			}
			format := output.Format(app.OutputFormat())
			formatter := output.NewFormatter(format)
			if format == output.FormatJSON || format == output.FormatYAML {
				return formatter.Format(cmd.OutOrStdout(), r.Mapping().Entries())
			}
			return formatter.Format(cmd.OutOrStdout(), output.MappingData(r.Mapping()))
		},
	}

	ref.register(cmd)
	cmd.Flags().StringVar(&outPath, "out", "", "write the corrected CSV to this file instead of stdout")
	cmd.Flags().BoolVar(&copyMode, "copy", false, "rename a copy of the table instead of the loaded table")

	return cmd
}

func writeTableFile(path string, t *labels.Table) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapIO("close", path, cerr)
		}
	}()

	return t.WriteCSV(f)
}
