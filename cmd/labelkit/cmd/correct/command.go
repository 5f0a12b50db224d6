// Package correct provides the commands that reconcile labels against a reference.
package correct

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/labelkit/pkg/errors"
	"github.com/agentstation/labelkit/pkg/labels"
)

// AppContext defines the interface that correct commands need from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	OutputFormat() string
	ReconcileOptions() ([]labels.Option, error)
}

// NewCommand creates the correct command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "correct [target]",
		GroupID: "core",
		Short:   "Correct label spelling against a reference",
		Long: `Correct rewrites labels whose spelling differs from a reference label
only by letter case. Labels without a case-insensitive match are left
unchanged, and the order and number of labels is always preserved.

Available subcommands:
  list    - correct a list of labels given as arguments
  table   - correct the column headers of a CSV file`,
		Example: `  labelkit correct list tEste abilidebob --ref Teste --ref abilidebob
  labelkit correct table data.csv --ref-file reference.yaml --out fixed.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown target: %s", args[0])
		},
	}

	cmd.AddCommand(NewListCommand(app))
	cmd.AddCommand(NewTableCommand(app))

	return cmd
}

// referenceFlags holds the flags every correct subcommand uses to name its
// reference labels.
type referenceFlags struct {
	refs    []string
	refFile string
}

func (f *referenceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.refs, "ref", "r", nil, "reference label (repeatable)")
	cmd.Flags().StringVar(&f.refFile, "ref-file", "", "file with reference labels (YAML list, YAML labels: key, or CSV header)")
}

// labels merges --ref values with the contents of --ref-file, in that order.
func (f *referenceFlags) labels() ([]string, error) {
	reference := append([]string{}, f.refs...)
	if f.refFile != "" {
		fromFile, err := labels.LoadReferenceFile(f.refFile)
		if err != nil {
			return nil, err
		}
		reference = append(reference, fromFile...)
	}
	if len(reference) == 0 {
		return nil, errors.NewValidationError("ref", nil, "at least one reference label is required (--ref or --ref-file)")
	}
	return reference, nil
}
