package correct

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/labelkit/internal/cmd/output"
	"github.com/agentstation/labelkit/pkg/labels"
	"github.com/agentstation/labelkit/pkg/logging"
)

// ListResult is the structured result of correcting a label list.
type ListResult struct {
	Mapping []labels.Rename `json:"mapping" yaml:"mapping"`
	Labels  []string        `json:"labels" yaml:"labels"`
}

// NewListCommand creates the list subcommand.
func NewListCommand(app AppContext) *cobra.Command {
	var ref referenceFlags

	cmd := &cobra.Command{
		Use:   "list LABEL...",
		Short: "Correct a list of labels",
		Args:  cobra.MinimumNArgs(1),
		Example: `  labelkit correct list tEste abilidebob --ref Teste --ref abilidebob
  labelkit correct list a B c --ref-file reference.yaml -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, err := ref.labels()
			if err != nil {
				return err
			}

			opts, err := app.ReconcileOptions()
			if err != nil {
				return err
			}

			ctx := logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "correct-list")
			r := labels.New(args, opts...)
			corrected := r.CorrectContext(ctx, reference)

			result := ListResult{
				Mapping: r.Mapping().Entries(),
				Labels:  corrected.List(),
			}
			return writeListResult(cmd.OutOrStdout(), output.Format(app.OutputFormat()), result)
		},
	}

	ref.register(cmd)
	return cmd
}

func writeListResult(w io.Writer, format output.Format, result ListResult) error {
	formatter := output.NewFormatter(format)
	switch format {
	case output.FormatJSON, output.FormatYAML:
		return formatter.Format(w, result)
	}

	if len(result.Mapping) == 0 {
		if _, err := fmt.Fprintln(w, "No labels needed correction"); err != nil {
			return err
		}
	} else if err := formatter.Format(w, output.MappingData(mappingOf(result.Mapping))); err != nil {
		return err
	}
	return formatter.Format(w, output.LabelsData(result.Labels))
}

func mappingOf(entries []labels.Rename) labels.Mapping {
	m := make(labels.Mapping, len(entries))
	for _, e := range entries {
		m[e.From] = e.To
	}
	return m
}
