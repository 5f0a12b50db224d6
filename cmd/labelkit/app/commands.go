package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/labelkit/cmd/labelkit/cmd/correct"
	"github.com/agentstation/labelkit/cmd/labelkit/cmd/fixtures"
)

// CreateCorrectCommand creates the correct command with app dependencies.
func (a *App) CreateCorrectCommand() *cobra.Command {
	return correct.NewCommand(a)
}

// CreateFixturesCommand creates the fixtures command with app dependencies.
func (a *App) CreateFixturesCommand() *cobra.Command {
	return fixtures.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "labelkit %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(out, "  commit:   %s\n", a.commit)
				fmt.Fprintf(out, "  built:    %s\n", a.date)
				fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
				fmt.Fprintf(out, "  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
