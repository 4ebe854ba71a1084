package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framewright/framegen/internal/service"
)

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List registered framing rules",
		Long: `List the framing rules registered in the default rule set, sorted by ID.

With --verbose, also reports dependency cycle warnings among the
registered rules.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(rootOpts, cmd)
		},
	}

	return cmd
}

func runRules(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	svc := service.New(nil)
	infos := svc.ListRules()

	if opts.Verbose {
		for _, w := range svc.CycleWarnings() {
			formatter.VerboseLog("warning: %s", w.Message)
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	fmt.Fprintf(formatter.Writer, "%d rule(s) registered:\n", len(infos))
	for _, info := range infos {
		fmt.Fprintf(formatter.Writer, "  %-24s %s\n", info.ID, info.Name)
	}
	return nil
}
