package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framewright/framegen/internal/model"
	"github.com/framewright/framegen/internal/planfile"
	"github.com/framewright/framegen/internal/service"
)

// GenerateResult is the JSON payload of a successful generate run.
type GenerateResult struct {
	Frame     model.TimberFrame `json:"frame"`
	WallCount int               `json:"wall_count"`
	RuleCount int               `json:"rule_count"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <plan-file>",
		Short: "Generate a timber frame from a floor plan",
		Long: `Generate a 3D timber frame from a 2D floor plan file.

The plan is validated against the plan schema, then run through the
rule pipeline: wall analysis (corner detection), rule selection, and
member generation.

Example:
  framegen generate ./plan.yaml
  framegen generate --format json ./plan.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runGenerate(opts *RootOptions, planPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	plan, loadErrors := loadPlan(formatter, planPath)
	if plan == nil {
		return outputPlanErrors(formatter, loadErrors)
	}

	svc := service.New(nil)
	logCycleWarnings(formatter, svc)

	formatter.VerboseLog("Loaded plan with %d wall(s)", len(plan.Walls))
	frame := svc.Generate(plan.Walls, &plan.Params, &plan.Config)

	result := GenerateResult{
		Frame:     frame,
		WallCount: len(plan.Walls),
		RuleCount: len(svc.ListRules()),
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	s := frame.Stats
	fmt.Fprintf(formatter.Writer, "Generated %d member(s) from %d wall(s)\n", s.TotalMembers, len(plan.Walls))
	fmt.Fprintf(formatter.Writer, "  studs:    %d\n", s.Studs)
	fmt.Fprintf(formatter.Writer, "  plates:   %d\n", s.Plates)
	fmt.Fprintf(formatter.Writer, "  noggings: %d\n", s.Noggings)
	if s.Other > 0 {
		fmt.Fprintf(formatter.Writer, "  other:    %d\n", s.Other)
	}
	return nil
}

// loadPlan loads a plan file, reporting progress in verbose mode.
func loadPlan(formatter *OutputFormatter, path string) (*planfile.Plan, []error) {
	formatter.VerboseLog("Loading plan: %s", path)
	return planfile.Load(path)
}

// logCycleWarnings surfaces rule dependency cycles as diagnostics.
// Cycles degrade ordering, they never abort generation.
func logCycleWarnings(formatter *OutputFormatter, svc *service.FrameService) {
	for _, w := range svc.CycleWarnings() {
		fmt.Fprintf(formatter.GetErrWriter(), "warning: %s\n", w.Message)
	}
}

// outputPlanErrors reports plan load failures with the right exit code:
// a missing or unreadable file is a command error, schema violations
// are validation failures.
func outputPlanErrors(formatter *OutputFormatter, errs []error) error {
	code := ExitFailure
	firstCode := planfile.ErrCodeSchema
	for i, err := range errs {
		var loadErr *planfile.LoadError
		if errors.As(err, &loadErr) {
			if i == 0 {
				firstCode = loadErr.Code
			}
			if loadErr.Code == planfile.ErrCodeNotFound || loadErr.Code == planfile.ErrCodeRead {
				code = ExitCommandError
			}
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			continue
		}
		_ = formatter.Error(planfile.ErrCodeDecode, err.Error(), nil)
	}
	return NewExitError(code, fmt.Sprintf("%s: plan load failed with %d error(s)", firstCode, len(errs)))
}
