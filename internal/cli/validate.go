package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framewright/framegen/internal/planfile"
)

// ValidationResult holds plan validation results.
type ValidationResult struct {
	Valid  bool       `json:"valid"`
	Errors []CLIError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <plan-file>",
		Short: "Validate a floor plan without generating",
		Long: `Validate a floor plan file against the plan schema without running
the generation pipeline. Faster feedback while editing plans.

Schema violations are collected, not fail-fast: a plan with three
problems reports all three.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, planPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	plan, loadErrors := planfile.Load(planPath)
	if plan != nil {
		formatter.VerboseLog("Plan has %d wall(s)", len(plan.Walls))
		return outputValidateSuccess(formatter)
	}

	// Missing or unreadable file is a command error, not a validation
	// verdict.
	var loadErr *planfile.LoadError
	if errors.As(loadErrors[0], &loadErr) &&
		(loadErr.Code == planfile.ErrCodeNotFound || loadErr.Code == planfile.ErrCodeRead) {
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return NewExitError(ExitCommandError, loadErr.Error())
	}

	return outputValidationErrors(formatter, loadErrors)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}

	fmt.Fprintln(formatter.Writer, "✓ Plan valid")
	return nil
}

// outputValidationErrors outputs schema violations and returns the
// validation-failure exit code.
func outputValidationErrors(formatter *OutputFormatter, errs []error) error {
	cliErrs := make([]CLIError, 0, len(errs))
	for _, err := range errs {
		var loadErr *planfile.LoadError
		if errors.As(err, &loadErr) {
			cliErrs = append(cliErrs, CLIError{Code: loadErr.Code, Message: loadErr.Message})
			continue
		}
		cliErrs = append(cliErrs, CLIError{Code: planfile.ErrCodeDecode, Message: err.Error()})
	}

	if formatter.Format == "json" {
		result := ValidationResult{Valid: false, Errors: cliErrs}
		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error:  &cliErrs[0],
		}
		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(cliErrs)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, e := range cliErrs {
		fmt.Fprintf(formatter.Writer, "  %s: %s\n", e.Code, e.Message)
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(cliErrs)))
}
