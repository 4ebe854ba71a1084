package planfile

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/framewright/framegen/internal/model"
)

//go:embed schema.cue
var schemaSource string

// Plan is a parsed floor plan: the walls plus optional parameter and
// configuration overrides. Absent params/config fields keep their
// defaults rather than zeroing.
type Plan struct {
	Walls  []model.Wall           `json:"walls" yaml:"walls"`
	Params model.FrameParams      `json:"params" yaml:"params"`
	Config model.GenerationConfig `json:"config" yaml:"config"`
}

// Load error codes.
const (
	ErrCodeNotFound  = "P001" // plan file not found
	ErrCodeRead      = "P002" // file read error
	ErrCodeDecode    = "P003" // YAML/JSON decode error
	ErrCodeSchema    = "P004" // schema violation
	ErrCodeBadSchema = "P005" // embedded schema failed to compile
)

// LoadError is an error produced while loading or validating a plan.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads, validates, and normalizes a plan file.
//
// Validation errors are collected, not fail-fast: a plan with three
// schema violations reports all three. On any error the plan is nil.
func Load(path string) (*Plan, []error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("plan file not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeRead, Message: err.Error()}}
	}
	return Parse(path, data)
}

// Parse validates and decodes plan file contents. The filename is used
// only for error positions.
func Parse(filename string, data []byte) (*Plan, []error) {
	if errs := validateSchema(filename, data); len(errs) > 0 {
		return nil, errs
	}

	// Decode over pre-filled defaults so absent params/config fields
	// keep their default values.
	plan := &Plan{
		Params: model.DefaultFrameParams(),
		Config: model.DefaultGenerationConfig(),
	}
	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeDecode, Message: err.Error()}}
	}

	normalize(plan)
	return plan, nil
}

// validateSchema unifies the document with the embedded CUE schema and
// collects every violation.
func validateSchema(filename string, data []byte) []error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return []error{&LoadError{Code: ErrCodeBadSchema, Message: err.Error()}}
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return []error{&LoadError{Code: ErrCodeDecode, Message: err.Error()}}
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return []error{&LoadError{Code: ErrCodeDecode, Message: err.Error()}}
	}

	unified := schema.Unify(doc)
	if err := unified.Validate(); err != nil {
		var errs []error
		for _, e := range cueerrors.Errors(err) {
			errs = append(errs, &LoadError{
				Code:    ErrCodeSchema,
				Message: e.Error(),
				Pos:     e.Position(),
			})
		}
		return errs
	}
	return nil
}

// normalize canonicalizes user-supplied identifiers to NFC so that ID
// equality during analysis matches visual equality in the source file.
func normalize(plan *Plan) {
	for i := range plan.Walls {
		plan.Walls[i].ID = norm.NFC.String(plan.Walls[i].ID)
		for j := range plan.Walls[i].Openings {
			plan.Walls[i].Openings[j].ID = norm.NFC.String(plan.Walls[i].Openings[j].ID)
		}
	}
	for i, id := range plan.Config.EnabledRules {
		plan.Config.EnabledRules[i] = norm.NFC.String(id)
	}
	for i, id := range plan.Config.DisabledRules {
		plan.Config.DisabledRules[i] = norm.NFC.String(id)
	}
}
