package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const singleWallPlan = `
walls:
  - id: w1
    start: {x: 0, z: 0}
    end: {x: 4, z: 0}
`

func TestGenerateText(t *testing.T) {
	path := writePlanFile(t, singleWallPlan)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Generated 17 member(s) from 1 wall(s)")
	assert.Contains(t, output, "studs:    8")
	assert.Contains(t, output, "plates:   2")
	assert.Contains(t, output, "noggings: 7")
}

func TestGenerateJSON(t *testing.T) {
	path := writePlanFile(t, singleWallPlan)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   GenerateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Data.WallCount)
	assert.Equal(t, 1, resp.Data.RuleCount)
	assert.Equal(t, 17, resp.Data.Frame.Stats.TotalMembers)
	assert.Len(t, resp.Data.Frame.Members, 17)
}

func TestGenerateParamsOverride(t *testing.T) {
	path := writePlanFile(t, `
walls:
  - id: w1
    start: {x: 0, z: 0}
    end: {x: 4, z: 0}
params:
  double_top_plate: true
  noggings: false
`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Data GenerateResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Frame.Stats.Plates)
	assert.Equal(t, 0, resp.Data.Frame.Stats.Noggings)
}

func TestGenerateMissingPlan(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "P001")
}

func TestGenerateInvalidPlan(t *testing.T) {
	path := writePlanFile(t, `
walls:
  - id: w1
    start: {x: 0, z: 0}
    end: {x: 4, z: 0}
params:
  stud_spacing: -1
`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestGenerateEmptyPlan(t *testing.T) {
	path := writePlanFile(t, "walls: []\n")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGenerateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Generated 0 member(s) from 0 wall(s)")
}
