package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framewright/framegen/internal/rules"
	"github.com/framewright/framegen/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &Config{Port: "0", Environment: "test", ReadTimeout: 5, WriteTimeout: 5}
	return New(cfg, service.New(rules.DefaultRegistry()))
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	return resp.StatusCode, decoded
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(data))
}

func TestGenerate_SingleWall(t *testing.T) {
	app := newTestApp(t)

	status, body := postJSON(t, app, "/generate", `{
		"walls": [{"id": "w1", "start": {"x": 0, "z": 0}, "end": {"x": 4, "z": 0}}]
	}`)

	require.Equal(t, 200, status)
	assert.Equal(t, float64(1), body["wall_count"])
	assert.Equal(t, float64(1), body["rule_count"])

	frame, ok := body["frame"].(map[string]any)
	require.True(t, ok)
	stats, ok := frame["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(17), stats["total_members"])
	assert.Equal(t, float64(8), stats["studs"])
	assert.Equal(t, float64(2), stats["plates"])
	assert.Equal(t, float64(7), stats["noggings"])
}

func TestGenerate_PartialParamsOverride(t *testing.T) {
	app := newTestApp(t)

	// Only double_top_plate is overridden; spacing stays at the 0.6
	// default, so the 4m wall still gets 8 studs but one extra plate.
	status, body := postJSON(t, app, "/generate", `{
		"walls": [{"id": "w1", "start": {"x": 0, "z": 0}, "end": {"x": 4, "z": 0}}],
		"params": {"double_top_plate": true}
	}`)

	require.Equal(t, 200, status)
	frame := body["frame"].(map[string]any)
	stats := frame["stats"].(map[string]any)
	assert.Equal(t, float64(3), stats["plates"])
	assert.Equal(t, float64(8), stats["studs"])
}

func TestGenerate_EmptyPlan(t *testing.T) {
	app := newTestApp(t)

	status, body := postJSON(t, app, "/generate", `{"walls": []}`)

	require.Equal(t, 200, status)
	assert.Equal(t, float64(0), body["wall_count"])
	frame := body["frame"].(map[string]any)
	stats := frame["stats"].(map[string]any)
	assert.Equal(t, float64(0), stats["total_members"])
}

func TestGenerate_MalformedJSON(t *testing.T) {
	app := newTestApp(t)

	status, body := postJSON(t, app, "/generate", `{"walls": [`)

	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "invalid request body")
}

func TestRules_List(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/rules", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var infos []service.RuleInfo
	require.NoError(t, json.Unmarshal(data, &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, rules.PlatformFrameRuleID, infos[0].ID)
	assert.NotEmpty(t, infos[0].Name)
}

func TestRequestID_Generated(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRequestID_Echoed(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "client-supplied-id", resp.Header.Get("X-Request-ID"))
}
