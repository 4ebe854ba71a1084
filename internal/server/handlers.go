package server

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"github.com/framewright/framegen/internal/model"
	"github.com/framewright/framegen/internal/service"
)

// GenerateRequest is the body of POST /generate. Params and config are
// optional; absent fields keep their defaults.
type GenerateRequest struct {
	Walls  []model.Wall            `json:"walls"`
	Params *model.FrameParams      `json:"params"`
	Config *model.GenerationConfig `json:"config"`
}

// GenerateResponse wraps the generated frame with request-level counts.
type GenerateResponse struct {
	Frame     model.TimberFrame `json:"frame"`
	RuleCount int               `json:"rule_count"`
	WallCount int               `json:"wall_count"`
}

// Handlers binds the frame service to fiber routes.
type Handlers struct {
	svc *service.FrameService
}

// NewHandlers creates route handlers over the given service.
func NewHandlers(svc *service.FrameService) *Handlers {
	return &Handlers{svc: svc}
}

// Generate handles POST /generate.
func (h *Handlers) Generate(c fiber.Ctx) error {
	// Pre-fill defaults so a partial params/config object overrides
	// only the fields it names.
	params := model.DefaultFrameParams()
	config := model.DefaultGenerationConfig()
	req := GenerateRequest{Params: &params, Config: &config}

	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	frame := h.svc.Generate(req.Walls, req.Params, req.Config)

	return c.JSON(GenerateResponse{
		Frame:     frame,
		RuleCount: len(h.svc.ListRules()),
		WallCount: len(req.Walls),
	})
}

// Rules handles GET /rules.
func (h *Handlers) Rules(c fiber.Ctx) error {
	return c.JSON(h.svc.ListRules())
}

// Health handles GET /health.
func (h *Handlers) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
