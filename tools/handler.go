package tools

import (
	"go.uber.org/zap"

	"github.com/lightninglabs/ironthrone/ironthrone"
)

// Handler provides MCP tool handlers backed by an Iron Throne Engine.
// Each exported method implements a single MCP tool's logic.
type Handler struct {
	engine *ironthrone.Engine
	log    *zap.Logger
}

// NewHandler creates a new Handler wrapping the given Engine. A nil
// logger is replaced with zap.NewNop(), so callers that don't care about
// request logging (tests, mainly) don't need to construct one.
func NewHandler(engine *ironthrone.Engine, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{engine: engine, log: log}
}
