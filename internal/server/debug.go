package server

import (
	"encoding/json"
	"net/http"

	"github.com/dmitryshur/agar-io-back/internal/engine"
	"github.com/dmitryshur/agar-io-back/pkg/logger"
)

// DebugHandler предоставляет доступ к внутреннему состоянию симуляции
type DebugHandler struct {
	World *engine.World
}

func NewDebugHandler(world *engine.World) *DebugHandler {
	return &DebugHandler{World: world}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
}

// /debug/state - счетчики всех трех владельцев состояния.
// Значения снимаются обычными запросами к акторам, так что эндпоинт
// безопасен при любой нагрузке.
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	type StateSummary struct {
		Connections int    `json:"connections"`
		Players     uint32 `json:"players"`
		Dots        uint32 `json:"dots"`
	}

	summary := StateSummary{
		Connections: h.World.ConnectionCount(),
		Players:     h.World.Players().Count(),
		Dots:        h.World.Dots().Count(),
	}

	writeJSON(w, summary)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Debug("debug write failed")
	}
}
