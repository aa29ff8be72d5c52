package batch

import (
	"encoding/json"
	"net/http"

	wall "Thermowall/internal/calc/wall"

	"go.uber.org/zap"
)

type Handler struct {
	Resolver wall.Resolver
	Log      *zap.Logger
}

func (h *Handler) Walls(w http.ResponseWriter, r *http.Request) {
	var input WallBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateWalls(input, h.Resolver)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil && h.Log != nil {
		h.Log.Error("encode batch result", zap.Error(err))
	}
}
