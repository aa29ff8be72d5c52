package recommend

import (
	"encoding/json"
	"net/http"

	"Thermowall/internal/calc/catalog"
	wall "Thermowall/internal/calc/wall"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog           *catalog.Catalog
	DefaultResistance float64
	Log               *zap.Logger
}

func (h *Handler) Insulators(w http.ResponseWriter, r *http.Request) {
	var input InsulatorRecommendInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	resolver := wall.Resolver{Cities: h.Catalog, DefaultResistance: h.DefaultResistance}
	if err := resolver.Resolve(&input.Wall); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := Insulators(input, h.Catalog.Insulators())
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil && h.Log != nil {
		h.Log.Error("encode recommendation", zap.Error(err))
	}
}
