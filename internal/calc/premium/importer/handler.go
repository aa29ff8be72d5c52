package importer

import (
	"encoding/json"
	"net/http"

	"Thermowall/internal/calc/premium/batch"
	wall "Thermowall/internal/calc/wall"

	"go.uber.org/zap"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct {
	Resolver wall.Resolver
	Log      *zap.Logger
}

func (h *Handler) Walls(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := ImportWalls(file, h.Resolver)
	if err != nil {
		http.Error(w, "Invalid file: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil && h.Log != nil {
		h.Log.Error("encode import result", zap.Error(err))
	}
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input batch.WallBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := batch.CalculateWalls(input, h.Resolver)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"walls.xlsx\"")
	if err := ExportWalls(w, input.Items, res.Results); err != nil {
		if h.Log != nil {
			h.Log.Error("xlsx export", zap.Error(err))
		}
		http.Error(w, "Export error", http.StatusInternalServerError)
	}
}
