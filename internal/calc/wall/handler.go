package wall

import (
	"context"
	"encoding/json"
	"net/http"

	"Thermowall/internal/auth"

	"go.uber.org/zap"
)

// Saver stores a finished calculation for a user.
type Saver interface {
	SaveCalculation(ctx context.Context, userID int, kind string, input, result any) (string, error)
}

type Handler struct {
	Resolver Resolver
	Repo     Saver
	Log      *zap.Logger
}

type savedResult struct {
	Result
	ID string `json:"id,omitempty"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.Resolver.Resolve(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	out := savedResult{Result: res}
	if userID, ok := auth.UserID(r.Context()); ok && h.Repo != nil {
		id, err := h.Repo.SaveCalculation(r.Context(), userID, "wall", input, res)
		if err != nil {
			h.log().Error("save calculation", zap.Int("user_id", userID), zap.Error(err))
		} else {
			out.ID = id
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		h.log().Error("encode result", zap.Error(err))
	}
}

func (h *Handler) log() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}
