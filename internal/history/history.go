package history

import (
	"Thermowall/internal/auth"
	"Thermowall/internal/repo"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Store interface {
	ListCalculations(ctx context.Context, userID, limit int) ([]repo.Calculation, error)
	GetCalculation(ctx context.Context, userID int, id string) (repo.Calculation, error)
}

type HistoryHandler struct {
	Repo Store
	Log  *zap.Logger
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	calcs, err := h.Repo.ListCalculations(r.Context(), userID, limit)
	if err != nil {
		h.log().Error("list calculations", zap.Int("user_id", userID), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if calcs == nil {
		calcs = []repo.Calculation{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(calcs); err != nil {
		h.log().Error("encode history", zap.Error(err))
	}
}

func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id := mux.Vars(r)["id"]

	calc, err := h.Repo.GetCalculation(r.Context(), userID, id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Calculation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log().Error("get calculation", zap.String("id", id), zap.Error(err))
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(calc); err != nil {
		h.log().Error("encode calculation", zap.String("id", id), zap.Error(err))
	}
}

func (h *HistoryHandler) log() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}
