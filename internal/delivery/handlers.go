package delivery

import (
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"

	"github.com/Vovarama1992/tzbot/internal/stats"
)

const defaultTxLimit = 20

type StatsHandler struct {
	statsService stats.Service
	log          *logger.ZapLogger
}

func NewStatsHandler(statsService stats.Service, log *logger.ZapLogger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		log:          log,
	}
}

func (h *StatsHandler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.statsService.Totals(r.Context())
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "stats totals failed", Error: err})
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(totals)
}

func (h *StatsHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	limit := defaultTxLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	txs, err := h.statsService.RecentTransactions(r.Context(), limit)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "recent transactions failed", Error: err})
		http.Error(w, "failed to load transactions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(txs)
}
