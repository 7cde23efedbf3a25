package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"StockStress/internal/collector"
	"StockStress/internal/indicator"
	"StockStress/internal/model"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	fetcher       collector.Fetcher
	defaultRange  string
	defaultPeriod int
}

// NewHandler creates a new Handler
func NewHandler(fetcher collector.Fetcher, defaultRange string, defaultPeriod int) *Handler {
	return &Handler{
		fetcher:       fetcher,
		defaultRange:  defaultRange,
		defaultPeriod: defaultPeriod,
	}
}

// rsiPointResponse renders one table row; RSI is null where undefined.
type rsiPointResponse struct {
	Date  string   `json:"date"`
	Close float64  `json:"close"`
	RSI   *float64 `json:"rsi"`
}

type rsiResponse struct {
	Symbol      string             `json:"symbol"`
	Range       string             `json:"range"`
	Period      int                `json:"period"`
	LastRSI     *float64           `json:"last_rsi"`
	Band        model.SignalBand   `json:"band"`
	Explanation string             `json:"explanation"`
	Defined     int                `json:"defined_points"`
	Total       int                `json:"total_points"`
	Tail        []rsiPointResponse `json:"tail"`
	GeneratedAt time.Time          `json:"generated_at"`
}

func nullableFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetRSI handles GET /api/v1/rsi/{symbol}?range=1y&period=14
func (h *Handler) GetRSI(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	symbol := vars["symbol"]

	historyRange := r.URL.Query().Get("range")
	if historyRange == "" {
		historyRange = h.defaultRange
	}

	period := h.defaultPeriod
	if v := r.URL.Query().Get("period"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			http.Error(w, "period must be an integer >= 1", http.StatusBadRequest)
			return
		}
		period = p
	}

	col := collector.NewCollector(h.fetcher, symbol)
	a, err := col.Assess(historyRange, period)
	if err != nil {
		switch {
		case errors.Is(err, collector.ErrNoData):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, indicator.ErrInvalidParameter),
			errors.Is(err, indicator.ErrInsufficientData):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusBadGateway)
		}
		return
	}

	tail := a.Table.Tail(5)
	resp := rsiResponse{
		Symbol:      a.Symbol,
		Range:       a.Range,
		Period:      a.Period,
		LastRSI:     nullableFloat(a.Signal.LastRSI),
		Band:        a.Signal.Band,
		Explanation: a.Signal.Explanation,
		Defined:     a.Table.DefinedCount(),
		Total:       len(a.Table.Points),
		Tail:        make([]rsiPointResponse, len(tail)),
		GeneratedAt: a.GeneratedAt,
	}
	for i, p := range tail {
		resp.Tail[i] = rsiPointResponse{
			Date:  p.Time.Format("2006-01-02"),
			Close: p.Close,
			RSI:   nullableFloat(p.RSI),
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
