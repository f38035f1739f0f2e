package server

import (
	"net/http"

	"github.com/rohanarya/tripkhata/internal/balance"
	"github.com/rohanarya/tripkhata/internal/logger"
)

// summaryResponse is the wire form of a balance.Summary. SafeDailySpend is
// rounded to two decimals here and nowhere earlier.
type summaryResponse struct {
	TripSpent            int64  `json:"trip_spent"`
	SavingsSpent         int64  `json:"savings_spent"`
	TripIncome           int64  `json:"trip_income"`
	SavingsIncome        int64  `json:"savings_income"`
	TripEffectiveSpent   int64  `json:"trip_effective_spent"`
	TripTotalIncoming    int64  `json:"trip_total_incoming"`
	TripRemainingBalance int64  `json:"trip_remaining_balance"`
	SafeDailySpend       string `json:"safe_daily_spend"`
	TotalSavingsBalance  int64  `json:"total_savings_balance"`
}

func toSummaryResponse(sum balance.Summary) summaryResponse {
	return summaryResponse{
		TripSpent:            sum.TripSpent,
		SavingsSpent:         sum.SavingsSpent,
		TripIncome:           sum.TripIncome,
		SavingsIncome:        sum.SavingsIncome,
		TripEffectiveSpent:   sum.TripEffectiveSpent,
		TripTotalIncoming:    sum.TripTotalIncoming,
		TripRemainingBalance: sum.TripRemainingBalance,
		SafeDailySpend:       sum.SafeDailySpend.StringFixed(2),
		TotalSavingsBalance:  sum.TotalSavingsBalance,
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())

	sum, err := s.summary.Summary(r.Context(), ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Str("owner", logger.HashOwnerID(ownerID)).Msg("Failed to compute summary")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(sum))
}
