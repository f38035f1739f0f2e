package server

import (
	"fmt"
	"net/http"

	"github.com/go-analyze/charts"

	"github.com/rohanarya/tripkhata/internal/logger"
	"github.com/rohanarya/tripkhata/internal/models"
)

// GenerateExpenseChart creates a pie chart of trip expenses by category.
// Returns PNG image as bytes.
func GenerateExpenseChart(expenses []models.Expense) ([]byte, error) {
	totals := make(map[models.ExpenseCategory]int64)
	for _, exp := range expenses {
		if exp.Account != models.AccountTrip {
			continue
		}
		totals[exp.Category] += exp.Amount
	}
	if len(totals) == 0 {
		return nil, fmt.Errorf("no trip expenses to chart")
	}

	// Stable slice order, following the category display order.
	var values []float64
	var names []string
	for _, cat := range models.ExpenseCategories {
		if amount, ok := totals[cat]; ok {
			names = append(names, string(cat))
			values = append(values, float64(amount))
		}
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: "Trip Spending by Category",
		}),
		charts.LegendLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf, nil
}

func (s *Server) handleSummaryChart(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())

	expenses, err := s.ledger.ListExpenses(r.Context(), ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Str("owner", logger.HashOwnerID(ownerID)).Msg("Failed to list expenses for chart")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	png, err := GenerateExpenseChart(expenses)
	if err != nil {
		writeError(w, http.StatusNotFound, "no trip expenses to chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
