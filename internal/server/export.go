package server

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rohanarya/tripkhata/internal/logger"
	"github.com/rohanarya/tripkhata/internal/models"
)

// GenerateExpensesCSV generates a CSV file from a list of expenses.
func GenerateExpensesCSV(expenses []models.Expense) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"ID", "Date", "Time", "Title", "Amount", "Category", "Account"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range expenses {
		row := []string{
			expenses[i].EntryID,
			expenses[i].Date,
			expenses[i].Time,
			expenses[i].Title,
			strconv.FormatInt(expenses[i].Amount, 10),
			string(expenses[i].Category),
			string(expenses[i].Account),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *Server) handleExportExpensesCSV(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())

	expenses, err := s.ledger.ListExpenses(r.Context(), ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Str("owner", logger.HashOwnerID(ownerID)).Msg("Failed to list expenses for export")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	data, err := GenerateExpensesCSV(expenses)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to generate CSV")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
