package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rohanarya/tripkhata/internal/logger"
	"github.com/rohanarya/tripkhata/internal/models"
)

type expenseRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Amount   int64  `json:"amount"`
	Category string `json:"category"`
	Account  string `json:"account"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type incomeRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Amount   int64  `json:"amount"`
	Category string `json:"category"`
	Account  string `json:"account"`
	Date     string `json:"date"`
}

type placeRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validClock(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

func (s *Server) handleAppendExpense(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.ID == "" || req.Title == "":
		writeError(w, http.StatusBadRequest, "id and title are required")
		return
	case !models.ExpenseCategory(req.Category).Valid():
		writeError(w, http.StatusBadRequest, "unknown expense category")
		return
	case !models.Account(req.Account).Valid():
		writeError(w, http.StatusBadRequest, "account must be trip or savings")
		return
	case !validDate(req.Date):
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	case !validClock(req.Time):
		writeError(w, http.StatusBadRequest, "time must be HH:MM")
		return
	}

	expense := &models.Expense{
		EntryID:  req.ID,
		OwnerID:  ownerID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: models.ExpenseCategory(req.Category),
		Account:  models.Account(req.Account),
		Date:     req.Date,
		Time:     req.Time,
	}
	if err := s.ledger.AppendExpense(r.Context(), expense); err != nil {
		s.writeAppendError(w, err, ownerID)
		return
	}

	logger.Log.Info().
		Str("owner", logger.HashOwnerID(ownerID)).
		Str("title", logger.SanitizeTitle(req.Title)).
		Str("account", req.Account).
		Msg("Expense appended")
	writeJSON(w, http.StatusCreated, expense)
}

func (s *Server) handleAppendIncome(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())

	var req incomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.ID == "" || req.Title == "":
		writeError(w, http.StatusBadRequest, "id and title are required")
		return
	case !models.IncomeCategory(req.Category).Valid():
		writeError(w, http.StatusBadRequest, "unknown income category")
		return
	case !models.Account(req.Account).Valid():
		writeError(w, http.StatusBadRequest, "account must be trip or savings")
		return
	case !validDate(req.Date):
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	income := &models.Income{
		EntryID:  req.ID,
		OwnerID:  ownerID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: models.IncomeCategory(req.Category),
		Account:  models.Account(req.Account),
		Date:     req.Date,
	}
	if err := s.ledger.AppendIncome(r.Context(), income); err != nil {
		s.writeAppendError(w, err, ownerID)
		return
	}

	logger.Log.Info().
		Str("owner", logger.HashOwnerID(ownerID)).
		Str("title", logger.SanitizeTitle(req.Title)).
		Str("account", req.Account).
		Msg("Income appended")
	writeJSON(w, http.StatusCreated, income)
}

func (s *Server) handleAppendPlace(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())

	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.ID == "" || req.Title == "":
		writeError(w, http.StatusBadRequest, "id and title are required")
		return
	case !models.PlaceCategory(req.Category).Valid():
		writeError(w, http.StatusBadRequest, "unknown place category")
		return
	}

	place := &models.Place{
		EntryID:  req.ID,
		OwnerID:  ownerID,
		Title:    req.Title,
		Category: models.PlaceCategory(req.Category),
	}
	if err := s.ledger.AppendPlace(r.Context(), place); err != nil {
		s.writeAppendError(w, err, ownerID)
		return
	}

	logger.Log.Info().
		Str("owner", logger.HashOwnerID(ownerID)).
		Str("title", logger.SanitizeTitle(req.Title)).
		Msg("Place appended")
	writeJSON(w, http.StatusCreated, place)
}

func (s *Server) writeAppendError(w http.ResponseWriter, err error, ownerID string) {
	if errors.Is(err, models.ErrDuplicateID) {
		writeError(w, http.StatusConflict, "entry id already exists")
		return
	}
	logger.Log.Error().Err(err).Str("owner", logger.HashOwnerID(ownerID)).Msg("Append failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())

	expenses, err := s.ledger.ListExpenses(r.Context(), ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Str("owner", logger.HashOwnerID(ownerID)).Msg("Failed to list expenses")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleListIncomes(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())

	incomes, err := s.ledger.ListIncomes(r.Context(), ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Str("owner", logger.HashOwnerID(ownerID)).Msg("Failed to list incomes")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if incomes == nil {
		incomes = []models.Income{}
	}
	writeJSON(w, http.StatusOK, incomes)
}

func (s *Server) handleListPlaces(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())

	places, err := s.ledger.ListPlaces(r.Context(), ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Str("owner", logger.HashOwnerID(ownerID)).Msg("Failed to list places")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if places == nil {
		places = []models.Place{}
	}
	writeJSON(w, http.StatusOK, places)
}
