// Package server exposes the tracker over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/rohanarya/tripkhata/internal/balance"
	"github.com/rohanarya/tripkhata/internal/models"
)

// Authenticator is the identity collaborator. Everything past the auth
// middleware trusts the owner id it yields.
type Authenticator interface {
	Register(ctx context.Context, ownerID, password string) error
	Login(ctx context.Context, ownerID, password string) (string, error)
	Authenticate(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string) error
}

// ParamsStore is the fixed-parameter persistence surface.
type ParamsStore interface {
	Get(ctx context.Context, ownerID string) (models.FixedParameters, error)
	Set(ctx context.Context, ownerID string, p models.FixedParameters) error
}

// Ledger is the append-only ledger persistence surface.
type Ledger interface {
	AppendExpense(ctx context.Context, expense *models.Expense) error
	AppendIncome(ctx context.Context, income *models.Income) error
	AppendPlace(ctx context.Context, place *models.Place) error
	ListExpenses(ctx context.Context, ownerID string) ([]models.Expense, error)
	ListIncomes(ctx context.Context, ownerID string) ([]models.Income, error)
	ListPlaces(ctx context.Context, ownerID string) ([]models.Place, error)
}

// SummaryProvider derives the balance figures for an owner.
type SummaryProvider interface {
	Summary(ctx context.Context, ownerID string) (balance.Summary, error)
}

// Server holds the handler dependencies and the router.
type Server struct {
	auth    Authenticator
	params  ParamsStore
	ledger  Ledger
	summary SummaryProvider
	router  chi.Router
}

// New creates a Server with all routes registered.
func New(auth Authenticator, params ParamsStore, ledger Ledger, summary SummaryProvider) *Server {
	s := &Server{
		auth:    auth,
		params:  params,
		ledger:  ledger,
		summary: summary,
	}

	r := chi.NewRouter()
	r.Use(requestLogger)

	r.Post("/api/signup", s.handleSignup)
	r.Post("/api/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireOwner)

		r.Post("/api/logout", s.handleLogout)

		r.Get("/api/parameters", s.handleGetParameters)
		r.Put("/api/parameters", s.handleSetParameters)

		r.Post("/api/expenses", s.handleAppendExpense)
		r.Get("/api/expenses", s.handleListExpenses)
		r.Post("/api/incomes", s.handleAppendIncome)
		r.Get("/api/incomes", s.handleListIncomes)
		r.Post("/api/places", s.handleAppendPlace)
		r.Get("/api/places", s.handleListPlaces)

		r.Get("/api/summary", s.handleSummary)
		r.Get("/api/summary/chart", s.handleSummaryChart)
		r.Get("/api/export/expenses.csv", s.handleExportExpensesCSV)
	})

	s.router = r
	return s
}

// Handler returns the root http.Handler with tracing instrumentation.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.router, "tripkhata")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
