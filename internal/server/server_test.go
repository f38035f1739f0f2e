package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rohanarya/tripkhata/internal/auth"
	"github.com/rohanarya/tripkhata/internal/balance"
	"github.com/rohanarya/tripkhata/internal/models"
)

// fakeAuth is an in-memory Authenticator.
type fakeAuth struct {
	passwords map[string]string
	tokens    map[string]string
	counter   int
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{
		passwords: make(map[string]string),
		tokens:    make(map[string]string),
	}
}

func (f *fakeAuth) Register(_ context.Context, ownerID, password string) error {
	if ownerID == "" || password == "" {
		return auth.ErrBadCredentials
	}
	if _, exists := f.passwords[ownerID]; exists {
		return models.ErrDuplicateID
	}
	f.passwords[ownerID] = password
	return nil
}

func (f *fakeAuth) Login(_ context.Context, ownerID, password string) (string, error) {
	if f.passwords[ownerID] != password || password == "" {
		return "", auth.ErrBadCredentials
	}
	f.counter++
	token := fmt.Sprintf("token-%d", f.counter)
	f.tokens[token] = ownerID
	return token, nil
}

func (f *fakeAuth) Authenticate(_ context.Context, token string) (string, error) {
	ownerID, ok := f.tokens[token]
	if !ok {
		return "", models.ErrNotFound
	}
	return ownerID, nil
}

func (f *fakeAuth) Logout(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

// fakeStore is an in-memory ParamsStore and Ledger. Lists are kept newest
// first, matching the repository contract.
type fakeStore struct {
	params   map[string]models.FixedParameters
	ids      map[string]map[string]bool
	expenses map[string][]models.Expense
	incomes  map[string][]models.Income
	places   map[string][]models.Place
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		params:   make(map[string]models.FixedParameters),
		ids:      make(map[string]map[string]bool),
		expenses: make(map[string][]models.Expense),
		incomes:  make(map[string][]models.Income),
		places:   make(map[string][]models.Place),
	}
}

func (f *fakeStore) Get(_ context.Context, ownerID string) (models.FixedParameters, error) {
	return f.params[ownerID], nil
}

func (f *fakeStore) Set(_ context.Context, ownerID string, p models.FixedParameters) error {
	f.params[ownerID] = p
	return nil
}

func (f *fakeStore) claim(ownerID, entryID string) error {
	if f.ids[ownerID] == nil {
		f.ids[ownerID] = make(map[string]bool)
	}
	if f.ids[ownerID][entryID] {
		return models.ErrDuplicateID
	}
	f.ids[ownerID][entryID] = true
	return nil
}

func (f *fakeStore) AppendExpense(_ context.Context, expense *models.Expense) error {
	if err := f.claim(expense.OwnerID, expense.EntryID); err != nil {
		return err
	}
	expense.CreatedAt = time.Now()
	f.expenses[expense.OwnerID] = append([]models.Expense{*expense}, f.expenses[expense.OwnerID]...)
	return nil
}

func (f *fakeStore) AppendIncome(_ context.Context, income *models.Income) error {
	if err := f.claim(income.OwnerID, income.EntryID); err != nil {
		return err
	}
	income.CreatedAt = time.Now()
	f.incomes[income.OwnerID] = append([]models.Income{*income}, f.incomes[income.OwnerID]...)
	return nil
}

func (f *fakeStore) AppendPlace(_ context.Context, place *models.Place) error {
	if err := f.claim(place.OwnerID, place.EntryID); err != nil {
		return err
	}
	place.CreatedAt = time.Now()
	f.places[place.OwnerID] = append([]models.Place{*place}, f.places[place.OwnerID]...)
	return nil
}

func (f *fakeStore) ListExpenses(_ context.Context, ownerID string) ([]models.Expense, error) {
	return f.expenses[ownerID], nil
}

func (f *fakeStore) ListIncomes(_ context.Context, ownerID string) ([]models.Income, error) {
	return f.incomes[ownerID], nil
}

func (f *fakeStore) ListPlaces(_ context.Context, ownerID string) ([]models.Place, error) {
	return f.places[ownerID], nil
}

// setupServer builds a Server over in-memory fakes with one registered and
// logged-in owner. Returns the server, the session token, and the store.
func setupServer(t *testing.T) (*Server, string, *fakeStore) {
	t.Helper()

	fa := newFakeAuth()
	store := newFakeStore()
	srv := New(fa, store, store, balance.NewService(store, store))

	ctx := context.Background()
	require.NoError(t, fa.Register(ctx, "rohan", "secret123"))
	token, err := fa.Login(ctx, "rohan", "secret123")
	require.NoError(t, err)

	return srv, token, store
}

// doRequest runs one request through the full middleware chain.
func doRequest(t *testing.T, srv *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestAuthMiddleware(t *testing.T) {
	srv, token, _ := setupServer(t)

	t.Run("rejects missing token", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/summary", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects unknown token", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/summary", "bogus", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepts valid token", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/summary", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
