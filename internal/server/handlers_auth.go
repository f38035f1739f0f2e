package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rohanarya/tripkhata/internal/auth"
	"github.com/rohanarya/tripkhata/internal/logger"
	"github.com/rohanarya/tripkhata/internal/models"
)

type credentialsRequest struct {
	Owner    string `json:"owner"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.auth.Register(r.Context(), req.Owner, req.Password)
	if errors.Is(err, auth.ErrBadCredentials) {
		writeError(w, http.StatusBadRequest, "owner and password are required")
		return
	}
	if errors.Is(err, models.ErrDuplicateID) {
		writeError(w, http.StatusConflict, "owner already exists")
		return
	}
	if err != nil {
		logger.Log.Error().Err(err).Str("owner", logger.HashOwnerID(req.Owner)).Msg("Signup failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	logger.Log.Info().Str("owner", logger.HashOwnerID(req.Owner)).Msg("Owner registered")
	writeJSON(w, http.StatusCreated, map[string]string{"owner": req.Owner})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.auth.Login(r.Context(), req.Owner, req.Password)
	if errors.Is(err, auth.ErrBadCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		logger.Log.Error().Err(err).Str("owner", logger.HashOwnerID(req.Owner)).Msg("Login failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context(), bearerToken(r)); err != nil {
		logger.Log.Error().Err(err).Msg("Logout failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
