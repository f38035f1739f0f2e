package server

import (
	"encoding/json"
	"net/http"

	"github.com/rohanarya/tripkhata/internal/logger"
	"github.com/rohanarya/tripkhata/internal/models"
)

func (s *Server) handleGetParameters(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())

	params, err := s.params.Get(r.Context(), ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Str("owner", logger.HashOwnerID(ownerID)).Msg("Failed to load parameters")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, params)
}

// handleSetParameters replaces all eight fields in one shot. There is no
// per-field patch; callers merge on their side.
func (s *Server) handleSetParameters(w http.ResponseWriter, r *http.Request) {
	ownerID := ownerFromContext(r.Context())

	var params models.FixedParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.params.Set(r.Context(), ownerID, params); err != nil {
		logger.Log.Error().Err(err).Str("owner", logger.HashOwnerID(ownerID)).Msg("Failed to save parameters")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, params)
}
