package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/utils"
	"github.com/MKhiriev/artisan-market/models"
)

func (h *Handler) challenge(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	challenge, err := h.services.WalletAuthService.IssueChallenge(r.Context(), req.Address)
	if err != nil {
		log.Err(err).Str("address", req.Address).Msg("error issuing wallet challenge")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, challenge, http.StatusOK)
}

// connect exchanges a signed challenge for a session token, returned in the
// Authorization response header.
func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.services.WalletAuthService.Connect(r.Context(), req)
	if err != nil {
		log.Err(err).Str("address", req.Address).Msg("wallet connect failed")
		writeError(w, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
