package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/logger"
	"github.com/MKhiriev/artisan-market/internal/utils"
	"github.com/MKhiriev/artisan-market/models"
)

func (h *Handler) isAvailable(w http.ResponseWriter, r *http.Request) {
	available := h.services.ContractService.IsAvailable(r.Context())

	utils.WriteJSON(w, models.AvailabilityResponse{Available: available}, http.StatusOK)
}

// getData answers an unset key with 200 and an empty value.
func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := chi.URLParam(r, "key")

	value, err := h.services.ContractService.GetData(r.Context(), key)
	if err != nil {
		log.Err(err).Str("key", key).Msg("error reading contract data")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.DataResponse{Key: key, Value: value}, http.StatusOK)
}

func (h *Handler) setData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	key := chi.URLParam(r, "key")

	from, ok := utils.GetAddressFromContext(ctx)
	if !ok {
		log.Err(ErrNoWalletInContext).Send()
		http.Error(w, app.MsgNoAuthHeader, http.StatusUnauthorized)
		return
	}

	var req models.SetDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	tx, err := h.services.ContractService.SetData(ctx, from, key, req.Value)
	if err != nil {
		log.Err(err).Str("key", key).Str("from", from).Msg("error writing contract data")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, tx, http.StatusOK)
}
