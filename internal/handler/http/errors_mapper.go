package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/service"
	"github.com/MKhiriev/artisan-market/internal/store"
)

// errorResponses is checked in order; wrapped errors often match several
// entries and the first one wins. The message is what the client matches on.
var errorResponses = []struct {
	target  error
	status  int
	message string
}{
	{service.ErrValidationValueTooLarge, http.StatusRequestEntityTooLarge, app.MsgValueTooLarge},
	{service.ErrValidationInvalidKey, http.StatusBadRequest, app.MsgInvalidKey},
	{service.ErrInvalidAddress, http.StatusBadRequest, app.MsgInvalidAddress},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrChallengeNotFound, http.StatusUnauthorized, app.MsgChallengeNotFound},
	{service.ErrInvalidSignature, http.StatusUnauthorized, app.MsgInvalidSignature},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgTokenCreationFailed},
	{service.ErrContractUnavailable, http.StatusServiceUnavailable, app.MsgContractUnavailable},

	{store.ErrVersionConflict, http.StatusConflict, app.MsgVersionConflict},
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgContractUnavailable},
}

// responseFromError returns the status and body for err. Unknown errors
// become 500 without leaking their text.
func responseFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status, message := responseFromError(err)
	http.Error(w, message, status)
}
