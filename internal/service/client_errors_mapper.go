// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/artisan-market/internal/adapter"
	"github.com/MKhiriev/artisan-market/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgInvalidKey:
			return ErrValidationInvalidKey
		case app.MsgInvalidAddress:
			return ErrInvalidAddress
		}

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return ErrValidationValueTooLarge

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgTokenIsExpiredOrInvalid, app.MsgNoAuthHeader:
			return ErrTokenIsExpiredOrInvalid
		case app.MsgChallengeNotFound:
			return ErrChallengeNotFound
		case app.MsgInvalidSignature:
			return ErrInvalidSignature
		}

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrContractUnavailable

	case errors.Is(err, adapter.ErrInternalServerError):
		if msg == app.MsgTokenCreationFailed {
			return ErrTokenCreationFailed
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
