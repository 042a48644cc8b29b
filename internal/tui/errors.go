// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the contract node is unreachable"
	}

	return err.Error()
}

// connectErrorMessage renders a failed wallet connection. The detail line
// is only added when it says something beyond the generic message.
func connectErrorMessage(err error) string {
	detail := humanizeServerUnavailableError(err)
	detail = strings.TrimPrefix(detail, service.ErrConnectWallet.Error()+": ")
	if detail == "" || detail == service.ErrConnectWallet.Error() {
		return app.UIConnectFailed
	}
	return app.UIConnectFailed + "\n" + detail
}
