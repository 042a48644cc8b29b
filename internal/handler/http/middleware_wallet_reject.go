package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/artisan-market/internal/app"
	"github.com/MKhiriev/artisan-market/internal/logger"
)

// walletRejectHeader lets a test wallet decline a write on the node side.
const walletRejectHeader = "X-Wallet-Reject"

// withWalletReject refuses the request with 403 and the wallet rejection
// message when walletRejectHeader is "true".
func withWalletReject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.EqualFold(strings.TrimSpace(r.Header.Get(walletRejectHeader)), "true") {
			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("write rejected by wallet")
			http.Error(w, app.MsgUserRejectedTransaction, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
