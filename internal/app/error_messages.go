// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// contract node handlers and the marketplace client.
//
// Msg* constants are written into HTTP response bodies and matched by the
// client when mapping transport errors. UI* constants are the user-facing
// texts of the marketplace.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoAuthHeader is returned for writes without an Authorization header.
	MsgNoAuthHeader = "authorization header is missing"

	// MsgUserRejectedTransaction is the body of a write refused on behalf
	// of the wallet owner.
	MsgUserRejectedTransaction = "user rejected transaction"

	// MsgInvalidKey is returned when a contract key is empty, too long or
	// contains characters outside [A-Za-z0-9_-].
	MsgInvalidKey = "invalid contract key"

	// MsgValueTooLarge is returned when a contract value exceeds the size limit.
	MsgValueTooLarge = "contract value too large"

	// MsgContractUnavailable is returned when storage cannot serve requests.
	MsgContractUnavailable = "contract is not available"

	// MsgVersionConflict is returned when a slot changed between the read
	// and the write of setData.
	MsgVersionConflict = "contract slot was modified concurrently"

	// MsgInvalidAddress is returned for malformed wallet addresses.
	MsgInvalidAddress = "invalid wallet address"

	// MsgChallengeNotFound is returned when a login challenge is unknown,
	// already used or expired.
	MsgChallengeNotFound = "challenge expired or not found"

	// MsgTokenCreationFailed is returned when a session token cannot be
	// signed after a successful challenge.
	MsgTokenCreationFailed = "token creation failed"

	// MsgInvalidSignature is returned when a challenge signature does not
	// verify against the supplied public key and address.
	MsgInvalidSignature = "invalid signature"
)

const (
	UILoading           = "Loading artisan marketplace..."
	UIEncrypting        = "Encrypting artisan data with FHE..."
	UIArtisanAdded      = "Artisan added with FHE encryption!"
	UITxRejected        = "Transaction rejected by user"
	UISubmissionFailed  = "Submission failed: "
	UIConnectWallet     = "Please connect wallet first"
	UIFillRequired      = "Please fill required fields"
	UIConnectFailed     = "Failed to connect wallet"
	UIRefreshFHE        = "This would trigger FHE recomputation in a real implementation"
	UIMatchFHE          = "This would use FHE to match your encrypted preferences in a real implementation"
	UINoResults         = "No artisans found matching your criteria"
	UIFHENotice         = "Your style preferences will be encrypted with FHE for privacy"
	UIEncryptedField    = "🔒 FHE-Encrypted"
	UIRejectionFragment = "user rejected transaction"
)
