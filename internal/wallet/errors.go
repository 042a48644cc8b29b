package wallet

import "errors"

var (
	// ErrNoAccounts is returned by RequestAccounts when the keystore is empty.
	ErrNoAccounts = errors.New("wallet has no accounts")
	// ErrUnknownAccount is returned when an address is not held by the wallet.
	ErrUnknownAccount = errors.New("account not found in wallet")
	// ErrUserRejected is returned when the user declines a transaction.
	// The text matches the rejection message of browser wallets.
	ErrUserRejected = errors.New("user rejected transaction")
	// ErrCorruptKeystore is returned when the keystore file cannot be decoded.
	ErrCorruptKeystore = errors.New("corrupt keystore file")
)
