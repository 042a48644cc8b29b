// Package wallet implements the local signing wallet of the marketplace
// client.
//
// Accounts are ed25519 key pairs kept in a passphrase-protected keystore
// file. An account address is "0x" followed by the hex of the last 20 bytes
// of keccak256(public key). [KeystoreProvider] exposes the accounts through
// the [Provider] interface: account requests, account-change notification,
// message signing and transaction confirmation.
package wallet
