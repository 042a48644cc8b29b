package models

import "time"

// ChallengeRequest asks the contract node for a one-time message that the
// wallet must sign to prove control of Address.
type ChallengeRequest struct {
	Address string `json:"address"`
}

// Challenge is a one-time message issued for a wallet address.
type Challenge struct {
	Address   string    `json:"address"`
	Nonce     string    `json:"nonce"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Message returns the exact bytes a wallet signs for the challenge.
func (c Challenge) Message() []byte {
	return []byte("artisan-market login\naddress: " + c.Address + "\nnonce: " + c.Nonce)
}

// ConnectRequest proves control of Address by presenting the public key and
// the signature over the challenge identified by Nonce.
type ConnectRequest struct {
	Address   string `json:"address"`
	Nonce     string `json:"nonce"`
	PublicKey []byte `json:"public_key"`
	Signature []byte `json:"signature"`
}
