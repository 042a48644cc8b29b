package tui

import (
	"github.com/MKhiriev/artisan-market/models"
)

type artisansLoadedMsg struct {
	artisans []models.Artisan
}

type walletConnectedMsg struct {
	account string
	err     error
}

type accountCreatedMsg struct {
	account string
	err     error
}

type accountChangedMsg struct {
	account string
}

type artisanAddedMsg struct {
	artisan models.Artisan
	err     error
}

type statusChangedMsg struct {
	status models.TransactionStatus
}

// approvalRequestMsg carries a pending wallet approval into the program.
// Exactly one value must be sent on reply.
type approvalRequestMsg struct {
	address string
	key     string
	reply   chan<- bool
}

type closeFormMsg struct{}

type clearNoticeMsg struct {
	seq int
}
