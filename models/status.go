package models

// TxState is the three-state flag of a submission banner.
type TxState string

const (
	TxPending TxState = "pending"
	TxSuccess TxState = "success"
	TxError   TxState = "error"
)

// TransactionStatus is the transient submission banner shown to the user.
// The zero value is an invisible pending status, which is also the state
// the banner returns to after it is cleared.
type TransactionStatus struct {
	Visible bool
	Status  TxState
	Message string
}

// HiddenStatus is the status the banner is reset to when it is cleared.
var HiddenStatus = TransactionStatus{Visible: false, Status: TxPending}
