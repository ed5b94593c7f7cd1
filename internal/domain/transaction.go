package domain

import "time"

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionSuccess   TransactionStatus = "success"
)

type PaymentMethod string

const (
	PaymentOrangeMoney PaymentMethod = "OM"
	PaymentDjomy       PaymentMethod = "DJOMY"
)

type Transaction struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId"`
	User          *User             `json:"user,omitempty"`
	Type          TransactionType   `json:"type"`
	Amount        float64           `json:"amount"`
	Description   string            `json:"description"`
	Timestamp     time.Time         `json:"timestamp"`
	Status        TransactionStatus `json:"status"`
	Reference     string            `json:"reference,omitempty"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	OrderID       string            `json:"orderId"`
	PayToken      string            `json:"payToken,omitempty"`
}

// Settled reports whether the transaction is finalized. Both "completed" and
// "success" count as settled.
func (t *Transaction) Settled() bool {
	return t.Status == TransactionCompleted || t.Status == TransactionSuccess
}
