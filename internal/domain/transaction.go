package domain

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// Transaction is an immutable record of one balance-changing event.
// BalanceAfter snapshots the account balance immediately after the
// change was applied.
type Transaction struct {
	ID           string          `json:"id"`
	Time         time.Time       `json:"time"`
	Type         TransactionType `json:"type"`
	Amount       int64           `json:"amount"`
	BalanceAfter int64           `json:"balance_after"`
	Note         string          `json:"note,omitempty"`
}

func NewTransaction(txType TransactionType, amount, balanceAfter int64, note string) Transaction {
	return Transaction{
		ID:           uuid.NewString(),
		Time:         time.Now(),
		Type:         txType,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Note:         note,
	}
}
