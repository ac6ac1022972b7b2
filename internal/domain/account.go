package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account number already taken")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrInvalidAmount = errors.New("amount must be a positive number")

// Account is a named balance-holding record with an append-only
// transaction history. Balance is kept in minor currency units (cents)
// and only ever changes through Deposit and Withdraw.
type Account struct {
	AccountNo    string        `json:"account_no"`
	OwnerName    string        `json:"owner_name"`
	Email        string        `json:"email,omitempty"`
	Balance      int64         `json:"balance"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Transactions []Transaction `json:"transactions"`
}

func NewAccount(accountNo, ownerName, email string, openingBalance int64) (*Account, error) {
	if openingBalance < 0 {
		return nil, ErrInvalidAmount
	}
	now := time.Now()
	return &Account{
		AccountNo: accountNo,
		OwnerName: strings.TrimSpace(ownerName),
		Email:     strings.TrimSpace(email),
		Balance:   openingBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Deposit increases the balance and appends the matching history entry.
func (a *Account) Deposit(amount int64, note string) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	a.Balance += amount
	tx := NewTransaction(TransactionDeposit, amount, a.Balance, note)
	a.Transactions = append(a.Transactions, tx)
	a.UpdatedAt = tx.Time
	return tx, nil
}

// Withdraw decreases the balance, rejecting any amount that would drive
// it negative.
func (a *Account) Withdraw(amount int64, note string) (Transaction, error) {
	if amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	if a.Balance < amount {
		return Transaction{}, ErrInsufficientFunds
	}
	a.Balance -= amount
	tx := NewTransaction(TransactionWithdrawal, amount, a.Balance, note)
	a.Transactions = append(a.Transactions, tx)
	a.UpdatedAt = tx.Time
	return tx, nil
}

// UpdateDetails replaces the owner fields that are non-empty. Balance
// and history are untouched.
func (a *Account) UpdateDetails(ownerName, email string) {
	if name := strings.TrimSpace(ownerName); name != "" {
		a.OwnerName = name
	}
	if addr := strings.TrimSpace(email); addr != "" {
		a.Email = addr
	}
	a.UpdatedAt = time.Now()
}

// Matches reports whether the query is a case-insensitive substring of
// the owner name or email. An empty query matches everything.
func (a *Account) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.OwnerName), q) ||
		strings.Contains(strings.ToLower(a.Email), q)
}
