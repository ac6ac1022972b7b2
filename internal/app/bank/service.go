package bank

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"centralbank/internal/domain"
	"centralbank/internal/repository/accounts_repo"
	"centralbank/internal/util"
)

// maxAccountNoAttempts bounds the fresh-number retry loop on create.
const maxAccountNoAttempts = 100

// ListFilter narrows ListAccounts. Query matches owner name or email as
// a case-insensitive substring; the balance bounds are inclusive and in
// minor units. The zero value matches every account.
type ListFilter struct {
	Query      string
	MinBalance *int64
	MaxBalance *int64
}

type BankService interface {
	CreateAccount(ctx context.Context, ownerName, email string, openingBalance int64) (*domain.Account, error)
	GetAccount(ctx context.Context, accountNo string) (*domain.Account, error)
	ListAccounts(ctx context.Context, filter ListFilter) ([]*domain.Account, error)
	Deposit(ctx context.Context, accountNo string, amount int64, note string) (*domain.Account, error)
	Withdraw(ctx context.Context, accountNo string, amount int64, note string) (*domain.Account, error)
	UpdateDetails(ctx context.Context, accountNo, ownerName, email string) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountNo string) error
	Transactions(ctx context.Context, accountNo string) ([]domain.Transaction, error)
}

// bankService is the sole writer of the record store. Every operation
// runs a full load -> mutate -> save cycle; the mutex keeps overlapping
// HTTP requests from interleaving document rewrites.
type bankService struct {
	mu     sync.Mutex
	store  accounts_repo.Store
	logger *zap.Logger
}

func NewBankService(store accounts_repo.Store, logger *zap.Logger) BankService {
	return &bankService{
		store:  store,
		logger: logger,
	}
}

func (s *bankService) CreateAccount(ctx context.Context, ownerName, email string, openingBalance int64) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load accounts for create", zap.Error(err))
		return nil, err
	}

	var accountNo string
	for i := 0; i < maxAccountNoAttempts; i++ {
		candidate := util.GenerateAccountNo()
		if !col.Has(candidate) {
			accountNo = candidate
			break
		}
	}
	if accountNo == "" {
		return nil, fmt.Errorf("no free account number after %d attempts: %w",
			maxAccountNoAttempts, domain.ErrAccountExists)
	}

	account, err := domain.NewAccount(accountNo, ownerName, email, openingBalance)
	if err != nil {
		return nil, err
	}
	if err := col.Add(account); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, col); err != nil {
		s.logger.Error("failed to save accounts after create", zap.Error(err))
		return nil, err
	}

	s.logger.Info("account created",
		zap.String("account_no", account.AccountNo),
		zap.Int64("opening_balance", openingBalance))
	return account, nil
}

func (s *bankService) GetAccount(ctx context.Context, accountNo string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load accounts", zap.Error(err))
		return nil, err
	}
	return col.Get(accountNo)
}

func (s *bankService) ListAccounts(ctx context.Context, filter ListFilter) ([]*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load accounts for list", zap.Error(err))
		return nil, err
	}

	matched := make([]*domain.Account, 0, col.Len())
	for _, a := range col.List() {
		if !a.Matches(filter.Query) {
			continue
		}
		if filter.MinBalance != nil && a.Balance < *filter.MinBalance {
			continue
		}
		if filter.MaxBalance != nil && a.Balance > *filter.MaxBalance {
			continue
		}
		matched = append(matched, a)
	}
	return matched, nil
}

func (s *bankService) Deposit(ctx context.Context, accountNo string, amount int64, note string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load accounts for deposit", zap.Error(err))
		return nil, err
	}
	account, err := col.Get(accountNo)
	if err != nil {
		s.logger.Warn("deposit to unknown account", zap.String("account_no", accountNo))
		return nil, err
	}

	tx, err := account.Deposit(amount, note)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, col); err != nil {
		s.logger.Error("failed to save accounts after deposit", zap.Error(err))
		return nil, err
	}

	s.logger.Info("deposit applied",
		zap.String("account_no", accountNo),
		zap.String("transaction_id", tx.ID),
		zap.Int64("amount", amount),
		zap.Int64("balance", account.Balance))
	return account, nil
}

func (s *bankService) Withdraw(ctx context.Context, accountNo string, amount int64, note string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load accounts for withdrawal", zap.Error(err))
		return nil, err
	}
	account, err := col.Get(accountNo)
	if err != nil {
		s.logger.Warn("withdrawal from unknown account", zap.String("account_no", accountNo))
		return nil, err
	}

	tx, err := account.Withdraw(amount, note)
	if err != nil {
		if err == domain.ErrInsufficientFunds {
			s.logger.Warn("withdrawal rejected, insufficient funds",
				zap.String("account_no", accountNo),
				zap.Int64("amount", amount),
				zap.Int64("balance", account.Balance))
		}
		return nil, err
	}
	if err := s.store.Save(ctx, col); err != nil {
		s.logger.Error("failed to save accounts after withdrawal", zap.Error(err))
		return nil, err
	}

	s.logger.Info("withdrawal applied",
		zap.String("account_no", accountNo),
		zap.String("transaction_id", tx.ID),
		zap.Int64("amount", amount),
		zap.Int64("balance", account.Balance))
	return account, nil
}

func (s *bankService) UpdateDetails(ctx context.Context, accountNo, ownerName, email string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load accounts for update", zap.Error(err))
		return nil, err
	}
	account, err := col.Get(accountNo)
	if err != nil {
		return nil, err
	}

	account.UpdateDetails(ownerName, email)
	if err := s.store.Save(ctx, col); err != nil {
		s.logger.Error("failed to save accounts after update", zap.Error(err))
		return nil, err
	}

	s.logger.Info("account details updated", zap.String("account_no", accountNo))
	return account, nil
}

func (s *bankService) DeleteAccount(ctx context.Context, accountNo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load accounts for delete", zap.Error(err))
		return err
	}
	if err := col.Remove(accountNo); err != nil {
		return err
	}
	if err := s.store.Save(ctx, col); err != nil {
		s.logger.Error("failed to save accounts after delete", zap.Error(err))
		return err
	}

	s.logger.Info("account deleted", zap.String("account_no", accountNo))
	return nil
}

func (s *bankService) Transactions(ctx context.Context, accountNo string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load accounts for history", zap.Error(err))
		return nil, err
	}
	account, err := col.Get(accountNo)
	if err != nil {
		return nil, err
	}

	history := make([]domain.Transaction, len(account.Transactions))
	copy(history, account.Transactions)
	return history, nil
}
