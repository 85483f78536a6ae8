// Package inmemory is an AccountStore backed by a map, used by tests and the
// CLI when no BigQuery project is configured.
package inmemory

import (
	"context"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneymap/account-detect/internal/store"
)

type Store struct {
	mu       sync.RWMutex
	accounts map[string]*store.Account
}

func New() *Store {
	return &Store{accounts: make(map[string]*store.Account)}
}

func (s *Store) FindByNumberAndInstitution(ctx context.Context, userID, accountNumber, institution string) (*store.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.UserID == userID &&
			account.AccountNumber == accountNumber &&
			strings.EqualFold(account.InstitutionName, institution) {
			return copyAccount(account), nil
		}
	}
	return nil, nil
}

func (s *Store) FindByNumber(ctx context.Context, userID, accountNumber string) (*store.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.UserID == userID && account.AccountNumber == accountNumber {
			return copyAccount(account), nil
		}
	}
	return nil, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]*store.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var accounts []*store.Account
	for _, account := range s.accounts {
		if account.UserID == userID {
			accounts = append(accounts, copyAccount(account))
		}
	}
	return accounts, nil
}

func (s *Store) Upsert(ctx context.Context, account *store.Account) (*store.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if account.ID == "" {
		stored := copyAccount(account)
		stored.ID = uuid.New().String()
		stored.CreatedAt = now
		stored.UpdatedAt = now
		s.accounts[stored.ID] = stored
		return copyAccount(stored), nil
	}

	stored := copyAccount(account)
	stored.UpdatedAt = now
	if existing, ok := s.accounts[account.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	s.accounts[stored.ID] = stored
	return copyAccount(stored), nil
}

func (s *Store) UpdateBalance(ctx context.Context, userID, accountID string, balance decimal.Decimal, date civil.Date) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok || account.UserID != userID {
		return false, nil
	}
	if account.BalanceDate != nil && !date.After(*account.BalanceDate) {
		return false, nil
	}

	b := balance
	d := date
	account.Balance = &b
	account.BalanceDate = &d
	account.UpdatedAt = time.Now().UTC()
	return true, nil
}

func copyAccount(account *store.Account) *store.Account {
	cp := *account
	if account.Balance != nil {
		b := *account.Balance
		cp.Balance = &b
	}
	if account.BalanceDate != nil {
		d := *account.BalanceDate
		cp.BalanceDate = &d
	}
	return &cp
}
