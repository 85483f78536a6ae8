package bigquery

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/moneymap/account-detect/internal/store"
)

// Store adapts the account operations to the store.AccountStore interface.
type Store struct {
	client    *bigquery.Client
	projectID string
	datasetID string
}

// New creates a Store with its own BigQuery client. Close releases it.
func New(ctx context.Context, projectID, datasetID string) (*Store, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("New: creating bigquery client: %w", err)
	}
	return NewWithClient(client, projectID, datasetID), nil
}

// NewWithClient creates a Store around an existing client. The caller keeps
// ownership of the client.
func NewWithClient(client *bigquery.Client, projectID, datasetID string) *Store {
	return &Store{client: client, projectID: projectID, datasetID: datasetID}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) FindByNumberAndInstitution(ctx context.Context, userID, accountNumber, institution string) (*store.Account, error) {
	row, err := FindAccountByNumberAndInstitutionWithClient(ctx, s.client, s.projectID, s.datasetID, userID, accountNumber, institution)
	if err != nil || row == nil {
		return nil, err
	}
	return row.toAccount(), nil
}

func (s *Store) FindByNumber(ctx context.Context, userID, accountNumber string) (*store.Account, error) {
	row, err := FindAccountByNumberWithClient(ctx, s.client, s.projectID, s.datasetID, userID, accountNumber)
	if err != nil || row == nil {
		return nil, err
	}
	return row.toAccount(), nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]*store.Account, error) {
	rows, err := ListAccountsByUserWithClient(ctx, s.client, s.projectID, s.datasetID, userID)
	if err != nil {
		return nil, err
	}
	accounts := make([]*store.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, row.toAccount())
	}
	return accounts, nil
}

func (s *Store) Upsert(ctx context.Context, account *store.Account) (*store.Account, error) {
	now := time.Now().UTC()
	stored := *account
	stored.UpdatedAt = now

	if stored.ID == "" {
		stored.CreatedAt = now
		row := rowFromAccount(&stored)
		id, err := InsertAccountWithClient(ctx, s.client, s.projectID, s.datasetID, row)
		if err != nil {
			return nil, err
		}
		stored.ID = id
		return &stored, nil
	}

	if err := UpdateAccountWithClient(ctx, s.client, s.projectID, s.datasetID, rowFromAccount(&stored)); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *Store) UpdateBalance(ctx context.Context, userID, accountID string, balance decimal.Decimal, date civil.Date) (bool, error) {
	return UpdateAccountBalanceWithClient(ctx, s.client, s.projectID, s.datasetID, userID, accountID, balance, date)
}
