// Package store defines the persisted account model and the storage
// interface the detection pipeline reconciles against.
package store

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Account is a persisted user account. AccountNumber holds at most the last
// 4 digits, matching what detection extracts from statements.
type Account struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Name            string           `json:"name"`
	InstitutionName string           `json:"institution_name,omitempty"`
	AccountType     string           `json:"account_type,omitempty"`
	AccountSubtype  string           `json:"account_subtype,omitempty"`
	AccountNumber   string           `json:"account_number,omitempty"`
	HolderName      string           `json:"holder_name,omitempty"`
	Balance         *decimal.Decimal `json:"balance,omitempty"`
	BalanceDate     *civil.Date      `json:"balance_date,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// AccountStore persists accounts. Lookups return (nil, nil) when no account
// matches.
type AccountStore interface {
	FindByNumberAndInstitution(ctx context.Context, userID, accountNumber, institution string) (*Account, error)
	FindByNumber(ctx context.Context, userID, accountNumber string) (*Account, error)
	ListByUser(ctx context.Context, userID string) ([]*Account, error)
	Upsert(ctx context.Context, account *Account) (*Account, error)
	// UpdateBalance applies a newly extracted balance only when its date is
	// strictly newer than the stored one. Returns whether an update happened.
	UpdateBalance(ctx context.Context, userID, accountID string, balance decimal.Decimal, date civil.Date) (bool, error)
}
