// Package bigquery persists accounts in a BigQuery dataset. Operations come
// in pairs: a convenience form that builds its own client, and a WithClient
// form for callers that manage one.
package bigquery

import (
	"math/big"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/shopspring/decimal"

	"github.com/moneymap/account-detect/internal/store"
)

const accountsTable = "accounts"

// AccountRow represents an account record in BigQuery.
type AccountRow struct {
	AccountID string `bigquery:"account_id"`

	UserID          string `bigquery:"user_id"`
	AccountName     string `bigquery:"account_name"`
	InstitutionName string `bigquery:"institution_name"`
	AccountType     string `bigquery:"account_type"`
	AccountSubtype  string `bigquery:"account_subtype"`
	AccountNumber   string `bigquery:"account_number"`
	HolderName      string `bigquery:"holder_name"`

	Balance     *big.Rat          `bigquery:"balance"`
	BalanceDate bigquery.NullDate `bigquery:"balance_date"`

	CreatedTS time.Time `bigquery:"created_ts"`
	UpdatedTS time.Time `bigquery:"updated_ts"`
}

func rowFromAccount(account *store.Account) *AccountRow {
	row := &AccountRow{
		AccountID:       account.ID,
		UserID:          account.UserID,
		AccountName:     account.Name,
		InstitutionName: account.InstitutionName,
		AccountType:     account.AccountType,
		AccountSubtype:  account.AccountSubtype,
		AccountNumber:   account.AccountNumber,
		HolderName:      account.HolderName,
		CreatedTS:       account.CreatedAt,
		UpdatedTS:       account.UpdatedAt,
	}
	if account.Balance != nil {
		row.Balance = account.Balance.Rat()
	}
	if account.BalanceDate != nil {
		row.BalanceDate = bigquery.NullDate{Date: *account.BalanceDate, Valid: true}
	}
	return row
}

func (r *AccountRow) toAccount() *store.Account {
	account := &store.Account{
		ID:              r.AccountID,
		UserID:          r.UserID,
		Name:            r.AccountName,
		InstitutionName: r.InstitutionName,
		AccountType:     r.AccountType,
		AccountSubtype:  r.AccountSubtype,
		AccountNumber:   r.AccountNumber,
		HolderName:      r.HolderName,
		CreatedAt:       r.CreatedTS,
		UpdatedAt:       r.UpdatedTS,
	}
	if r.Balance != nil {
		balance := decimal.NewFromBigRat(r.Balance, 2)
		account.Balance = &balance
	}
	if r.BalanceDate.Valid {
		date := r.BalanceDate.Date
		account.BalanceDate = &date
	}
	return account
}
