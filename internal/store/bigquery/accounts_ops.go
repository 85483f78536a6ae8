package bigquery

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
)

const accountColumns = `
	account_id,
	user_id,
	account_name,
	institution_name,
	account_type,
	account_subtype,
	account_number,
	holder_name,
	balance,
	balance_date,
	created_ts,
	updated_ts`

// FindAccountByNumberAndInstitutionWithClient finds a user's account by exact
// account number and case-insensitive institution name. Returns nil when no
// account matches.
func FindAccountByNumberAndInstitutionWithClient(ctx context.Context, client *bigquery.Client, projectID, datasetID, userID, accountNumber, institution string) (*AccountRow, error) {
	query := fmt.Sprintf(`
		SELECT`+accountColumns+`
		FROM `+"`%s.%s.%s`"+`
		WHERE user_id = @user_id
		  AND account_number = @account_number
		  AND UPPER(institution_name) = UPPER(@institution_name)
		ORDER BY created_ts DESC
		LIMIT 1
	`, projectID, datasetID, accountsTable)

	q := client.Query(query)
	q.Parameters = []bigquery.QueryParameter{
		{Name: "user_id", Value: userID},
		{Name: "account_number", Value: accountNumber},
		{Name: "institution_name", Value: institution},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAccountByNumberAndInstitutionWithClient: reading query: %w", err)
	}

	var row AccountRow
	err = it.Next(&row)
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindAccountByNumberAndInstitutionWithClient: iterating: %w", err)
	}
	return &row, nil
}

// FindAccountByNumberWithClient finds a user's account by exact account
// number. Returns nil when no account matches.
func FindAccountByNumberWithClient(ctx context.Context, client *bigquery.Client, projectID, datasetID, userID, accountNumber string) (*AccountRow, error) {
	query := fmt.Sprintf(`
		SELECT`+accountColumns+`
		FROM `+"`%s.%s.%s`"+`
		WHERE user_id = @user_id
		  AND account_number = @account_number
		ORDER BY created_ts DESC
		LIMIT 1
	`, projectID, datasetID, accountsTable)

	q := client.Query(query)
	q.Parameters = []bigquery.QueryParameter{
		{Name: "user_id", Value: userID},
		{Name: "account_number", Value: accountNumber},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAccountByNumberWithClient: reading query: %w", err)
	}

	var row AccountRow
	err = it.Next(&row)
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindAccountByNumberWithClient: iterating: %w", err)
	}
	return &row, nil
}

// ListAccountsByUserWithClient retrieves all of a user's accounts.
func ListAccountsByUserWithClient(ctx context.Context, client *bigquery.Client, projectID, datasetID, userID string) ([]*AccountRow, error) {
	query := fmt.Sprintf(`
		SELECT`+accountColumns+`
		FROM `+"`%s.%s.%s`"+`
		WHERE user_id = @user_id
		ORDER BY created_ts DESC
	`, projectID, datasetID, accountsTable)

	q := client.Query(query)
	q.Parameters = []bigquery.QueryParameter{
		{Name: "user_id", Value: userID},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListAccountsByUserWithClient: reading query: %w", err)
	}

	var accounts []*AccountRow
	for {
		var row AccountRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListAccountsByUserWithClient: iterating: %w", err)
		}
		accounts = append(accounts, &row)
	}
	return accounts, nil
}

// InsertAccountWithClient inserts a new account row. Generates account_id
// when missing and returns it.
func InsertAccountWithClient(ctx context.Context, client *bigquery.Client, projectID, datasetID string, row *AccountRow) (string, error) {
	if row.AccountID == "" {
		row.AccountID = uuid.NewString()
	}

	q := client.Query(fmt.Sprintf(`
		INSERT `+"`%s.%s.%s`"+` (
			account_id, user_id,
			account_name, institution_name,
			account_type, account_subtype,
			account_number, holder_name,
			balance, balance_date,
			created_ts, updated_ts
		)
		VALUES (
			@account_id, @user_id,
			@account_name, @institution_name,
			@account_type, @account_subtype,
			@account_number, @holder_name,
			@balance, @balance_date,
			@created_ts, @updated_ts
		)
	`, projectID, datasetID, accountsTable))

	q.Parameters = []bigquery.QueryParameter{
		{Name: "account_id", Value: row.AccountID},
		{Name: "user_id", Value: row.UserID},
		{Name: "account_name", Value: row.AccountName},
		{Name: "institution_name", Value: row.InstitutionName},
		{Name: "account_type", Value: row.AccountType},
		{Name: "account_subtype", Value: row.AccountSubtype},
		{Name: "account_number", Value: row.AccountNumber},
		{Name: "holder_name", Value: row.HolderName},
		{Name: "balance", Value: row.Balance},
		{Name: "balance_date", Value: row.BalanceDate},
		{Name: "created_ts", Value: row.CreatedTS},
		{Name: "updated_ts", Value: row.UpdatedTS},
	}

	job, err := q.Run(ctx)
	if err != nil {
		return "", fmt.Errorf("InsertAccountWithClient: running insert query: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return "", fmt.Errorf("InsertAccountWithClient: waiting for job: %w", err)
	}
	if err := status.Err(); err != nil {
		return "", fmt.Errorf("InsertAccountWithClient: job error: %w", err)
	}
	return row.AccountID, nil
}

// UpdateAccountWithClient rewrites the mutable columns of an existing
// account row.
func UpdateAccountWithClient(ctx context.Context, client *bigquery.Client, projectID, datasetID string, row *AccountRow) error {
	q := client.Query(fmt.Sprintf(`
		UPDATE `+"`%s.%s.%s`"+`
		SET account_name = @account_name,
			institution_name = @institution_name,
			account_type = @account_type,
			account_subtype = @account_subtype,
			account_number = @account_number,
			holder_name = @holder_name,
			balance = @balance,
			balance_date = @balance_date,
			updated_ts = @updated_ts
		WHERE account_id = @account_id
		  AND user_id = @user_id
	`, projectID, datasetID, accountsTable))

	q.Parameters = []bigquery.QueryParameter{
		{Name: "account_id", Value: row.AccountID},
		{Name: "user_id", Value: row.UserID},
		{Name: "account_name", Value: row.AccountName},
		{Name: "institution_name", Value: row.InstitutionName},
		{Name: "account_type", Value: row.AccountType},
		{Name: "account_subtype", Value: row.AccountSubtype},
		{Name: "account_number", Value: row.AccountNumber},
		{Name: "holder_name", Value: row.HolderName},
		{Name: "balance", Value: row.Balance},
		{Name: "balance_date", Value: row.BalanceDate},
		{Name: "updated_ts", Value: time.Now().UTC()},
	}

	job, err := q.Run(ctx)
	if err != nil {
		return fmt.Errorf("UpdateAccountWithClient: running update query: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("UpdateAccountWithClient: waiting for job: %w", err)
	}
	if err := status.Err(); err != nil {
		return fmt.Errorf("UpdateAccountWithClient: job error: %w", err)
	}
	return nil
}

// UpdateAccountBalanceWithClient applies a balance only when the new date is
// strictly newer than the stored balance_date (or none is stored). Returns
// whether a row changed.
func UpdateAccountBalanceWithClient(ctx context.Context, client *bigquery.Client, projectID, datasetID, userID, accountID string, balance decimal.Decimal, date civil.Date) (bool, error) {
	q := client.Query(fmt.Sprintf(`
		UPDATE `+"`%s.%s.%s`"+`
		SET balance = @balance,
			balance_date = @balance_date,
			updated_ts = @updated_ts
		WHERE account_id = @account_id
		  AND user_id = @user_id
		  AND (balance_date IS NULL OR balance_date < @balance_date)
	`, projectID, datasetID, accountsTable))

	q.Parameters = []bigquery.QueryParameter{
		{Name: "account_id", Value: accountID},
		{Name: "user_id", Value: userID},
		{Name: "balance", Value: balance.Rat()},
		{Name: "balance_date", Value: date},
		{Name: "updated_ts", Value: time.Now().UTC()},
	}

	job, err := q.Run(ctx)
	if err != nil {
		return false, fmt.Errorf("UpdateAccountBalanceWithClient: running update query: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return false, fmt.Errorf("UpdateAccountBalanceWithClient: waiting for job: %w", err)
	}
	if err := status.Err(); err != nil {
		return false, fmt.Errorf("UpdateAccountBalanceWithClient: job error: %w", err)
	}

	if stats, ok := status.Statistics.Details.(*bigquery.QueryStatistics); ok {
		return stats.NumDMLAffectedRows > 0, nil
	}
	return false, nil
}
