// Package pipeline orchestrates statement ingestion: fetch the PDF from GCS,
// extract its text, detect account identity, reconcile against the user's
// stored accounts, and apply the extracted balance.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/moneymap/account-detect/internal/detect"
	"github.com/moneymap/account-detect/internal/extractor"
	"github.com/moneymap/account-detect/internal/gcs"
	"github.com/moneymap/account-detect/internal/store"
)

// Pipeline wires detection against an account store.
type Pipeline struct {
	accounts store.AccountStore
	detector *detect.Detector
	matcher  *detect.Matcher
	log      zerolog.Logger
}

func New(accounts store.AccountStore, detector *detect.Detector, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		accounts: accounts,
		detector: detector,
		matcher:  detect.NewMatcher(accounts, log),
		log:      log,
	}
}

// Result reports what ingestion did.
type Result struct {
	AccountID      string                  `json:"account_id"`
	Detected       *detect.DetectedAccount `json:"detected,omitempty"`
	Created        bool                    `json:"created"`
	BalanceUpdated bool                    `json:"balance_updated"`
}

// IngestStatementFromGCS processes a single statement PDF stored in GCS.
// gcsURI should look like "gs://bucket/path/to/statement.pdf". statementDate
// is the date the extracted balance is valid for; it gates the balance
// update so older statements never clobber a newer balance.
func (p *Pipeline) IngestStatementFromGCS(ctx context.Context, gcsURI, userID string, statementDate civil.Date) (*Result, error) {
	filename := gcs.Filename(gcsURI)

	pdfBytes, err := gcs.Fetch(ctx, gcsURI)
	if err != nil {
		return nil, fmt.Errorf("IngestStatementFromGCS: fetching statement: %w", err)
	}

	text, err := extractText(pdfBytes)
	if err != nil {
		p.log.Warn().Err(err).Str("gcs_uri", gcsURI).Msg("pdf text extraction failed, falling back to filename")
		text = ""
	}

	detected := p.detector.FromPDFContent(text, filename)
	if detected == nil {
		return nil, fmt.Errorf("IngestStatementFromGCS: no account identity detected in %s", filename)
	}

	return p.reconcile(ctx, userID, detected, statementDate)
}

// IngestHeaders processes a CSV/Excel header row the same way.
func (p *Pipeline) IngestHeaders(ctx context.Context, headers []string, filename, userID string, statementDate civil.Date) (*Result, error) {
	detected := p.detector.FromHeaders(headers, filename)
	if detected == nil {
		return nil, fmt.Errorf("IngestHeaders: no account identity detected in %s", filename)
	}
	return p.reconcile(ctx, userID, detected, statementDate)
}

// reconcile matches the detection against stored accounts, creating one when
// nothing matches, and applies the extracted balance under the
// strictly-newer-date rule.
func (p *Pipeline) reconcile(ctx context.Context, userID string, detected *detect.DetectedAccount, statementDate civil.Date) (*Result, error) {
	result := &Result{Detected: detected}

	accountID, err := p.matcher.MatchExisting(ctx, userID, detected)
	if err != nil {
		return nil, fmt.Errorf("reconcile: matching account: %w", err)
	}

	if accountID == "" {
		account, err := p.accounts.Upsert(ctx, accountFromDetection(userID, detected, statementDate))
		if err != nil {
			return nil, fmt.Errorf("reconcile: creating account: %w", err)
		}
		p.log.Info().
			Str("account_id", account.ID).
			Str("account_name", account.Name).
			Msg("created account from detection")
		result.AccountID = account.ID
		result.Created = true
		result.BalanceUpdated = detected.Balance != nil
		return result, nil
	}

	detected.MatchedAccountID = accountID
	result.AccountID = accountID

	if detected.Balance != nil {
		updated, err := p.accounts.UpdateBalance(ctx, userID, accountID, *detected.Balance, statementDate)
		if err != nil {
			return nil, fmt.Errorf("reconcile: updating balance: %w", err)
		}
		if !updated {
			p.log.Info().
				Str("account_id", accountID).
				Str("balance_date", statementDate.String()).
				Msg("skipped balance update, stored balance is newer")
		}
		result.BalanceUpdated = updated
	}
	return result, nil
}

func accountFromDetection(userID string, detected *detect.DetectedAccount, statementDate civil.Date) *store.Account {
	name := detected.AccountName
	if name == "" {
		name = detect.AccountDisplayName(
			detected.InstitutionName, detected.AccountType,
			detected.AccountSubtype, detected.AccountNumber)
	}

	account := &store.Account{
		UserID:          userID,
		Name:            name,
		InstitutionName: detected.InstitutionName,
		AccountType:     detected.AccountType,
		AccountSubtype:  detected.AccountSubtype,
		AccountNumber:   detected.AccountNumber,
		HolderName:      detected.AccountHolderName,
	}
	if detected.Balance != nil {
		balance := *detected.Balance
		date := statementDate
		account.Balance = &balance
		account.BalanceDate = &date
	}
	return account
}

// extractText round-trips the PDF through a temp file, which is what the
// extraction library wants.
func extractText(pdfBytes []byte) (string, error) {
	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return "", fmt.Errorf("extractText: creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(pdfBytes); err != nil {
		tmp.Close()
		return "", fmt.Errorf("extractText: writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("extractText: closing temp file: %w", err)
	}

	return extractor.StatementText(tmp.Name())
}
