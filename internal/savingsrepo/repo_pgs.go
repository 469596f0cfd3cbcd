// Package savingsrepo manages repository layer of savings account lookups.
package savingsrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/pkg/dbpkg"
	"github.com/go-petr/self-bank/pkg/errorspkg"
)

// RepoPGS facilitates savings account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns savings account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const findNonClosedQuery = `
SELECT
	s.id, s.account_number, s.client_id, c.office_id, s.display_name, s.status
FROM savings_accounts s
JOIN clients c ON c.id = s.client_id
WHERE s.account_number = $1 AND s.status <> 'CLOSED'
`

// FindNonClosedByAccountNumber returns the non-closed savings account with
// the given account number.
func (r *RepoPGS) FindNonClosedByAccountNumber(ctx context.Context, accountNumber string) (domain.SavingsAccount, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, findNonClosedQuery, accountNumber)

	var s domain.SavingsAccount

	err := row.Scan(
		&s.ID,
		&s.AccountNumber,
		&s.ClientID,
		&s.OfficeID,
		&s.DisplayName,
		&s.Status,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return s, domain.ErrSavingsAccountNotFound
		}

		l.Error().Err(err).Send()

		return s, errorspkg.ErrInternal
	}

	return s, nil
}
