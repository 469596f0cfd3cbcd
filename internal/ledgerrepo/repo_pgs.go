// Package ledgerrepo manages repository layer of executed transfer queries.
package ledgerrepo

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/pkg/dbpkg"
	"github.com/go-petr/self-bank/pkg/errorspkg"
)

// RepoPGS facilitates executed transfer repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns ledger RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const totalTransferredQuery = `
SELECT COALESCE(SUM(amount), 0)
FROM account_transfers
WHERE from_account_id = $1 AND from_account_type = $2 AND transfer_date = $3
`

// TotalTransferredOn returns the total third party transfer amount already
// executed from the account on the given date.
func (r *RepoPGS) TotalTransferredOn(ctx context.Context, accountID int64, accountType domain.AccountType, date time.Time) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, totalTransferredQuery, accountID, accountType, date.Format("2006-01-02"))

	var total string
	if err := row.Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, errorspkg.ErrInternal
	}

	totalDecimal, err := decimal.NewFromString(total)
	if err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, errorspkg.ErrInternal
	}

	return totalDecimal, nil
}
