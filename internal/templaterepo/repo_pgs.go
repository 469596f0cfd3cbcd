// Package templaterepo manages repository layer of owned transfer accounts.
package templaterepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/pkg/dbpkg"
	"github.com/go-petr/self-bank/pkg/errorspkg"
)

// RepoPGS facilitates owned account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns owned account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const ownedAccountsQuery = `
SELECT
	s.id, s.account_number, s.client_id, c.office_id
FROM savings_accounts s
JOIN clients c ON c.id = s.client_id
JOIN users u ON u.client_id = s.client_id
WHERE u.id = $1 AND s.status <> 'CLOSED'
ORDER BY s.id
`

// ListOwnedAccounts returns the non-closed savings accounts of the user's
// client as transfer account templates.
func (r *RepoPGS) ListOwnedAccounts(ctx context.Context, appUserID int64) ([]domain.AccountTemplate, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, ownedAccountsQuery, appUserID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.AccountTemplate{}

	for rows.Next() {
		var (
			t  domain.AccountTemplate
			id int64
		)

		if err := rows.Scan(&id, &t.AccountNumber, &t.ClientID, &t.OfficeID); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		t.AccountID = &id
		t.AccountType = domain.AccountTypeSavings

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
