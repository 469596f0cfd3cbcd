// Package beneficiaryrepo manages repository layer of third party beneficiaries.
package beneficiaryrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/pkg/dbpkg"
	"github.com/go-petr/self-bank/pkg/errorspkg"
)

// uniqueNameConstraint is the unique index on (name, app_user_id, is_active).
const uniqueNameConstraint = "beneficiaries_name_app_user_id_is_active_key"

// RepoPGS facilitates beneficiary repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns beneficiary RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
	beneficiaries (app_user_id, name, account_name, institution_name, institution_code,
		currency_code, account_number, account_id, account_type, transfer_limit)
VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, app_user_id, name, account_name, institution_name, institution_code,
	currency_code, account_number, account_id, account_type, transfer_limit, is_active, created_at
`

// Create registers the beneficiary and then returns it.
//
// Uniqueness of (name, owner, active) is enforced by the store constraint,
// not pre-checked, so concurrent adds cannot slip through.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateBeneficiaryParams) (domain.Beneficiary, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.AppUserID,
		arg.Name,
		arg.AccountName,
		arg.InstitutionName,
		newNullString(arg.InstitutionCode),
		newNullString(arg.CurrencyCode),
		arg.AccountNumber,
		newNullInt64(arg.AccountID),
		arg.AccountType,
		newNullInt64(arg.TransferLimit),
	)

	b, err := scanBeneficiary(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == uniqueNameConstraint {
				return b, domain.ErrDuplicateBeneficiaryName
			}
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const getQuery = `
SELECT
	id, app_user_id, name, account_name, institution_name, institution_code,
	currency_code, account_number, account_id, account_type, transfer_limit, is_active, created_at
FROM beneficiaries
WHERE id = $1 AND app_user_id = $2 AND is_active = true
`

// Get returns the active beneficiary with the given id owned by the user.
// Deactivated and foreign records are invisible.
func (r *RepoPGS) Get(ctx context.Context, appUserID, id int64) (domain.Beneficiary, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id, appUserID)

	b, err := scanBeneficiary(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return b, domain.ErrBeneficiaryNotFound
		}

		l.Error().Err(err).Send()

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const updateQuery = `
UPDATE beneficiaries
SET name = $1, transfer_limit = $2
WHERE id = $3 AND app_user_id = $4 AND is_active = true
RETURNING id
`

// Update persists the mutable beneficiary fields.
func (r *RepoPGS) Update(ctx context.Context, b domain.Beneficiary) error {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, b.Name, newNullInt64(b.TransferLimit), b.ID, b.AppUserID)

	var id int64
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrBeneficiaryNotFound
		}

		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == uniqueNameConstraint {
				return domain.ErrDuplicateBeneficiaryName
			}
		}

		return errorspkg.ErrInternal
	}

	return nil
}

const deactivateQuery = `
UPDATE beneficiaries
SET is_active = false
WHERE id = $1 AND app_user_id = $2 AND is_active = true
`

// Deactivate soft-deletes the beneficiary. Deactivating an already
// deactivated or foreign record fails with ErrBeneficiaryNotFound.
func (r *RepoPGS) Deactivate(ctx context.Context, appUserID, id int64) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deactivateQuery, id, appUserID)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrBeneficiaryNotFound
	}

	return nil
}

const listActiveQuery = `
SELECT
	id, app_user_id, name, account_name, institution_name, institution_code,
	currency_code, account_number, account_id, account_type, transfer_limit, is_active, created_at
FROM beneficiaries
WHERE app_user_id = $1 AND is_active = true
ORDER BY id
`

// ListActive returns all active beneficiaries of the user.
func (r *RepoPGS) ListActive(ctx context.Context, appUserID int64) ([]domain.Beneficiary, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listActiveQuery, appUserID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Beneficiary{}

	for rows.Next() {
		b, err := scanBeneficiary(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, b)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const destinationsQuery = `
SELECT
	b.account_id, b.account_number, b.account_type,
	COALESCE(s.client_id, 0), COALESCE(c.office_id, 0)
FROM beneficiaries b
LEFT JOIN savings_accounts s ON s.id = b.account_id AND b.account_type = $2
LEFT JOIN clients c ON c.id = s.client_id
WHERE b.app_user_id = $1 AND b.is_active = true
ORDER BY b.id
`

// ListDestinations returns the transfer destination templates derived from
// the user's active beneficiaries. External destinations keep a null
// account id.
func (r *RepoPGS) ListDestinations(ctx context.Context, appUserID int64) ([]domain.AccountTemplate, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, destinationsQuery, appUserID, domain.AccountTypeSavings)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.AccountTemplate{}

	for rows.Next() {
		var (
			t         domain.AccountTemplate
			accountID sql.NullInt64
		)

		if err := rows.Scan(&accountID, &t.AccountNumber, &t.AccountType, &t.ClientID, &t.OfficeID); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		if accountID.Valid {
			id := accountID.Int64
			t.AccountID = &id
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const transferLimitQuery = `
SELECT transfer_limit
FROM beneficiaries
WHERE app_user_id = $1 AND account_id = $2 AND account_type = $3 AND is_active = true
`

// TransferLimit returns the per-beneficiary transfer ceiling for the given
// destination account. Zero means no ceiling; a missing row also means no
// ceiling.
func (r *RepoPGS) TransferLimit(ctx context.Context, appUserID, accountID int64, accountType domain.AccountType) (int64, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, transferLimitQuery, appUserID, accountID, accountType)

	var limit sql.NullInt64
	if err := row.Scan(&limit); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}

		l.Error().Err(err).Send()

		return 0, errorspkg.ErrInternal
	}

	return limit.Int64, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBeneficiary(row scanner) (domain.Beneficiary, error) {
	var (
		b               domain.Beneficiary
		institutionCode sql.NullString
		currencyCode    sql.NullString
		accountID       sql.NullInt64
		transferLimit   sql.NullInt64
		active          bool
	)

	err := row.Scan(
		&b.ID,
		&b.AppUserID,
		&b.Name,
		&b.AccountName,
		&b.InstitutionName,
		&institutionCode,
		&currencyCode,
		&b.AccountNumber,
		&accountID,
		&b.AccountType,
		&transferLimit,
		&active,
		&b.CreatedAt,
	)
	if err != nil {
		return b, err
	}

	b.InstitutionCode = institutionCode.String
	b.CurrencyCode = currencyCode.String

	if accountID.Valid {
		id := accountID.Int64
		b.AccountID = &id
	}

	if transferLimit.Valid {
		limit := transferLimit.Int64
		b.TransferLimit = &limit
	}

	if active {
		b.Status = domain.BeneficiaryActive
	} else {
		b.Status = domain.BeneficiaryDeactivated
	}

	return b, nil
}

func newNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func newNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: *v, Valid: true}
}
