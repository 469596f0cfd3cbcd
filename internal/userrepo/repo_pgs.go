// Package userrepo manages repository layer of self-service users.
package userrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/pkg/dbpkg"
	"github.com/go-petr/self-bank/pkg/errorspkg"
)

// RepoPGS facilitates user repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns user RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const getQuery = `
SELECT
	id, username, client_id, permissions
FROM users
WHERE username = $1
`

// Get returns the app user with the given username.
func (r *RepoPGS) Get(ctx context.Context, username string) (domain.AppUser, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, username)

	var u domain.AppUser

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.ClientID,
		pq.Array(&u.Permissions),
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return u, domain.ErrUserNotFound
		}

		return u, errorspkg.ErrInternal
	}

	return u, nil
}
