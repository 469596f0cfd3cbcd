package templaterepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/pkg/configpkg"
	"github.com/go-petr/self-bank/pkg/passpkg"
	"github.com/go-petr/self-bank/pkg/randompkg"
)

var (
	testRepo *RepoPGS
	testDB   *sql.DB
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err = sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testRepo = NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func createRandomUser(t *testing.T) domain.AppUser {
	t.Helper()

	var clientID int64
	err := testDB.QueryRowContext(context.Background(),
		`INSERT INTO clients (office_id, display_name) VALUES (1, $1) RETURNING id`,
		randompkg.Owner(),
	).Scan(&clientID)
	require.NoError(t, err)

	hashedPassword, err := passpkg.Hash(randompkg.String(10))
	require.NoError(t, err)

	user := domain.AppUser{
		Username: randompkg.Owner(),
		ClientID: clientID,
	}

	err = testDB.QueryRowContext(context.Background(),
		`INSERT INTO users (username, hashed_password, client_id) VALUES ($1, $2, $3) RETURNING id`,
		user.Username, hashedPassword, user.ClientID,
	).Scan(&user.ID)
	require.NoError(t, err)

	return user
}

func createRandomSavingsAccount(t *testing.T, clientID int64, status string) int64 {
	t.Helper()

	var id int64
	err := testDB.QueryRowContext(context.Background(),
		`INSERT INTO savings_accounts (account_number, client_id, display_name, status)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		randompkg.AccountNumber(9), clientID, randompkg.Owner(), status,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func TestListOwnedAccounts(t *testing.T) {
	user := createRandomUser(t)

	activeID := createRandomSavingsAccount(t, user.ClientID, "ACTIVE")
	createRandomSavingsAccount(t, user.ClientID, "CLOSED")

	accounts, err := testRepo.ListOwnedAccounts(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	require.Equal(t, activeID, *accounts[0].AccountID)
	require.Equal(t, domain.AccountTypeSavings, accounts[0].AccountType)
	require.Equal(t, user.ClientID, accounts[0].ClientID)
	require.Equal(t, int64(1), accounts[0].OfficeID)

	t.Run("NoAccounts", func(t *testing.T) {
		other := createRandomUser(t)

		accounts, err := testRepo.ListOwnedAccounts(context.Background(), other.ID)
		require.NoError(t, err)
		require.Empty(t, accounts)
	})
}
