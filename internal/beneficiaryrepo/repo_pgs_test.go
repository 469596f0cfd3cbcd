package beneficiaryrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/pkg/configpkg"
	"github.com/go-petr/self-bank/pkg/currencypkg"
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

func createRandomClient(t *testing.T) int64 {
	t.Helper()

	var id int64
	err := testDB.QueryRowContext(context.Background(),
		`INSERT INTO clients (office_id, display_name) VALUES (1, $1) RETURNING id`,
		randompkg.Owner(),
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func createRandomUser(t *testing.T) domain.AppUser {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(10))
	require.NoError(t, err)

	user := domain.AppUser{
		Username:    randompkg.Owner(),
		ClientID:    createRandomClient(t),
		Permissions: []string{domain.PermissionReadBeneficiaries},
	}

	err = testDB.QueryRowContext(context.Background(),
		`INSERT INTO users (username, hashed_password, client_id, permissions)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		user.Username, hashedPassword, user.ClientID, pq.Array(user.Permissions),
	).Scan(&user.ID)
	require.NoError(t, err)

	return user
}

func createRandomSavingsAccount(t *testing.T, clientID int64) domain.SavingsAccount {
	t.Helper()

	account := domain.SavingsAccount{
		AccountNumber: randompkg.AccountNumber(9),
		ClientID:      clientID,
		DisplayName:   randompkg.Owner(),
		Status:        "ACTIVE",
	}

	err := testDB.QueryRowContext(context.Background(),
		`INSERT INTO savings_accounts (account_number, client_id, display_name, status)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		account.AccountNumber, account.ClientID, account.DisplayName, account.Status,
	).Scan(&account.ID)
	require.NoError(t, err)

	return account
}

func createRandomBeneficiary(t *testing.T, user domain.AppUser, account domain.SavingsAccount) domain.Beneficiary {
	t.Helper()

	limit := int64(500)

	arg := domain.CreateBeneficiaryParams{
		AppUserID:       user.ID,
		Name:            randompkg.Owner(),
		AccountName:     randompkg.Owner(),
		InstitutionName: domain.InstitutionLocal,
		CurrencyCode:    currencypkg.USD,
		AccountNumber:   account.AccountNumber,
		AccountID:       &account.ID,
		AccountType:     domain.AccountTypeSavings,
		TransferLimit:   &limit,
	}

	beneficiary, err := testRepo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, beneficiary)

	require.Equal(t, arg.AppUserID, beneficiary.AppUserID)
	require.Equal(t, arg.Name, beneficiary.Name)
	require.Equal(t, arg.AccountName, beneficiary.AccountName)
	require.Equal(t, arg.InstitutionName, beneficiary.InstitutionName)
	require.Equal(t, arg.CurrencyCode, beneficiary.CurrencyCode)
	require.Equal(t, arg.AccountNumber, beneficiary.AccountNumber)
	require.Equal(t, account.ID, *beneficiary.AccountID)
	require.Equal(t, domain.AccountTypeSavings, beneficiary.AccountType)
	require.Equal(t, limit, *beneficiary.TransferLimit)
	require.Equal(t, domain.BeneficiaryActive, beneficiary.Status)

	require.NotZero(t, beneficiary.ID)
	require.NotZero(t, beneficiary.CreatedAt)

	return beneficiary
}

func TestCreate(t *testing.T) {
	user := createRandomUser(t)
	account := createRandomSavingsAccount(t, createRandomClient(t))

	beneficiary := createRandomBeneficiary(t, user, account)

	t.Run("DuplicateActiveName", func(t *testing.T) {
		arg := domain.CreateBeneficiaryParams{
			AppUserID:       user.ID,
			Name:            beneficiary.Name,
			AccountName:     beneficiary.AccountName,
			InstitutionName: domain.InstitutionLocal,
			AccountNumber:   account.AccountNumber,
			AccountID:       &account.ID,
			AccountType:     domain.AccountTypeSavings,
		}

		_, err := testRepo.Create(context.Background(), arg)
		require.EqualError(t, err, domain.ErrDuplicateBeneficiaryName.Error())
	})

	t.Run("SameNameForAnotherUser", func(t *testing.T) {
		otherUser := createRandomUser(t)

		arg := domain.CreateBeneficiaryParams{
			AppUserID:       otherUser.ID,
			Name:            beneficiary.Name,
			AccountName:     beneficiary.AccountName,
			InstitutionName: domain.InstitutionLocal,
			AccountNumber:   account.AccountNumber,
			AccountID:       &account.ID,
			AccountType:     domain.AccountTypeSavings,
		}

		_, err := testRepo.Create(context.Background(), arg)
		require.NoError(t, err)
	})
}

func TestGet(t *testing.T) {
	user := createRandomUser(t)
	account := createRandomSavingsAccount(t, createRandomClient(t))
	beneficiary := createRandomBeneficiary(t, user, account)

	t.Run("OK", func(t *testing.T) {
		got, err := testRepo.Get(context.Background(), user.ID, beneficiary.ID)
		require.NoError(t, err)
		require.Equal(t, beneficiary.ID, got.ID)
		require.Equal(t, beneficiary.Name, got.Name)
	})

	t.Run("ForeignOwner", func(t *testing.T) {
		otherUser := createRandomUser(t)

		_, err := testRepo.Get(context.Background(), otherUser.ID, beneficiary.ID)
		require.EqualError(t, err, domain.ErrBeneficiaryNotFound.Error())
	})

	t.Run("Deactivated", func(t *testing.T) {
		require.NoError(t, testRepo.Deactivate(context.Background(), user.ID, beneficiary.ID))

		_, err := testRepo.Get(context.Background(), user.ID, beneficiary.ID)
		require.EqualError(t, err, domain.ErrBeneficiaryNotFound.Error())
	})
}

func TestUpdate(t *testing.T) {
	user := createRandomUser(t)
	account := createRandomSavingsAccount(t, createRandomClient(t))
	beneficiary := createRandomBeneficiary(t, user, account)

	t.Run("OK", func(t *testing.T) {
		newLimit := int64(900)
		beneficiary.Name = randompkg.Owner()
		beneficiary.TransferLimit = &newLimit

		require.NoError(t, testRepo.Update(context.Background(), beneficiary))

		got, err := testRepo.Get(context.Background(), user.ID, beneficiary.ID)
		require.NoError(t, err)
		require.Equal(t, beneficiary.Name, got.Name)
		require.Equal(t, newLimit, *got.TransferLimit)
	})

	t.Run("NotFound", func(t *testing.T) {
		missing := beneficiary
		missing.ID = beneficiary.ID + 1_000_000

		err := testRepo.Update(context.Background(), missing)
		require.EqualError(t, err, domain.ErrBeneficiaryNotFound.Error())
	})
}

func TestDeactivate(t *testing.T) {
	user := createRandomUser(t)
	account := createRandomSavingsAccount(t, createRandomClient(t))
	beneficiary := createRandomBeneficiary(t, user, account)

	require.NoError(t, testRepo.Deactivate(context.Background(), user.ID, beneficiary.ID))

	// Soft delete is not repeatable.
	err := testRepo.Deactivate(context.Background(), user.ID, beneficiary.ID)
	require.EqualError(t, err, domain.ErrBeneficiaryNotFound.Error())
}

func TestListActive(t *testing.T) {
	user := createRandomUser(t)
	clientID := createRandomClient(t)

	first := createRandomBeneficiary(t, user, createRandomSavingsAccount(t, clientID))
	second := createRandomBeneficiary(t, user, createRandomSavingsAccount(t, clientID))

	require.NoError(t, testRepo.Deactivate(context.Background(), user.ID, first.ID))

	items, err := testRepo.ListActive(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, second.ID, items[0].ID)
}

func TestListDestinations(t *testing.T) {
	user := createRandomUser(t)
	account := createRandomSavingsAccount(t, createRandomClient(t))
	createRandomBeneficiary(t, user, account)

	// An external destination keeps a null account id.
	external, err := testRepo.Create(context.Background(), domain.CreateBeneficiaryParams{
		AppUserID:       user.ID,
		Name:            randompkg.Owner(),
		AccountName:     randompkg.Owner(),
		InstitutionName: "ACME",
		AccountNumber:   randompkg.AccountNumber(9),
		AccountType:     domain.AccountTypeSavings,
	})
	require.NoError(t, err)

	items, err := testRepo.ListDestinations(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].AccountID)
	require.Equal(t, account.ID, *items[0].AccountID)
	require.Equal(t, account.AccountNumber, items[0].AccountNumber)
	require.Equal(t, account.ClientID, items[0].ClientID)
	require.Equal(t, int64(1), items[0].OfficeID)

	require.Nil(t, items[1].AccountID)
	require.Equal(t, external.AccountNumber, items[1].AccountNumber)
	require.Zero(t, items[1].ClientID)
	require.Zero(t, items[1].OfficeID)
}

func TestTransferLimit(t *testing.T) {
	user := createRandomUser(t)
	account := createRandomSavingsAccount(t, createRandomClient(t))
	beneficiary := createRandomBeneficiary(t, user, account)

	t.Run("OK", func(t *testing.T) {
		limit, err := testRepo.TransferLimit(context.Background(), user.ID, *beneficiary.AccountID, domain.AccountTypeSavings)
		require.NoError(t, err)
		require.Equal(t, int64(500), limit)
	})

	t.Run("NoBeneficiary", func(t *testing.T) {
		limit, err := testRepo.TransferLimit(context.Background(), user.ID, *beneficiary.AccountID+1_000_000, domain.AccountTypeSavings)
		require.NoError(t, err)
		require.Zero(t, limit)
	})

	t.Run("NoCeiling", func(t *testing.T) {
		unlimited, err := testRepo.Create(context.Background(), domain.CreateBeneficiaryParams{
			AppUserID:       user.ID,
			Name:            randompkg.Owner(),
			AccountName:     randompkg.Owner(),
			InstitutionName: domain.InstitutionLocal,
			AccountNumber:   account.AccountNumber,
			AccountID:       &account.ID,
			AccountType:     domain.AccountTypeLoan,
		})
		require.NoError(t, err)

		limit, err := testRepo.TransferLimit(context.Background(), user.ID, *unlimited.AccountID, domain.AccountTypeLoan)
		require.NoError(t, err)
		require.Zero(t, limit)
	})
}
