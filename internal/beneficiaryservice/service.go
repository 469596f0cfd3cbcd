// Package beneficiaryservice manages business logic layer of third party
// beneficiaries.
package beneficiaryservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/self-bank/internal/domain"
)

// Repo provides data access layer interface needed by beneficiary service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package beneficiaryservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateBeneficiaryParams) (domain.Beneficiary, error)
	Get(ctx context.Context, appUserID, id int64) (domain.Beneficiary, error)
	Update(ctx context.Context, b domain.Beneficiary) error
	Deactivate(ctx context.Context, appUserID, id int64) error
	ListActive(ctx context.Context, appUserID int64) ([]domain.Beneficiary, error)
}

// SavingsFinder provides the savings account lookup used to resolve local
// beneficiary account numbers.
type SavingsFinder interface {
	FindNonClosedByAccountNumber(ctx context.Context, accountNumber string) (domain.SavingsAccount, error)
}

// AddParams is the validated input data to register a beneficiary.
type AddParams struct {
	Name            string
	AccountName     string
	AccountNumber   string
	AccountType     domain.AccountType
	InstitutionName string
	InstitutionCode string
	CurrencyCode    string
	TransferLimit   *int64
}

// Service facilitates beneficiary service layer logic.
type Service struct {
	repo  Repo
	local localSavingsResolver
}

// New returns beneficiary service struct to manage beneficiary business logic.
func New(repo Repo, savings SavingsFinder) *Service {
	return &Service{
		repo:  repo,
		local: localSavingsResolver{savings: savings},
	}
}

// Add resolves the supplied account details and registers the beneficiary.
func (s *Service) Add(ctx context.Context, user domain.AppUser, arg AddParams) (domain.Beneficiary, error) {
	l := zerolog.Ctx(ctx)

	if !arg.AccountType.Valid() {
		return domain.Beneficiary{}, domain.ErrInvalidAccountType
	}

	if arg.TransferLimit != nil && *arg.TransferLimit <= 0 {
		return domain.Beneficiary{}, domain.ErrInvalidTransferLimit
	}

	accountID, err := s.resolverFor(arg.InstitutionName).Resolve(ctx, arg.AccountNumber, arg.AccountType)
	if err != nil {
		l.Info().Err(err).Msgf("Add(ctx, user %d, account %s)", user.ID, arg.AccountNumber)
		return domain.Beneficiary{}, err
	}

	beneficiary, err := s.repo.Create(ctx, domain.CreateBeneficiaryParams{
		AppUserID:       user.ID,
		Name:            arg.Name,
		AccountName:     arg.AccountName,
		InstitutionName: arg.InstitutionName,
		InstitutionCode: arg.InstitutionCode,
		CurrencyCode:    arg.CurrencyCode,
		AccountNumber:   arg.AccountNumber,
		AccountID:       accountID,
		AccountType:     arg.AccountType,
		TransferLimit:   arg.TransferLimit,
	})
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Beneficiary{}, err
	}

	return beneficiary, nil
}

// Update mutates the beneficiary name and transfer limit and returns only
// the fields whose value actually changed. An update that changes nothing
// succeeds without touching the store.
func (s *Service) Update(ctx context.Context, user domain.AppUser, id int64, name *string, transferLimit *int64) (map[string]interface{}, error) {
	l := zerolog.Ctx(ctx)

	beneficiary, err := s.repo.Get(ctx, user.ID, id)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	changes := beneficiary.Update(name, transferLimit)
	if len(changes) == 0 {
		return changes, nil
	}

	if err := s.repo.Update(ctx, beneficiary); err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	return changes, nil
}

// Deactivate soft-deletes the beneficiary, hiding it from every read path.
func (s *Service) Deactivate(ctx context.Context, user domain.AppUser, id int64) error {
	l := zerolog.Ctx(ctx)

	if err := s.repo.Deactivate(ctx, user.ID, id); err != nil {
		l.Info().Err(err).Send()
		return err
	}

	return nil
}

// ListActive returns the user's active beneficiaries. The caller must hold
// the beneficiary read permission.
func (s *Service) ListActive(ctx context.Context, user domain.AppUser) ([]domain.Beneficiary, error) {
	l := zerolog.Ctx(ctx)

	if !user.HasPermission(domain.PermissionReadBeneficiaries) {
		return nil, domain.ErrNoReadPermission
	}

	beneficiaries, err := s.repo.ListActive(ctx, user.ID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}

	return beneficiaries, nil
}
