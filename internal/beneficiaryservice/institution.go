package beneficiaryservice

import (
	"context"

	"github.com/go-petr/self-bank/internal/domain"
)

// accountResolver resolves a beneficiary account number to an internal
// account id for one institution kind.
type accountResolver interface {
	Resolve(ctx context.Context, accountNumber string, accountType domain.AccountType) (*int64, error)
}

func (s *Service) resolverFor(institutionName string) accountResolver {
	if institutionName == domain.InstitutionLocal {
		return s.local
	}

	return externalResolver{}
}

// localSavingsResolver resolves accounts held by this system. Only savings
// accounts are supported in this version.
type localSavingsResolver struct {
	savings SavingsFinder
}

func (r localSavingsResolver) Resolve(ctx context.Context, accountNumber string, accountType domain.AccountType) (*int64, error) {
	if accountType != domain.AccountTypeSavings {
		return nil, domain.ErrAccountInfoNotSupported
	}

	savings, err := r.savings.FindNonClosedByAccountNumber(ctx, accountNumber)
	if err != nil {
		if err == domain.ErrSavingsAccountNotFound {
			return nil, domain.ErrInvalidAccountInformation
		}

		return nil, err
	}

	if savings.ClientID == 0 {
		return nil, domain.ErrInvalidAccountInformation
	}

	return &savings.ID, nil
}

// externalResolver rejects accounts at institutions this system does not
// integrate with yet.
type externalResolver struct{}

func (externalResolver) Resolve(ctx context.Context, accountNumber string, accountType domain.AccountType) (*int64, error) {
	return nil, domain.ErrAccountInfoNotSupported
}
