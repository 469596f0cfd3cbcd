// Package templateservice resolves the accounts a user may use as transfer
// source or destination.
package templateservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/self-bank/internal/domain"
)

// OwnedAccountsRepo provides the data access layer interface for owned accounts.
//
//go:generate mockgen -source service.go -destination service_mock.go -package templateservice
type OwnedAccountsRepo interface {
	ListOwnedAccounts(ctx context.Context, appUserID int64) ([]domain.AccountTemplate, error)
}

// DestinationsRepo provides the data access layer interface for beneficiary
// destinations.
type DestinationsRepo interface {
	ListDestinations(ctx context.Context, appUserID int64) ([]domain.AccountTemplate, error)
}

// Service facilitates account template resolution logic.
type Service struct {
	owned        OwnedAccountsRepo
	destinations DestinationsRepo
}

// New returns the account template service.
func New(owned OwnedAccountsRepo, destinations DestinationsRepo) *Service {
	return &Service{
		owned:        owned,
		destinations: destinations,
	}
}

// SelfAccounts returns the accounts the user owns outright.
func (s *Service) SelfAccounts(ctx context.Context, user domain.AppUser) ([]domain.AccountTemplate, error) {
	l := zerolog.Ctx(ctx)

	accounts, err := s.owned.ListOwnedAccounts(ctx, user.ID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}

	return accounts, nil
}

// ThirdPartyDestinations returns the destination accounts derived from the
// user's active beneficiaries, external destinations included.
func (s *Service) ThirdPartyDestinations(ctx context.Context, user domain.AppUser) ([]domain.AccountTemplate, error) {
	l := zerolog.Ctx(ctx)

	destinations, err := s.destinations.ListDestinations(ctx, user.ID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, err
	}

	return destinations, nil
}
