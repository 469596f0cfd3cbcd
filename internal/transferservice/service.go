// Package transferservice authorizes and submits account transfers.
package transferservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/pkg/configpkg"
)

// AccountResolver provides the candidate source and destination accounts of
// a user.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type AccountResolver interface {
	SelfAccounts(ctx context.Context, user domain.AppUser) ([]domain.AccountTemplate, error)
	ThirdPartyDestinations(ctx context.Context, user domain.AppUser) ([]domain.AccountTemplate, error)
}

// LimitReader provides the per-beneficiary transfer ceiling.
type LimitReader interface {
	TransferLimit(ctx context.Context, appUserID, accountID int64, accountType domain.AccountType) (int64, error)
}

// Ledger provides the executed transfer totals used by the daily limit check.
type Ledger interface {
	TotalTransferredOn(ctx context.Context, accountID int64, accountType domain.AccountType, date time.Time) (decimal.Decimal, error)
}

// Executor submits an authorized transfer instruction for execution.
type Executor interface {
	Execute(ctx context.Context, instruction domain.TransferInstruction) (domain.TransferResult, error)
}

// LimitsProvider supplies the limit configuration snapshot for one
// authorization attempt.
type LimitsProvider interface {
	Limits() domain.TransferLimits
}

// ConfigLimits adapts the application config to the LimitsProvider interface.
type ConfigLimits struct {
	Config configpkg.Config
}

// Limits returns the configured daily third party transfer ceiling.
func (c ConfigLimits) Limits() domain.TransferLimits {
	return domain.TransferLimits{
		DailyTPTEnabled: c.Config.DailyTPTLimitEnabled,
		DailyTPTAmount:  c.Config.DailyTPTLimit,
	}
}

// Service facilitates transfer authorization and submission logic.
type Service struct {
	resolver AccountResolver
	limits   LimitReader
	ledger   Ledger
	executor Executor
	provider LimitsProvider

	now func() time.Time
}

// New returns the transfer service.
func New(resolver AccountResolver, limits LimitReader, ledger Ledger, executor Executor, provider LimitsProvider) *Service {
	return &Service{
		resolver: resolver,
		limits:   limits,
		ledger:   ledger,
		executor: executor,
		provider: provider,
		now:      time.Now,
	}
}

// Authorize validates the transfer request against the user's accounts and
// the applicable limits and returns the canonical instruction. It does not
// submit anything.
func (s *Service) Authorize(ctx context.Context, user domain.AppUser, kind domain.TransferKind, arg domain.CreateTransferParams) (domain.TransferInstruction, error) {
	l := zerolog.Ctx(ctx)

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		return domain.TransferInstruction{}, domain.ErrInvalidAmount
	}

	if !amount.IsPositive() {
		return domain.TransferInstruction{}, domain.ErrNegativeAmount
	}

	fromOptions, err := s.resolver.SelfAccounts(ctx, user)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TransferInstruction{}, err
	}

	switch {
	case len(fromOptions) == 0:
		return domain.TransferInstruction{}, domain.ErrNoOwnedAccount
	case len(fromOptions) > 1:
		return domain.TransferInstruction{}, domain.ErrMultipleOwnedAccounts
	}

	from, ok := fromOptions[0].Handle()
	if !ok {
		return domain.TransferInstruction{}, domain.ErrInvalidSourceAccount
	}

	toOptions := fromOptions
	if kind == domain.TransferKindTPT {
		toOptions, err = s.resolver.ThirdPartyDestinations(ctx, user)
		if err != nil {
			l.Error().Err(err).Send()
			return domain.TransferInstruction{}, err
		}
	}

	to, err := matchDestination(toOptions, arg.ToAccountNumber)
	if err != nil {
		return domain.TransferInstruction{}, err
	}

	if !containsHandle(fromOptions, from) {
		return domain.TransferInstruction{}, domain.ErrInvalidSourceAccount
	}

	if !containsHandle(toOptions, to) {
		return domain.TransferInstruction{}, domain.ErrInvalidDestinationAccount
	}

	if from == to {
		return domain.TransferInstruction{}, domain.ErrSameSourceAndDestination
	}

	if kind == domain.TransferKindTPT {
		if err := s.checkLimits(ctx, user, from, to, amount); err != nil {
			return domain.TransferInstruction{}, err
		}
	}

	return domain.TransferInstruction{
		FromOfficeID:    from.OfficeID,
		FromClientID:    from.ClientID,
		FromAccountID:   from.AccountID,
		FromAccountType: from.AccountType,
		ToOfficeID:      to.OfficeID,
		ToClientID:      to.ClientID,
		ToAccountID:     to.AccountID,
		ToAccountType:   to.AccountType,
		Amount:          amount,
		Date:            s.now(),
		Description:     arg.Description,
	}, nil
}

// Transfer authorizes the request and submits the resulting instruction.
func (s *Service) Transfer(ctx context.Context, user domain.AppUser, kind domain.TransferKind, arg domain.CreateTransferParams) (domain.TransferResult, error) {
	l := zerolog.Ctx(ctx)

	instruction, err := s.Authorize(ctx, user, kind, arg)
	if err != nil {
		l.Info().Err(err).Msgf("Transfer(ctx, user %d, kind %s)", user.ID, kind)
		return domain.TransferResult{}, err
	}

	result, err := s.executor.Execute(ctx, instruction)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TransferResult{}, err
	}

	return result, nil
}

// Template returns the source and destination account options for the
// given transfer kind.
func (s *Service) Template(ctx context.Context, user domain.AppUser, kind domain.TransferKind) (domain.TransferTemplate, error) {
	l := zerolog.Ctx(ctx)

	fromOptions, err := s.resolver.SelfAccounts(ctx, user)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TransferTemplate{}, err
	}

	toOptions := fromOptions
	if kind == domain.TransferKindTPT {
		toOptions, err = s.resolver.ThirdPartyDestinations(ctx, user)
		if err != nil {
			l.Error().Err(err).Send()
			return domain.TransferTemplate{}, err
		}
	}

	return domain.TransferTemplate{
		FromAccountOptions: fromOptions,
		ToAccountOptions:   toOptions,
	}, nil
}

// checkLimits applies the per-beneficiary and daily third party transfer
// ceilings. A zero ceiling means no ceiling.
func (s *Service) checkLimits(ctx context.Context, user domain.AppUser, from, to domain.AccountHandle, amount decimal.Decimal) error {
	beneficiaryLimit, err := s.limits.TransferLimit(ctx, user.ID, to.AccountID, to.AccountType)
	if err != nil {
		return err
	}

	if beneficiaryLimit > 0 && amount.GreaterThan(decimal.NewFromInt(beneficiaryLimit)) {
		return domain.ErrBeneficiaryLimitExceeded
	}

	cfg := s.provider.Limits()
	if !cfg.DailyTPTEnabled || cfg.DailyTPTAmount <= 0 {
		return nil
	}

	transferred, err := s.ledger.TotalTransferredOn(ctx, from.AccountID, from.AccountType, s.now())
	if err != nil {
		return err
	}

	// Until the first transfer of the day lands, the daily ceiling is not
	// applied at all, even to an amount above it.
	if !transferred.IsPositive() {
		return nil
	}

	dailyLimit := decimal.NewFromInt(cfg.DailyTPTAmount)
	if dailyLimit.LessThanOrEqual(transferred) || dailyLimit.LessThan(transferred.Add(amount)) {
		zerolog.Ctx(ctx).Info().
			Int64("from_account_id", from.AccountID).
			Str("transfer_date", s.now().Format("2006-01-02")).
			Str("transferred", transferred.String()).
			Err(domain.ErrDailyTPTLimitExceeded).
			Send()

		return domain.ErrDailyTPTLimitExceeded
	}

	return nil
}

// matchDestination finds the internal destination with the given account
// number. A matching external destination is rejected explicitly.
func matchDestination(options []domain.AccountTemplate, accountNumber string) (domain.AccountHandle, error) {
	external := false

	for _, option := range options {
		if option.AccountNumber != accountNumber {
			continue
		}

		if handle, ok := option.Handle(); ok {
			return handle, nil
		}

		external = true
	}

	if external {
		return domain.AccountHandle{}, domain.ErrExternalAccountNotSupported
	}

	return domain.AccountHandle{}, domain.ErrDestinationAccountNotFound
}

func containsHandle(options []domain.AccountTemplate, handle domain.AccountHandle) bool {
	for _, option := range options {
		if h, ok := option.Handle(); ok && h == handle {
			return true
		}
	}

	return false
}
