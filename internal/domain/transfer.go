package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates an unparseable amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a zero or negative amount.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrNoOwnedAccount indicates that the user owns no transferable account.
	ErrNoOwnedAccount = errors.New("user has no owned account")
	// ErrMultipleOwnedAccounts indicates that the user owns more than the
	// single account the current deployment profile expects.
	ErrMultipleOwnedAccounts = errors.New("user should have only one account")
	// ErrDestinationAccountNotFound indicates that no beneficiary matches
	// the destination account number.
	ErrDestinationAccountNotFound = errors.New("destination account not found")
	// ErrExternalAccountNotSupported indicates a destination held at an
	// external institution. External transfers are not implemented yet.
	ErrExternalAccountNotSupported = errors.New("toAccount is not internal, external accounts not implemented yet")
	// ErrInvalidSourceAccount indicates that the source account details do
	// not match the user's valid accounts.
	ErrInvalidSourceAccount = errors.New("source account details don't match valid user account details")
	// ErrInvalidDestinationAccount indicates that the destination account
	// details do not match the user's valid destination accounts.
	ErrInvalidDestinationAccount = errors.New("destination account details don't match valid user account details")
	// ErrSameSourceAndDestination indicates a degenerate transfer.
	ErrSameSourceAndDestination = errors.New("source and destination account details are same")
	// ErrBeneficiaryLimitExceeded indicates an amount above the
	// per-beneficiary transfer ceiling.
	ErrBeneficiaryLimitExceeded = errors.New("beneficiary transfer limit exceeded")
	// ErrDailyTPTLimitExceeded indicates that the transfer would break the
	// daily third party transfer ceiling for the source account.
	ErrDailyTPTLimitExceeded = errors.New("daily third party transfer amount limit exceeded")
	// ErrTransferExecution indicates that the execution subsystem rejected
	// the submitted instruction.
	ErrTransferExecution = errors.New("transfer execution failed")
)

// TransferKind discriminates self transfers from third party transfers.
type TransferKind string

// Supported transfer kinds.
const (
	TransferKindSelf TransferKind = "self"
	TransferKindTPT  TransferKind = "tpt"
)

// CreateTransferParams is the raw, user-supplied input of a transfer request.
type CreateTransferParams struct {
	ToAccountNumber string `json:"to_account_number"`
	Amount          string `json:"amount"` // must be positive
	Description     string `json:"description"`
}

// TransferLimits is the limit configuration snapshot applied to one
// authorization attempt.
type TransferLimits struct {
	DailyTPTEnabled bool  `json:"daily_tpt_enabled"`
	DailyTPTAmount  int64 `json:"daily_tpt_amount"`
}

// TransferInstruction is the canonical, fully-qualified transfer ready for
// execution, independent of the request's kind discriminator.
type TransferInstruction struct {
	FromOfficeID    int64           `json:"from_office_id"`
	FromClientID    int64           `json:"from_client_id"`
	FromAccountID   int64           `json:"from_account_id"`
	FromAccountType AccountType     `json:"from_account_type"`
	ToOfficeID      int64           `json:"to_office_id"`
	ToClientID      int64           `json:"to_client_id"`
	ToAccountID     int64           `json:"to_account_id"`
	ToAccountType   AccountType     `json:"to_account_type"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
}

// TransferResult is the execution subsystem's acknowledgement.
type TransferResult struct {
	ResourceID int64 `json:"resource_id"`
}

// TransferTemplate lists the accounts a user may pick as source and
// destination for the given transfer kind.
type TransferTemplate struct {
	FromAccountOptions []AccountTemplate `json:"from_account_options"`
	ToAccountOptions   []AccountTemplate `json:"to_account_options"`
}
