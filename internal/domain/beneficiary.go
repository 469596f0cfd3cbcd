package domain

import (
	"errors"
	"time"
)

var (
	// ErrBeneficiaryNotFound indicates that the beneficiary does not exist,
	// is deactivated, or belongs to another user.
	ErrBeneficiaryNotFound = errors.New("beneficiary not found")
	// ErrDuplicateBeneficiaryName indicates that the user already has an
	// active beneficiary with the given name.
	ErrDuplicateBeneficiaryName = errors.New("beneficiary name already exists")
	// ErrAccountInfoNotSupported indicates account details this version
	// cannot resolve (loan accounts and non-local institutions).
	ErrAccountInfoNotSupported = errors.New("account information not yet supported")
	// ErrInvalidAccountInformation indicates that the supplied account number
	// did not resolve to a real non-closed account with a client.
	ErrInvalidAccountInformation = errors.New("invalid account information")
	// ErrInvalidTransferLimit indicates a non-positive transfer limit.
	ErrInvalidTransferLimit = errors.New("transfer limit must be positive")
)

// InstitutionLocal marks a beneficiary account held by this system.
// Any other institution name denotes an external institution.
const InstitutionLocal = "LOCAL"

// BeneficiaryStatus is the beneficiary lifecycle state.
type BeneficiaryStatus int32

// Lifecycle states. Deactivated records are invisible to every read path.
const (
	BeneficiaryDeactivated BeneficiaryStatus = iota
	BeneficiaryActive
)

func (s BeneficiaryStatus) String() string {
	if s == BeneficiaryActive {
		return "ACTIVE"
	}

	return "DEACTIVATED"
}

// Beneficiary is a named link from a user to a registered receiving account.
type Beneficiary struct {
	ID              int64             `json:"id"`
	AppUserID       int64             `json:"-"`
	Name            string            `json:"name"`
	AccountName     string            `json:"account_name"`
	InstitutionName string            `json:"institution_name"`
	InstitutionCode string            `json:"institution_code,omitempty"`
	CurrencyCode    string            `json:"currency_code,omitempty"`
	AccountNumber   string            `json:"account_number"`
	AccountID       *int64            `json:"account_id,omitempty"`
	AccountType     AccountType       `json:"account_type"`
	TransferLimit   *int64            `json:"transfer_limit,omitempty"`
	Status          BeneficiaryStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at,omitempty"`
}

// CreateBeneficiaryParams is the input data to register a beneficiary,
// after the account number has been resolved.
type CreateBeneficiaryParams struct {
	AppUserID       int64
	Name            string
	AccountName     string
	InstitutionName string
	InstitutionCode string
	CurrencyCode    string
	AccountNumber   string
	AccountID       *int64
	AccountType     AccountType
	TransferLimit   *int64
}

// Update applies the mutable fields and returns only the fields whose
// value actually changed, keyed by parameter name.
func (b *Beneficiary) Update(name *string, transferLimit *int64) map[string]interface{} {
	changes := map[string]interface{}{}

	if name != nil && *name != b.Name {
		b.Name = *name
		changes["name"] = *name
	}

	if transferLimit != nil && (b.TransferLimit == nil || *b.TransferLimit != *transferLimit) {
		b.TransferLimit = transferLimit
		changes["transferLimit"] = *transferLimit
	}

	return changes
}
