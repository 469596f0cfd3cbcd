package domain

import "errors"

var (
	// ErrSavingsAccountNotFound indicates that no non-closed savings account
	// matches the given account number.
	ErrSavingsAccountNotFound = errors.New("savings account not found")
	// ErrInvalidAccountType indicates an unknown account type code.
	ErrInvalidAccountType = errors.New("invalid account type")
)

// AccountType is the portfolio account type code.
type AccountType int32

// Account type codes as persisted and exchanged with the execution subsystem.
const (
	AccountTypeLoan    AccountType = 1
	AccountTypeSavings AccountType = 2
)

// Valid reports whether t is a known account type code.
func (t AccountType) Valid() bool {
	return t == AccountTypeLoan || t == AccountTypeSavings
}

func (t AccountType) String() string {
	switch t {
	case AccountTypeLoan:
		return "LOAN"
	case AccountTypeSavings:
		return "SAVINGS"
	}

	return "UNKNOWN"
}

// AccountHandle identifies one usable transfer endpoint account.
// Two handles refer to the same account iff all four fields match.
type AccountHandle struct {
	AccountID   int64       `json:"account_id"`
	AccountType AccountType `json:"account_type"`
	ClientID    int64       `json:"client_id"`
	OfficeID    int64       `json:"office_id"`
}

// AccountTemplate describes one candidate source or destination account.
// AccountID is nil for destinations held at an external institution.
type AccountTemplate struct {
	AccountID     *int64      `json:"account_id"`
	AccountNumber string      `json:"account_number"`
	AccountType   AccountType `json:"account_type"`
	ClientID      int64       `json:"client_id"`
	OfficeID      int64       `json:"office_id"`
}

// Handle returns the account handle for the template.
// The second return value is false for external destinations.
func (t AccountTemplate) Handle() (AccountHandle, bool) {
	if t.AccountID == nil {
		return AccountHandle{}, false
	}

	return AccountHandle{
		AccountID:   *t.AccountID,
		AccountType: t.AccountType,
		ClientID:    t.ClientID,
		OfficeID:    t.OfficeID,
	}, true
}

// SavingsAccount holds the savings account fields needed to resolve a
// beneficiary account number to an internal account.
type SavingsAccount struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"account_number"`
	ClientID      int64  `json:"client_id"`
	OfficeID      int64  `json:"office_id"`
	DisplayName   string `json:"display_name"`
	Status        string `json:"status"`
}
