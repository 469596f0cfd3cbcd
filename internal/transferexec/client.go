// Package transferexec submits authorized transfer instructions to the core
// ledger over its REST API.
package transferexec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/self-bank/internal/domain"
)

// The ledger API parses dates itself, so every request pins the format and
// locale it expects.
const (
	localeEN       = "en"
	dateFormat     = "dd MMMM yyyy"
	dateFormatGo   = "02 January 2006"
	submitPath     = "/accounttransfers"
	defaultTimeout = 10 * time.Second
)

// Client executes transfer instructions against the ledger API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a ledger client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

type submitRequest struct {
	FromOfficeID        int64              `json:"fromOfficeId"`
	FromClientID        int64              `json:"fromClientId"`
	FromAccountID       int64              `json:"fromAccountId"`
	FromAccountType     domain.AccountType `json:"fromAccountType"`
	ToOfficeID          int64              `json:"toOfficeId"`
	ToClientID          int64              `json:"toClientId"`
	ToAccountID         int64              `json:"toAccountId"`
	ToAccountType       domain.AccountType `json:"toAccountType"`
	TransferAmount      decimal.Decimal    `json:"transferAmount"`
	TransferDate        string             `json:"transferDate"`
	TransferDescription string             `json:"transferDescription"`
	DateFormat          string             `json:"dateFormat"`
	Locale              string             `json:"locale"`
}

type submitResponse struct {
	ResourceID int64 `json:"resourceId"`
}

// Execute submits the instruction and returns the ledger's acknowledgement.
// Any non-200 status maps to ErrTransferExecution.
func (c *Client) Execute(ctx context.Context, instruction domain.TransferInstruction) (domain.TransferResult, error) {
	l := zerolog.Ctx(ctx)

	body, err := json.Marshal(submitRequest{
		FromOfficeID:        instruction.FromOfficeID,
		FromClientID:        instruction.FromClientID,
		FromAccountID:       instruction.FromAccountID,
		FromAccountType:     instruction.FromAccountType,
		ToOfficeID:          instruction.ToOfficeID,
		ToClientID:          instruction.ToClientID,
		ToAccountID:         instruction.ToAccountID,
		ToAccountType:       instruction.ToAccountType,
		TransferAmount:      instruction.Amount,
		TransferDate:        instruction.Date.Format(dateFormatGo),
		TransferDescription: instruction.Description,
		DateFormat:          dateFormat,
		Locale:              localeEN,
	})
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TransferResult{}, domain.ErrTransferExecution
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, bytes.NewReader(body))
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TransferResult{}, domain.ErrTransferExecution
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TransferResult{}, domain.ErrTransferExecution
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.Error().Err(fmt.Errorf("ledger returned status %d", resp.StatusCode)).Send()
		return domain.TransferResult{}, domain.ErrTransferExecution
	}

	var ack submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		l.Error().Err(err).Send()
		return domain.TransferResult{}, domain.ErrTransferExecution
	}

	return domain.TransferResult{ResourceID: ack.ResourceID}, nil
}
