// Package transferdelivery manages delivery layer of account transfers.
package transferdelivery

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/internal/middleware"
	"github.com/go-petr/self-bank/pkg/errorspkg"
	"github.com/go-petr/self-bank/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Transfer(ctx context.Context, user domain.AppUser, kind domain.TransferKind, arg domain.CreateTransferParams) (domain.TransferResult, error)
	Template(ctx context.Context, user domain.AppUser, kind domain.TransferKind) (domain.TransferTemplate, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// transferKind reads the kind discriminator from the type query parameter.
// Absent means a self transfer.
func transferKind(gctx *gin.Context) (domain.TransferKind, error) {
	switch kind := gctx.Query("type"); kind {
	case "", string(domain.TransferKindSelf):
		return domain.TransferKindSelf, nil
	case string(domain.TransferKindTPT):
		return domain.TransferKindTPT, nil
	default:
		return "", fmt.Errorf("unsupported transfer type %s", kind)
	}
}

type createRequest struct {
	ToAccountNumber string `json:"to_account_number" binding:"required,max=22"`
	Amount          string `json:"amount" binding:"required"`
	Description     string `json:"description" binding:"required,max=200"`
}

// Create handles http request to authorize and submit a transfer.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	kind, err := transferKind(gctx)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationResponse(err))

		return
	}

	user := gctx.MustGet(middleware.AppUserKey).(domain.AppUser)

	arg := domain.CreateTransferParams{
		ToAccountNumber: req.ToAccountNumber,
		Amount:          req.Amount,
		Description:     req.Description,
	}

	result, err := h.service.Transfer(ctx, user, kind, arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case
			domain.ErrInvalidAmount,
			domain.ErrNegativeAmount,
			domain.ErrNoOwnedAccount,
			domain.ErrMultipleOwnedAccounts,
			domain.ErrExternalAccountNotSupported,
			domain.ErrInvalidSourceAccount,
			domain.ErrInvalidDestinationAccount,
			domain.ErrSameSourceAndDestination:
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		case domain.ErrDestinationAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))

			return
		case
			domain.ErrBeneficiaryLimitExceeded,
			domain.ErrDailyTPTLimitExceeded:
			gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))

			return
		case domain.ErrTransferExecution:
			gctx.JSON(http.StatusBadGateway, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"transfer": result}})
}

// Template handles http request for the transfer account options.
func (h *Handler) Template(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	kind, err := transferKind(gctx)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	user := gctx.MustGet(middleware.AppUserKey).(domain.AppUser)

	template, err := h.service.Template(ctx, user, kind)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"template": template}})
}
