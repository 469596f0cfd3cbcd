// Package beneficiarydelivery manages delivery layer of third party
// beneficiaries.
package beneficiarydelivery

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/self-bank/internal/beneficiaryservice"
	"github.com/go-petr/self-bank/internal/domain"
	"github.com/go-petr/self-bank/internal/middleware"
	"github.com/go-petr/self-bank/pkg/errorspkg"
	"github.com/go-petr/self-bank/pkg/web"
)

// Service provides service layer interface needed by beneficiary delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package beneficiarydelivery
type Service interface {
	Add(ctx context.Context, user domain.AppUser, arg beneficiaryservice.AddParams) (domain.Beneficiary, error)
	Update(ctx context.Context, user domain.AppUser, id int64, name *string, transferLimit *int64) (map[string]interface{}, error)
	Deactivate(ctx context.Context, user domain.AppUser, id int64) error
	ListActive(ctx context.Context, user domain.AppUser) ([]domain.Beneficiary, error)
}

// Handler facilitates beneficiary delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns beneficiary handler.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

type createRequest struct {
	Name            string `json:"name" binding:"required,max=50"`
	AccountName     string `json:"account_name" binding:"required,max=50"`
	AccountNumber   string `json:"account_number" binding:"required,max=20"`
	AccountType     int32  `json:"account_type" binding:"required,oneof=1 2"`
	InstitutionName string `json:"institution_name" binding:"required,max=50"`
	InstitutionCode string `json:"institution_code" binding:"omitempty,max=20"`
	CurrencyCode    string `json:"currency_code" binding:"omitempty,currency"`
	TransferLimit   *int64 `json:"transfer_limit" binding:"omitempty,gt=0"`
}

// Create handles http request to register a beneficiary.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationResponse(err))

		return
	}

	user := gctx.MustGet(middleware.AppUserKey).(domain.AppUser)

	arg := beneficiaryservice.AddParams{
		Name:            req.Name,
		AccountName:     req.AccountName,
		AccountNumber:   req.AccountNumber,
		AccountType:     domain.AccountType(req.AccountType),
		InstitutionName: req.InstitutionName,
		InstitutionCode: req.InstitutionCode,
		CurrencyCode:    req.CurrencyCode,
		TransferLimit:   req.TransferLimit,
	}

	beneficiary, err := h.service.Add(ctx, user, arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case
			domain.ErrAccountInfoNotSupported,
			domain.ErrInvalidAccountInformation,
			domain.ErrInvalidAccountType,
			domain.ErrInvalidTransferLimit:
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		case domain.ErrDuplicateBeneficiaryName:
			gctx.JSON(http.StatusConflict, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"beneficiary": beneficiary}})
}

// List handles http request to list the user's active beneficiaries.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	user := gctx.MustGet(middleware.AppUserKey).(domain.AppUser)

	beneficiaries, err := h.service.ListActive(ctx, user)
	if err != nil {
		l.Info().Err(err).Send()

		if err == domain.ErrNoReadPermission {
			gctx.JSON(http.StatusForbidden, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"beneficiaries": beneficiaries}})
}

type updateRequest struct {
	Name          *string `json:"name" binding:"omitempty,max=50"`
	TransferLimit *int64  `json:"transfer_limit" binding:"omitempty,gt=0"`
}

// Update handles http request to change a beneficiary's name or transfer
// limit. The response reports only the fields that actually changed.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, err := strconv.ParseInt(gctx.Param("id"), 10, 64)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationResponse(err))

		return
	}

	user := gctx.MustGet(middleware.AppUserKey).(domain.AppUser)

	changes, err := h.service.Update(ctx, user, id, req.Name, req.TransferLimit)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrBeneficiaryNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrDuplicateBeneficiaryName:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"changes": changes}})
}

// Delete handles http request to deactivate a beneficiary.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, err := strconv.ParseInt(gctx.Param("id"), 10, 64)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	user := gctx.MustGet(middleware.AppUserKey).(domain.AppUser)

	if err := h.service.Deactivate(ctx, user, id); err != nil {
		l.Info().Err(err).Send()

		if err == domain.ErrBeneficiaryNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"id": id}})
}

type accountTypeOption struct {
	ID   int32  `json:"id"`
	Code string `json:"code"`
}

// Template handles http request for the beneficiary registration template.
func (h *Handler) Template(gctx *gin.Context) {
	options := []accountTypeOption{
		{ID: int32(domain.AccountTypeLoan), Code: domain.AccountTypeLoan.String()},
		{ID: int32(domain.AccountTypeSavings), Code: domain.AccountTypeSavings.String()},
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{
		"account_type_options": options,
		"institution_options":  []string{domain.InstitutionLocal},
	}})
}
