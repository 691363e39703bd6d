package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sellora/sellerwallet/internal/domain"
	"github.com/sellora/sellerwallet/internal/dto"
	statusrepo "github.com/sellora/sellerwallet/internal/repo/status-repo"
	accountservice "github.com/sellora/sellerwallet/internal/service/accountservice"
	statusservice "github.com/sellora/sellerwallet/internal/service/statusservice"
	"github.com/sellora/sellerwallet/pkg/utils"
)

type AccountService interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetHistory(ctx context.Context, accountID string) ([]domain.Transaction, error)
	SetStatus(ctx context.Context, accountID string, status domain.AccountStatus) error
	AuditLedger(ctx context.Context, accountID string) (bool, decimal.Decimal, decimal.Decimal, error)
}

type StatusService interface {
	SetStatus(ctx context.Context, sellerID string, status domain.SellerStatus, comment string) (*statusrepo.Record, error)
	GetStatus(ctx context.Context, sellerID string) (domain.SellerStatus, error)
}

type AdminHandler struct {
	accountService AccountService
	statusService  StatusService
}

func New(accountService AccountService, statusService StatusService) *AdminHandler {
	return &AdminHandler{
		accountService: accountService,
		statusService:  statusService,
	}
}

// SetSellerStatus godoc
//
//	@Summary		Change seller moderation status
//	@Description	Apply a moderation state transition and broadcast it to every open session.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			sellerID	path		string							true	"Seller id"
//	@Param			request		body		dto.SetSellerStatusRequestDTO	true	"New status"
//	@Success		200			{object}	dto.SellerStatusResponseDTO		"Updated status"
//	@Failure		409			{object}	utils.Response					"Invalid transition or concurrent modification"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/sellers/{sellerID}/status [post]
func (h *AdminHandler) SetSellerStatus(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "sellerID")

	var req dto.SetSellerStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.statusService.SetStatus(r.Context(), sellerID, domain.SellerStatus(req.Status), req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, statusservice.ErrInvalidTransition),
			errors.Is(err, statusservice.ErrConcurrentModification):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SellerStatusResponseDTO{
		SellerID:  rec.SellerID,
		Status:    string(rec.Status),
		Comment:   rec.Comment,
		UpdatedAt: rec.UpdatedAt,
	})
}

// GetSellerStatus godoc
//
//	@Summary		Get seller moderation status
//	@Tags			Admin
//	@Produce		json
//	@Param			sellerID	path		string						true	"Seller id"
//	@Success		200			{object}	dto.SellerStatusResponseDTO	"Current status"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/sellers/{sellerID}/status [get]
func (h *AdminHandler) GetSellerStatus(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "sellerID")

	status, err := h.statusService.GetStatus(r.Context(), sellerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SellerStatusResponseDTO{
		SellerID: sellerID,
		Status:   string(status),
	})
}

// SetAccountStatus godoc
//
//	@Summary		Change account status
//	@Description	Administrative account status change; permitted regardless of the current state.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		string							true	"Account id"
//	@Param			request		body		dto.SetAccountStatusRequestDTO	true	"New status"
//	@Success		200			{object}	utils.Response					"Status changed"
//	@Failure		404			{object}	utils.Response					"Account not found"
//	@Failure		409			{object}	utils.Response					"Concurrent modification"
//	@Failure		422			{object}	utils.Response					"Invalid status"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/accounts/{accountID}/status [post]
func (h *AdminHandler) SetAccountStatus(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	var req dto.SetAccountStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.accountService.SetStatus(r.Context(), accountID, domain.AccountStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, accountservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, accountservice.ErrConcurrentModification):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "status changed"})
}

// AuditLedger godoc
//
//	@Summary		Audit an account ledger
//	@Description	Replay the append-only transaction log and compare the fold against the materialized balance.
//	@Tags			Admin
//	@Produce		json
//	@Param			accountID	path		string						true	"Account id"
//	@Success		200			{object}	dto.LedgerAuditResponseDTO	"Audit result"
//	@Failure		404			{object}	utils.Response				"Account not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/accounts/{accountID}/audit [get]
func (h *AdminHandler) AuditLedger(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	consistent, stored, computed, err := h.accountService.AuditLedger(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LedgerAuditResponseDTO{
		AccountID:  accountID,
		Consistent: consistent,
		Stored:     stored.String(),
		Computed:   computed.String(),
	})
}
