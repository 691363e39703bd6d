package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sellora/sellerwallet/internal/domain"
	"github.com/sellora/sellerwallet/internal/dto"
	methodrepo "github.com/sellora/sellerwallet/internal/repo/method-repo"
	accountservice "github.com/sellora/sellerwallet/internal/service/accountservice"
	"github.com/sellora/sellerwallet/pkg/auth"
	"github.com/sellora/sellerwallet/pkg/cardgen"
	"github.com/sellora/sellerwallet/pkg/utils"
	"github.com/sellora/sellerwallet/pkg/validate"
)

type Service interface {
	Issue(ctx context.Context, accountID string) (*domain.Account, error)
	ApplyTransaction(ctx context.Context, accountID string, kind domain.TransactionKind, amount decimal.Decimal, meta accountservice.TransactionMeta) (*domain.Transaction, error)
	Withdraw(ctx context.Context, accountID, methodID string, amount decimal.Decimal) (*accountservice.WithdrawalReceipt, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	GetHistory(ctx context.Context, accountID string) ([]domain.Transaction, error)
	ListWithdrawalMethods(ctx context.Context) ([]domain.WithdrawalMethod, error)
}

type WalletHandler struct {
	accountService Service
}

func New(accountService Service) *WalletHandler {
	return &WalletHandler{
		accountService: accountService,
	}
}

// Issue godoc
//
//	@Summary		Issue a payment card
//	@Description	Create the seller's wallet account and allocate a unique card number. The full card number is returned only in this response.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		201	{object}	dto.IssueAccountResponseDTO	"Issued account"
//	@Failure		401	{object}	utils.Response				"Seller not authorized"
//	@Failure		409	{object}	utils.Response				"Account already exists"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/seller/account [post]
func (h *WalletHandler) Issue(w http.ResponseWriter, r *http.Request) {
	sellerID := r.Context().Value(auth.SellerIDKey).(string)

	account, err := h.accountService.Issue(r.Context(), sellerID)
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrDuplicateAccount):
			utils.RespondWithError(w, http.StatusConflict, "Account already exists")
		case errors.Is(err, cardgen.ErrExhaustedRetries):
			utils.RespondWithError(w, http.StatusInternalServerError, "Card number allocation failed")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.IssueAccountResponseDTO{
		AccountID:  account.AccountID,
		CardID:     account.CardID,
		CardNumber: cardgen.Format(account.CardNumber),
		Tier:       string(account.Tier),
		Status:     string(account.Status),
		IssuedAt:   account.IssuedAt,
	})
}

// GetAccount godoc
//
//	@Summary		Get wallet account
//	@Description	Retrieve the seller's wallet account with the card number masked.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO	"Account"
//	@Failure		401	{object}	utils.Response			"Seller not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/seller/account [get]
func (h *WalletHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	sellerID := r.Context().Value(auth.SellerIDKey).(string)

	account, err := h.accountService.GetAccount(r.Context(), sellerID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(account))
}

// GetBalance godoc
//
//	@Summary		Get current balance
//	@Description	Retrieve the seller's current wallet balance.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"Seller not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/seller/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	sellerID := r.Context().Value(auth.SellerIDKey).(string)

	balance, err := h.accountService.GetBalance(r.Context(), sellerID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance.String()})
}

// ApplyTransaction godoc
//
//	@Summary		Record a transaction
//	@Description	Apply a balance-affecting transaction. Purchases and bonuses credit the balance; withdrawals and refunds debit it, clamped at zero.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyTransactionRequestDTO	true	"Transaction payload"
//	@Success		201		{object}	dto.TransactionResponseDTO		"Recorded transaction"
//	@Failure		401		{object}	utils.Response					"Seller not authorized"
//	@Failure		403		{object}	utils.Response					"Account not active"
//	@Failure		404		{object}	utils.Response					"Account not found"
//	@Failure		409		{object}	utils.Response					"Concurrent modification"
//	@Failure		422		{object}	utils.Response					"Invalid transaction"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/seller/transactions [post]
func (h *WalletHandler) ApplyTransaction(w http.ResponseWriter, r *http.Request) {
	sellerID := r.Context().Value(auth.SellerIDKey).(string)

	var req dto.ApplyTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid amount")
		return
	}
	if req.OrderID != "" && !validate.IsLuna(req.OrderID) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid order number")
		return
	}

	txn, err := h.accountService.ApplyTransaction(r.Context(), sellerID, domain.TransactionKind(req.Kind), amount, accountservice.TransactionMeta{
		Description: req.Description,
		OrderID:     req.OrderID,
		ProductID:   req.ProductID,
	})
	if err != nil {
		respondTransactionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTransactionDTO(*txn))
}

// Withdraw godoc
//
//	@Summary		Withdraw funds
//	@Description	Debit the balance through a withdrawal method and return the fee and net settlement breakdown.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal payload"
//	@Success		200		{object}	dto.WithdrawResponseDTO	"Settlement breakdown"
//	@Failure		401		{object}	utils.Response			"Seller not authorized"
//	@Failure		403		{object}	utils.Response			"Account not active"
//	@Failure		404		{object}	utils.Response			"Account not found"
//	@Failure		409		{object}	utils.Response			"Concurrent modification"
//	@Failure		422		{object}	utils.Response			"Invalid withdrawal"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/seller/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	sellerID := r.Context().Value(auth.SellerIDKey).(string)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid amount")
		return
	}

	receipt, err := h.accountService.Withdraw(r.Context(), sellerID, req.Method, amount)
	if err != nil {
		if errors.Is(err, methodrepo.ErrMethodNotFound) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown withdrawal method")
			return
		}
		respondTransactionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawResponseDTO{
		Transaction:    toTransactionDTO(receipt.Transaction),
		Method:         receipt.Method.ID,
		Fee:            receipt.Fee.String(),
		NetSettlement:  receipt.NetSettlement.String(),
		ProcessingTime: receipt.ProcessingTime,
	})
}

// GetHistory godoc
//
//	@Summary		Get transaction history
//	@Description	List all recorded transactions, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"Seller not authorized"
//	@Failure		404	{object}	utils.Response				"Account not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/seller/transactions [get]
func (h *WalletHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sellerID := r.Context().Value(auth.SellerIDKey).(string)

	history, err := h.accountService.GetHistory(r.Context(), sellerID)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(history) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(history))
	for i, txn := range history {
		response[i] = toTransactionDTO(txn)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListMethods godoc
//
//	@Summary		List withdrawal methods
//	@Description	List the available withdrawal methods with their fees and processing times.
//	@Tags			Wallet
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalMethodDTO	"Withdrawal methods"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/withdrawal-methods [get]
func (h *WalletHandler) ListMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.accountService.ListWithdrawalMethods(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawal methods")
		return
	}
	response := make([]dto.WithdrawalMethodDTO, len(methods))
	for i, m := range methods {
		response[i] = dto.WithdrawalMethodDTO{
			ID:             m.ID,
			Name:           m.Name,
			FeePercent:     m.FeePercent.String(),
			ProcessingTime: m.ProcessingTime,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondTransactionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accountservice.ErrInvalidAmount), errors.Is(err, accountservice.ErrInvalidKind):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, accountservice.ErrAccountNotActive):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, accountservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, accountservice.ErrConcurrentModification):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toAccountDTO(account *domain.Account) dto.AccountResponseDTO {
	return dto.AccountResponseDTO{
		AccountID:       account.AccountID,
		Card:            account.MaskedCard(),
		Balance:         account.Balance.String(),
		Tier:            string(account.Tier),
		TotalEarnings:   account.TotalEarnings.String(),
		MonthlyEarnings: account.MonthlyEarnings.String(),
		Status:          string(account.Status),
		IssuedAt:        account.IssuedAt,
	}
}

func toTransactionDTO(txn domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		TransactionID: txn.TransactionID,
		Kind:          string(txn.Kind),
		Amount:        txn.Amount.String(),
		Status:        string(txn.Status),
		OccurredAt:    txn.OccurredAt,
		Description:   txn.Description,
		OrderID:       txn.OrderID,
		ProductID:     txn.ProductID,
	}
}
