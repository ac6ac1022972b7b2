package accounts_http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"centralbank/internal/app/bank"
	"centralbank/internal/domain"
)

type AccountHandler struct {
	service bank.BankService
	logger  *zap.Logger
}

func NewAccountHandler(s bank.BankService, l *zap.Logger) *AccountHandler {
	return &AccountHandler{service: s, logger: l}
}

// Amounts cross the API as decimal strings ("120.50") so clients never
// touch floating point; responses render balances the same way.
type CreateAccountRequest struct {
	OwnerName      string `json:"owner_name"`
	Email          string `json:"email"`
	OpeningBalance string `json:"opening_balance"`
}

type AmountRequest struct {
	Amount string `json:"amount"`
	Note   string `json:"note"`
}

type UpdateDetailsRequest struct {
	OwnerName string `json:"owner_name"`
	Email     string `json:"email"`
}

type AccountResponse struct {
	AccountNo string    `json:"account_no"`
	OwnerName string    `json:"owner_name"`
	Email     string    `json:"email,omitempty"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TransactionResponse struct {
	ID           string    `json:"id"`
	Time         time.Time `json:"time"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	BalanceAfter string    `json:"balance_after"`
	Note         string    `json:"note,omitempty"`
}

type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNo: a.AccountNo,
		OwnerName: a.OwnerName,
		Email:     a.Email,
		Balance:   domain.FormatAmount(a.Balance),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps the service error taxonomy onto status codes.
// Anything outside the taxonomy is a persistence failure.
func (h *AccountHandler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, "account not found")
	case errors.Is(err, domain.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "amount must be a positive number")
	case errors.Is(err, domain.ErrInsufficientFunds):
		writeError(w, http.StatusUnprocessableEntity, "insufficient funds")
	default:
		h.logger.Error("operation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *AccountHandler) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OwnerName == "" {
		writeError(w, http.StatusBadRequest, "owner_name is required")
		return
	}
	openingBalance, err := domain.ParseBalance(req.OpeningBalance)
	if err != nil {
		writeError(w, http.StatusBadRequest, "opening_balance must be a non-negative number")
		return
	}

	account, err := h.service.CreateAccount(r.Context(), req.OwnerName, req.Email, openingBalance)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

func (h *AccountHandler) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")

	account, err := h.service.GetAccount(r.Context(), accountNo)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *AccountHandler) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	filter := bank.ListFilter{Query: r.URL.Query().Get("q")}

	for param, dst := range map[string]**int64{
		"min_balance": &filter.MinBalance,
		"max_balance": &filter.MaxBalance,
	} {
		raw := r.URL.Query().Get(param)
		if raw == "" {
			continue
		}
		v, err := domain.ParseBalance(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, param+" must be a non-negative number")
			return
		}
		*dst = &v
	}

	accounts, err := h.service.ListAccounts(r.Context(), filter)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	resp := ListAccountsResponse{Accounts: make([]AccountResponse, 0, len(accounts))}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, toAccountResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AccountHandler) DepositHandler(w http.ResponseWriter, r *http.Request) {
	h.applyMutation(w, r, h.service.Deposit)
}

func (h *AccountHandler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	h.applyMutation(w, r, h.service.Withdraw)
}

func (h *AccountHandler) applyMutation(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, accountNo string, amount int64, note string) (*domain.Account, error),
) {
	accountNo := chi.URLParam(r, "accountNo")

	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be a positive number")
		return
	}

	account, err := apply(r.Context(), accountNo, amount, req.Note)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *AccountHandler) UpdateDetailsHandler(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")

	var req UpdateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.service.UpdateDetails(r.Context(), accountNo, req.OwnerName, req.Email)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *AccountHandler) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")

	if err := h.service.DeleteAccount(r.Context(), accountNo); err != nil {
		h.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")

	history, err := h.service.Transactions(r.Context(), accountNo)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	resp := make([]TransactionResponse, 0, len(history))
	for _, tx := range history {
		resp = append(resp, TransactionResponse{
			ID:           tx.ID,
			Time:         tx.Time,
			Type:         string(tx.Type),
			Amount:       domain.FormatAmount(tx.Amount),
			BalanceAfter: domain.FormatAmount(tx.BalanceAfter),
			Note:         tx.Note,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
