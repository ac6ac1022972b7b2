package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"centralbank/internal/app/bank"
	"centralbank/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the form UI: list and search, create, account detail
// with history, and the mutation forms. All state changes go through
// the same BankService as the JSON API.
type Handler struct {
	service bank.BankService
	logger  *zap.Logger
	tmpl    *template.Template
}

func NewHandler(s bank.BankService, l *zap.Logger) (*Handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"money": domain.FormatAmount,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{service: s, logger: l, tmpl: tmpl}, nil
}

// page fields shared by every view: one-shot flash and error messages
// carried across the post-redirect-get cycle as query parameters.
type page struct {
	Flash string
	Error string
}

func pageFromRequest(r *http.Request) page {
	return page{
		Flash: r.URL.Query().Get("flash"),
		Error: r.URL.Query().Get("err"),
	}
}

type indexPage struct {
	page
	Query    string
	Accounts []*domain.Account
}

type accountPage struct {
	page
	Account *domain.Account
	History []domain.Transaction
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func redirectFlash(w http.ResponseWriter, r *http.Request, path, flash string) {
	http.Redirect(w, r, path+"?flash="+url.QueryEscape(flash), http.StatusSeeOther)
}

func redirectError(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?err="+url.QueryEscape(msg), http.StatusSeeOther)
}

// userMessage keeps raw internal errors off the screen; domain errors
// are already phrased for the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInsufficientFunds):
		return err.Error()
	default:
		return "something went wrong, please try again"
	}
}

func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	accounts, err := h.service.ListAccounts(r.Context(), bank.ListFilter{Query: query})
	if err != nil {
		h.logger.Error("failed to list accounts", zap.Error(err))
		accounts = nil
	}

	data := indexPage{page: pageFromRequest(r), Query: query, Accounts: accounts}
	if err != nil && data.Error == "" {
		data.Error = userMessage(err)
	}
	h.render(w, "index.html", data)
}

func (h *Handler) NewAccountFormHandler(w http.ResponseWriter, r *http.Request) {
	h.render(w, "new.html", pageFromRequest(r))
}

func (h *Handler) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	ownerName := r.FormValue("owner_name")
	if ownerName == "" {
		redirectError(w, r, "/accounts/new", "name is required")
		return
	}
	openingBalance, err := domain.ParseBalance(r.FormValue("opening_balance"))
	if err != nil {
		redirectError(w, r, "/accounts/new", "opening balance must be a non-negative number")
		return
	}

	account, err := h.service.CreateAccount(r.Context(), ownerName, r.FormValue("email"), openingBalance)
	if err != nil {
		redirectError(w, r, "/accounts/new", userMessage(err))
		return
	}
	redirectFlash(w, r, "/accounts/"+account.AccountNo,
		"account created, note down the account number "+account.AccountNo)
}

func (h *Handler) AccountHandler(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")

	account, err := h.service.GetAccount(r.Context(), accountNo)
	if err != nil {
		redirectError(w, r, "/", userMessage(err))
		return
	}

	// Newest first in the view; storage order stays chronological.
	history := make([]domain.Transaction, 0, len(account.Transactions))
	for i := len(account.Transactions) - 1; i >= 0; i-- {
		history = append(history, account.Transactions[i])
	}

	h.render(w, "account.html", accountPage{
		page:    pageFromRequest(r),
		Account: account,
		History: history,
	})
}

func (h *Handler) DepositHandler(w http.ResponseWriter, r *http.Request) {
	h.applyMutation(w, r, "deposited", h.service.Deposit)
}

func (h *Handler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	h.applyMutation(w, r, "withdrew", h.service.Withdraw)
}

func (h *Handler) applyMutation(
	w http.ResponseWriter,
	r *http.Request,
	verb string,
	apply func(ctx context.Context, accountNo string, amount int64, note string) (*domain.Account, error),
) {
	accountNo := chi.URLParam(r, "accountNo")
	detailPath := "/accounts/" + accountNo

	amount, err := domain.ParseAmount(r.FormValue("amount"))
	if err != nil {
		redirectError(w, r, detailPath, "amount must be a positive number")
		return
	}

	account, err := apply(r.Context(), accountNo, amount, r.FormValue("note"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			redirectError(w, r, "/", userMessage(err))
			return
		}
		redirectError(w, r, detailPath, userMessage(err))
		return
	}
	redirectFlash(w, r, detailPath,
		verb+" "+domain.FormatAmount(amount)+", new balance "+domain.FormatAmount(account.Balance))
}

func (h *Handler) UpdateDetailsHandler(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")
	detailPath := "/accounts/" + accountNo

	ownerName := r.FormValue("owner_name")
	email := r.FormValue("email")
	if ownerName == "" && email == "" {
		redirectError(w, r, detailPath, "nothing to update")
		return
	}

	if _, err := h.service.UpdateDetails(r.Context(), accountNo, ownerName, email); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			redirectError(w, r, "/", userMessage(err))
			return
		}
		redirectError(w, r, detailPath, userMessage(err))
		return
	}
	redirectFlash(w, r, detailPath, "details updated")
}

func (h *Handler) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")

	if r.FormValue("confirm") == "" {
		redirectError(w, r, "/accounts/"+accountNo, "please confirm the deletion")
		return
	}
	if err := h.service.DeleteAccount(r.Context(), accountNo); err != nil {
		redirectError(w, r, "/", userMessage(err))
		return
	}
	redirectFlash(w, r, "/", "account "+accountNo+" deleted")
}
