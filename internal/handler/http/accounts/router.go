package accounts_http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go.uber.org/zap"

	"centralbank/internal/app/bank"
)

func RegisterRoutes(r chi.Router, s bank.BankService, l *zap.Logger) {
	handler := NewAccountHandler(s, l.With(zap.String("component", "AccountHTTPHandler")))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("centralbank is healthy"))
	})

	r.Route("/api/accounts", func(r chi.Router) {
		r.Post("/", handler.CreateAccountHandler)
		r.Get("/", handler.ListAccountsHandler)
		r.Get("/{accountNo}", handler.GetAccountHandler)
		r.Patch("/{accountNo}", handler.UpdateDetailsHandler)
		r.Delete("/{accountNo}", handler.DeleteAccountHandler)
		r.Post("/{accountNo}/deposit", handler.DepositHandler)
		r.Post("/{accountNo}/withdraw", handler.WithdrawHandler)
		r.Get("/{accountNo}/transactions", handler.ListTransactionsHandler)
	})
}
