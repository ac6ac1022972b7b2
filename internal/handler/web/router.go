package web

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"centralbank/internal/app/bank"
)

func RegisterRoutes(r chi.Router, s bank.BankService, l *zap.Logger) error {
	handler, err := NewHandler(s, l.With(zap.String("component", "WebHandler")))
	if err != nil {
		return err
	}

	r.Get("/", handler.IndexHandler)
	r.Get("/accounts/new", handler.NewAccountFormHandler)
	r.Post("/accounts", handler.CreateAccountHandler)
	r.Get("/accounts/{accountNo}", handler.AccountHandler)
	r.Post("/accounts/{accountNo}/deposit", handler.DepositHandler)
	r.Post("/accounts/{accountNo}/withdraw", handler.WithdrawHandler)
	r.Post("/accounts/{accountNo}/update", handler.UpdateDetailsHandler)
	r.Post("/accounts/{accountNo}/delete", handler.DeleteAccountHandler)

	return nil
}
