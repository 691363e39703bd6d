package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sellora/sellerwallet/docs"
	adminhandlers "github.com/sellora/sellerwallet/internal/handlers/admin"
	tariffhandlers "github.com/sellora/sellerwallet/internal/handlers/tariff"
	wallethandlers "github.com/sellora/sellerwallet/internal/handlers/wallet"
	"github.com/sellora/sellerwallet/internal/service"
	"github.com/sellora/sellerwallet/pkg/auth"
)

type WalletHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	ApplyTransaction(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	ListMethods(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	SetSellerStatus(w http.ResponseWriter, r *http.Request)
	GetSellerStatus(w http.ResponseWriter, r *http.Request)
	SetAccountStatus(w http.ResponseWriter, r *http.Request)
	AuditLedger(w http.ResponseWriter, r *http.Request)
}

type TariffHandler interface {
	DiscountPreview(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler WalletHandler
	AdminHandler  AdminHandler
	TariffHandler TariffHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		WalletHandler: wallethandlers.New(s.Account),
		AdminHandler:  adminhandlers.New(s.Account, s.Status),
		TariffHandler: tariffhandlers.New(s.Discounter),
		jwtService:    jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/withdrawal-methods", h.WalletHandler.ListMethods)
		r.Get("/tariff/preview", h.TariffHandler.DiscountPreview)

		r.Route("/seller", func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/account", func(r chi.Router) {
				r.Post("/", h.WalletHandler.Issue)
				r.Get("/", h.WalletHandler.GetAccount)
			})
			r.Get("/balance", h.WalletHandler.GetBalance)
			r.Route("/transactions", func(r chi.Router) {
				r.Post("/", h.WalletHandler.ApplyTransaction)
				r.Get("/", h.WalletHandler.GetHistory)
			})
			r.Post("/withdraw", h.WalletHandler.Withdraw)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Route("/sellers/{sellerID}", func(r chi.Router) {
				r.Post("/status", h.AdminHandler.SetSellerStatus)
				r.Get("/status", h.AdminHandler.GetSellerStatus)
			})
			r.Route("/accounts/{accountID}", func(r chi.Router) {
				r.Post("/status", h.AdminHandler.SetAccountStatus)
				r.Get("/audit", h.AdminHandler.AuditLedger)
			})
		})
	})

	return r
}
