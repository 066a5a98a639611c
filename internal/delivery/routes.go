package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(r chi.Router, h *StatsHandler, adminToken string) {
	r.Route("/admin", func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			AuthMiddleware(adminToken),
			httprate.LimitByIP(30, time.Minute),
		)

		pr.Get("/stats", h.Totals)
		pr.Get("/transactions", h.Transactions)
	})
}
