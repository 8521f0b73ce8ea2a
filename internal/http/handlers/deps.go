package handlers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"canopy/internal/config"
	"canopy/internal/repos"
	"canopy/internal/services"
)

type Deps struct {
	CreditHandler    *CreditHandler
	OrderHandler     *OrderHandler
	PortfolioHandler *PortfolioHandler
	ContactHandler   *ContactHandler
	StatsHandler     *StatsHandler
}

func NewDeps(db *sqlx.DB, cfg *config.Config, log *zap.Logger) *Deps {
	creditRepo := repos.NewCreditRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	portfolioRepo := repos.NewPortfolioRepo(db)
	contactRepo := repos.NewContactRepo(db)

	catalogSvc := services.NewCatalogService(creditRepo)
	orderSvc := services.NewOrderService(orderRepo, log)
	portfolioSvc := services.NewPortfolioService(portfolioRepo)
	contactSvc := services.NewContactService(contactRepo, log)
	marketSvc := services.NewMarketService(creditRepo)

	return &Deps{
		CreditHandler:    &CreditHandler{Catalog: catalogSvc},
		OrderHandler:     &OrderHandler{Orders: orderSvc, DemoUserID: cfg.DemoUserID},
		PortfolioHandler: &PortfolioHandler{Portfolio: portfolioSvc, DemoUserID: cfg.DemoUserID},
		ContactHandler:   &ContactHandler{Contacts: contactSvc},
		StatsHandler:     &StatsHandler{Market: marketSvc},
	}
}
