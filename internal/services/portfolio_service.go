package services

import (
	"time"

	"canopy/internal/apperr"
	"canopy/internal/domain"
	"canopy/internal/repos"
)

type PortfolioService struct {
	Portfolio *repos.PortfolioRepo
}

func NewPortfolioService(portfolio *repos.PortfolioRepo) *PortfolioService {
	return &PortfolioService{Portfolio: portfolio}
}

func (s *PortfolioService) ListForUser(userID int64) ([]domain.PortfolioItem, error) {
	items, err := s.Portfolio.ListByUser(userID)
	if err != nil {
		return nil, apperr.NewInternalError("Failed to fetch portfolio", err)
	}
	return items, nil
}

// AddHolding records a settled holding. Orders do not feed this; holdings
// are written independently (seed data, future settlement tooling).
func (s *PortfolioService) AddHolding(item domain.PortfolioItem) (domain.PortfolioItem, error) {
	item.PurchaseDate = time.Now().UTC().Format(time.RFC3339)
	created, err := s.Portfolio.Create(item)
	if err != nil {
		return domain.PortfolioItem{}, apperr.NewInternalError("Failed to create portfolio item", err)
	}
	return created, nil
}
