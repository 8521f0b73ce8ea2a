package services

import (
	"time"

	"canopy/internal/apperr"
	"canopy/internal/domain"
	"canopy/internal/repos"
)

type CatalogService struct {
	Credits *repos.CreditRepo
}

func NewCatalogService(credits *repos.CreditRepo) *CatalogService {
	return &CatalogService{Credits: credits}
}

func (s *CatalogService) ListCredits() ([]domain.CarbonCredit, error) {
	credits, err := s.Credits.List()
	if err != nil {
		return nil, apperr.NewInternalError("Failed to fetch carbon credits", err)
	}
	return credits, nil
}

func (s *CatalogService) GetCredit(id int64) (domain.CarbonCredit, error) {
	credit, err := s.Credits.Get(id)
	if err == repos.ErrNotFound {
		return domain.CarbonCredit{}, apperr.NewNotFoundError("Carbon credit not found")
	}
	if err != nil {
		return domain.CarbonCredit{}, apperr.NewInternalError("Failed to fetch carbon credit", err)
	}
	return credit, nil
}

// AddCredit lists a new credit for sale. Not exposed over HTTP yet; sellers
// are seeded, so this serves tooling and tests.
func (s *CatalogService) AddCredit(c domain.CarbonCredit) (domain.CarbonCredit, error) {
	c.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	created, err := s.Credits.Create(c)
	if err != nil {
		return domain.CarbonCredit{}, apperr.NewInternalError("Failed to create carbon credit", err)
	}
	return created, nil
}
