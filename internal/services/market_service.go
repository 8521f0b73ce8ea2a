package services

import (
	"fmt"
	"math"

	"canopy/internal/apperr"
	"canopy/internal/domain"
	"canopy/internal/repos"
)

// Buyer/seller counts are fixed display literals, not derived from data.
const (
	activeBuyers    = "15,200"
	verifiedSellers = "3,840"
)

type MarketService struct {
	Credits *repos.CreditRepo
}

func NewMarketService(credits *repos.CreditRepo) *MarketService {
	return &MarketService{Credits: credits}
}

// Stats sums available inventory across all listings and formats the display
// strings: total in millions to one decimal, offset at 0.36 tons per credit
// in thousands.
func (s *MarketService) Stats() (domain.MarketStats, error) {
	credits, err := s.Credits.List()
	if err != nil {
		return domain.MarketStats{}, apperr.NewInternalError("Failed to fetch market stats", err)
	}

	total := 0
	for _, c := range credits {
		total += c.Available
	}
	offset := int(math.Floor(float64(total) * 0.36))

	return domain.MarketStats{
		TotalCredits:    fmt.Sprintf("%.1fM", float64(total)/1_000_000),
		ActiveBuyers:    activeBuyers,
		VerifiedSellers: verifiedSellers,
		CarbonOffset:    fmt.Sprintf("%.0fK", float64(offset)/1_000),
	}, nil
}
