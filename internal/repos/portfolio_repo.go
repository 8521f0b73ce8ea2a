package repos

import (
	"github.com/jmoiron/sqlx"

	"canopy/internal/domain"
)

type PortfolioRepo struct{ db *sqlx.DB }

func NewPortfolioRepo(db *sqlx.DB) *PortfolioRepo { return &PortfolioRepo{db: db} }

const portfolioColumns = `id, user_id, credit_id, quantity, purchase_price, purchase_date`

func (r *PortfolioRepo) ListByUser(userID int64) ([]domain.PortfolioItem, error) {
	out := []domain.PortfolioItem{}
	err := r.db.Select(&out, `SELECT `+portfolioColumns+` FROM portfolio_items WHERE user_id = ? ORDER BY id`, userID)
	return out, err
}

func (r *PortfolioRepo) Create(item domain.PortfolioItem) (domain.PortfolioItem, error) {
	res, err := r.db.Exec(`
		INSERT INTO portfolio_items(user_id,credit_id,quantity,purchase_price,purchase_date)
		VALUES(?,?,?,?,?)
	`, item.UserID, item.CreditID, item.Quantity, item.PurchasePrice, item.PurchaseDate)
	if err != nil {
		return domain.PortfolioItem{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.PortfolioItem{}, err
	}
	var out domain.PortfolioItem
	err = r.db.Get(&out, `SELECT `+portfolioColumns+` FROM portfolio_items WHERE id = ?`, id)
	return out, err
}
