package repos

import (
	"github.com/jmoiron/sqlx"

	"canopy/internal/domain"
)

type CreditRepo struct{ db *sqlx.DB }

func NewCreditRepo(db *sqlx.DB) *CreditRepo { return &CreditRepo{db: db} }

const creditColumns = `id, name, description, type, location, verification, price, available, vintage, image_url, seller_id, created_at`

func (r *CreditRepo) List() ([]domain.CarbonCredit, error) {
	out := []domain.CarbonCredit{}
	err := r.db.Select(&out, `SELECT `+creditColumns+` FROM carbon_credits ORDER BY id`)
	return out, err
}

func (r *CreditRepo) Get(id int64) (domain.CarbonCredit, error) {
	var c domain.CarbonCredit
	err := r.db.Get(&c, `SELECT `+creditColumns+` FROM carbon_credits WHERE id = ?`, id)
	return c, err
}

// Create inserts a new listing and returns it with its assigned id.
func (r *CreditRepo) Create(c domain.CarbonCredit) (domain.CarbonCredit, error) {
	res, err := r.db.Exec(`
		INSERT INTO carbon_credits(name,description,type,location,verification,price,available,vintage,image_url,seller_id,created_at)
		VALUES(?,?,?,?,?,?,?,?,?,?,?)
	`, c.Name, c.Description, c.Type, c.Location, c.Verification, c.Price, c.Available, c.Vintage, c.ImageURL, c.SellerID, c.CreatedAt)
	if err != nil {
		return domain.CarbonCredit{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.CarbonCredit{}, err
	}
	return r.Get(id)
}

// SetAvailable overwrites the available quantity for a listing.
func (r *CreditRepo) SetAvailable(id int64, available int) (domain.CarbonCredit, error) {
	res, err := r.db.Exec(`UPDATE carbon_credits SET available = ? WHERE id = ?`, available, id)
	if err != nil {
		return domain.CarbonCredit{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.CarbonCredit{}, ErrNotFound
	}
	return r.Get(id)
}
