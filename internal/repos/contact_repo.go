package repos

import (
	"github.com/jmoiron/sqlx"

	"canopy/internal/domain"
)

type ContactRepo struct{ db *sqlx.DB }

func NewContactRepo(db *sqlx.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Create(req domain.ContactRequest) (domain.ContactRequest, error) {
	res, err := r.db.Exec(`
		INSERT INTO contact_requests(first_name,last_name,email,company,interest,message,created_at)
		VALUES(?,?,?,?,?,?,?)
	`, req.FirstName, req.LastName, req.Email, req.Company, req.Interest, req.Message, req.CreatedAt)
	if err != nil {
		return domain.ContactRequest{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.ContactRequest{}, err
	}
	var out domain.ContactRequest
	err = r.db.Get(&out, `
		SELECT id, first_name, last_name, email, company, interest, message, created_at
		FROM contact_requests WHERE id = ?
	`, id)
	return out, err
}

func (r *ContactRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM contact_requests`)
	return n, err
}
