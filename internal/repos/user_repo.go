package repos

import (
	"github.com/jmoiron/sqlx"

	"canopy/internal/domain"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) ByID(id int64) (domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `SELECT id, username, password_hash FROM users WHERE id = ?`, id)
	return u, err
}

func (r *UserRepo) ByUsername(username string) (domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `SELECT id, username, password_hash FROM users WHERE username = ?`, username)
	return u, err
}

func (r *UserRepo) Create(username, passwordHash string) (domain.User, error) {
	res, err := r.db.Exec(`INSERT INTO users(username,password_hash) VALUES(?,?)`, username, passwordHash)
	if err != nil {
		return domain.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return r.ByID(id)
}
