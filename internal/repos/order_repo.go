package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"canopy/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

const orderColumns = `id, user_id, credit_id, quantity, unit_price, total_price, duration, status, delivery_date, created_at`

// Place writes the order and decrements the credit's stock in one
// transaction. The guarded UPDATE only fires when enough units remain, so an
// over-quantity order leaves both tables untouched.
func (r *OrderRepo) Place(o domain.Order) (domain.Order, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Order{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		UPDATE carbon_credits
		SET available = available - ?
		WHERE id = ? AND available >= ?
	`, o.Quantity, o.CreditID, o.Quantity)
	if err != nil {
		return domain.Order{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish a missing listing from an out-of-stock one.
		var available int
		if err := tx.Get(&available, `SELECT available FROM carbon_credits WHERE id = ?`, o.CreditID); err != nil {
			if err == sql.ErrNoRows {
				return domain.Order{}, ErrNotFound
			}
			return domain.Order{}, err
		}
		return domain.Order{}, ErrInsufficientStock
	}

	res, err = tx.Exec(`
		INSERT INTO orders(user_id,credit_id,quantity,unit_price,total_price,duration,status,delivery_date,created_at)
		VALUES(?,?,?,?,?,?,?,?,?)
	`, o.UserID, o.CreditID, o.Quantity, o.UnitPrice, o.TotalPrice, o.Duration, o.Status, o.DeliveryDate, o.CreatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Order{}, err
	}

	var placed domain.Order
	if err := tx.Get(&placed, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id); err != nil {
		return domain.Order{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Order{}, err
	}
	return placed, nil
}

func (r *OrderRepo) Get(id int64) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	return o, err
}

func (r *OrderRepo) ListByUser(userID int64) ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.Select(&out, `SELECT `+orderColumns+` FROM orders WHERE user_id = ? ORDER BY id`, userID)
	return out, err
}

func (r *OrderRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM orders`)
	return n, err
}

func (r *OrderRepo) UpdateStatus(id int64, status string) (domain.Order, error) {
	res, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return domain.Order{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Order{}, ErrNotFound
	}
	return r.Get(id)
}
