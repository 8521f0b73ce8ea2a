package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = sql.ErrNoRows

// ErrInsufficientStock is returned when an order asks for more units than a
// credit has available.
var ErrInsufficientStock = errors.New("insufficient stock")

// OpenDB opens the embedded store, bootstraps the schema and seeds demo data.
// A single connection serializes all access, which doubles as the concurrency
// model: each request runs to completion before the next touches state. It
// also keeps a ":memory:" DSN pointed at one database instead of one per
// pooled connection.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS carbon_credits(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  type TEXT NOT NULL,
  location TEXT NOT NULL,
  verification TEXT NOT NULL,
  price TEXT NOT NULL,
  available INTEGER NOT NULL CHECK (available >= 0),
  vintage INTEGER NOT NULL,
  image_url TEXT NOT NULL,
  seller_id INTEGER NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  credit_id INTEGER NOT NULL REFERENCES carbon_credits(id),
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  unit_price TEXT NOT NULL,
  total_price TEXT NOT NULL,
  duration TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  delivery_date TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id);

CREATE TABLE IF NOT EXISTS portfolio_items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  credit_id INTEGER NOT NULL REFERENCES carbon_credits(id),
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  purchase_price TEXT NOT NULL,
  purchase_date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_portfolio_user ON portfolio_items(user_id);

CREATE TABLE IF NOT EXISTS contact_requests(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  email TEXT NOT NULL,
  company TEXT,
  interest TEXT NOT NULL,
  message TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty loads the demo marketplace: six credit listings, the demo user
// and a couple of holdings so the portfolio page has something to show.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM carbon_credits`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	type seedCredit struct {
		name, description, typ, location, verification, price, imageURL string
		available, vintage                                              int
		sellerID                                                        int64
	}
	credits := []seedCredit{
		{
			name:         "Amazon Rainforest Protection",
			description:  "Protecting 50,000 hectares of Amazon rainforest through community conservation initiatives",
			typ:          "Forestry",
			location:     "Brazil",
			verification: "VCS Verified",
			price:        "45.00",
			available:    12500,
			vintage:      2023,
			imageURL:     "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			sellerID:     1,
		},
		{
			name:         "Solar Farm India",
			description:  "100MW solar installation providing clean energy to rural communities",
			typ:          "Solar Energy",
			location:     "India",
			verification: "Gold Standard",
			price:        "38.00",
			available:    8200,
			vintage:      2023,
			imageURL:     "https://images.unsplash.com/photo-1509391366360-2e959784a276?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			sellerID:     2,
		},
		{
			name:         "Offshore Wind Farm",
			description:  "250MW offshore wind installation generating clean electricity",
			typ:          "Wind Energy",
			location:     "Denmark",
			verification: "VCS Verified",
			price:        "52.00",
			available:    15750,
			vintage:      2023,
			imageURL:     "https://images.unsplash.com/photo-1466611653911-95081537e5b7?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			sellerID:     3,
		},
		{
			name:         "Methane Capture Project",
			description:  "Capturing methane emissions from agricultural waste and converting to energy",
			typ:          "Methane Reduction",
			location:     "United States",
			verification: "VCS Verified",
			price:        "42.00",
			available:    9800,
			vintage:      2023,
			imageURL:     "https://images.unsplash.com/photo-1581089778245-3ce67677f718?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			sellerID:     4,
		},
		{
			name:         "Reforestation Kenya",
			description:  "Large-scale tree planting initiative restoring degraded forest land",
			typ:          "Forestry",
			location:     "Kenya",
			verification: "Gold Standard",
			price:        "35.00",
			available:    18600,
			vintage:      2023,
			imageURL:     "https://images.unsplash.com/photo-1574263867128-f5d55a4fa68b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			sellerID:     5,
		},
		{
			name:         "Hydroelectric Power",
			description:  "Small-scale hydroelectric project providing clean energy to remote communities",
			typ:          "Hydro Energy",
			location:     "Costa Rica",
			verification: "VCS Verified",
			price:        "41.00",
			available:    6750,
			vintage:      2023,
			imageURL:     "https://images.unsplash.com/photo-1473341304170-971dccb5ac1e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			sellerID:     6,
		},
	}

	for _, c := range credits {
		if _, err := tx.Exec(`
			INSERT INTO carbon_credits(name,description,type,location,verification,price,available,vintage,image_url,seller_id,created_at)
			VALUES(?,?,?,?,?,?,?,?,?,?,strftime('%Y-%m-%dT%H:%M:%SZ','now'))
		`, c.name, c.description, c.typ, c.location, c.verification, c.price, c.available, c.vintage, c.imageURL, c.sellerID); err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO users(username,password_hash) VALUES(?,?)`, "demo", string(hash)); err != nil {
		return err
	}

	// Holdings predate the session; nothing turns new orders into these.
	holdings := []struct {
		creditID int64
		quantity int
		price    string
		date     string
	}{
		{1, 150, "42.50", "2024-03-18T00:00:00Z"},
		{3, 80, "49.75", "2024-11-02T00:00:00Z"},
	}
	for _, h := range holdings {
		if _, err := tx.Exec(`
			INSERT INTO portfolio_items(user_id,credit_id,quantity,purchase_price,purchase_date)
			VALUES(1,?,?,?,?)
		`, h.creditID, h.quantity, h.price, h.date); err != nil {
			return err
		}
	}

	return tx.Commit()
}
