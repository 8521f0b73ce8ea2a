package domain

// CarbonCredit is a tradeable listing: one unit offsets one ton of CO2.
// Price is a decimal string ("45.00"); timestamps are RFC 3339 strings.
type CarbonCredit struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Description  string `db:"description" json:"description"`
	Type         string `db:"type" json:"type"` // Forestry | Solar Energy | Wind Energy | Methane Reduction | Hydro Energy
	Location     string `db:"location" json:"location"`
	Verification string `db:"verification" json:"verification"`
	Price        string `db:"price" json:"price"`
	Available    int    `db:"available" json:"available"`
	Vintage      int    `db:"vintage" json:"vintage"`
	ImageURL     string `db:"image_url" json:"imageUrl"`
	SellerID     int64  `db:"seller_id" json:"sellerId"`
	CreatedAt    string `db:"created_at" json:"createdAt"`
}

type Order struct {
	ID           int64  `db:"id" json:"id"`
	UserID       int64  `db:"user_id" json:"userId"`
	CreditID     int64  `db:"credit_id" json:"creditId"`
	Quantity     int    `db:"quantity" json:"quantity"`
	UnitPrice    string `db:"unit_price" json:"unitPrice"`
	TotalPrice   string `db:"total_price" json:"totalPrice"`
	Duration     string `db:"duration" json:"duration"`
	Status       string `db:"status" json:"status"`
	DeliveryDate string `db:"delivery_date" json:"deliveryDate"`
	CreatedAt    string `db:"created_at" json:"createdAt"`
}

type PortfolioItem struct {
	ID            int64  `db:"id" json:"id"`
	UserID        int64  `db:"user_id" json:"userId"`
	CreditID      int64  `db:"credit_id" json:"creditId"`
	Quantity      int    `db:"quantity" json:"quantity"`
	PurchasePrice string `db:"purchase_price" json:"purchasePrice"`
	PurchaseDate  string `db:"purchase_date" json:"purchaseDate"`
}

type ContactRequest struct {
	ID        int64   `db:"id" json:"id"`
	FirstName string  `db:"first_name" json:"firstName"`
	LastName  string  `db:"last_name" json:"lastName"`
	Email     string  `db:"email" json:"email"`
	Company   *string `db:"company" json:"company"`
	Interest  string  `db:"interest" json:"interest"`
	Message   string  `db:"message" json:"message"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
}

type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// MarketStats are display strings, not numbers; the frontend renders them as-is.
type MarketStats struct {
	TotalCredits    string `json:"totalCredits"`
	ActiveBuyers    string `json:"activeBuyers"`
	VerifiedSellers string `json:"verifiedSellers"`
	CarbonOffset    string `json:"carbonOffset"`
}
