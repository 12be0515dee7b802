package domain

import "time"

// Category of the menu. Render order is ascending Sort.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sort int    `json:"sort"`
}

// Rating is the running aggregate shown next to a menu item.
type Rating struct {
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

type MenuItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Desc      string `json:"desc"`
	Price     float64 `json:"price"`
	Img       string `json:"img"`
	CatID     string `json:"catId"` // empty when the category was deleted
	Fresh     bool   `json:"fresh"`
	Available bool   `json:"available"`
	Rating    Rating `json:"rating"`
}

type CartLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
	Img   string  `json:"img"`
}

type OrderItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// OrderLine ties a fetched order item row back to its order.
type OrderLine struct {
	OrderID string    `json:"orderId"`
	Item    OrderItem `json:"item"`
}

type Order struct {
	ID          string      `json:"id"`
	Total       float64     `json:"total"`
	ItemCount   int         `json:"itemCount"`
	Time        time.Time   `json:"time"`
	CreatedAt   time.Time   `json:"createdAt"`
	Status      string      `json:"status"` // open set; "new" on creation
	Table       string      `json:"table"`
	OrderName   string      `json:"orderName"`
	Phone       string      `json:"phone"`
	Notes       string      `json:"notes"`
	Additions   []string    `json:"additions,omitempty"`
	Discount    float64     `json:"discount"`
	DiscountPct float64     `json:"discountPct"`
	Items       []OrderItem `json:"items"`
}

type Reservation struct {
	ID        string    `json:"id"` // server serial or temporary token
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Date      time.Time `json:"date"`
	People    int       `json:"people"`
	Kind      string    `json:"kind"` // table, family, private, full
	Table     string    `json:"table"`
	Duration  int       `json:"duration"` // minutes
	Notes     string    `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type Notification struct {
	ID      string    `json:"id"` // "ord-<orderID>" for order notifications
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
	Read    bool      `json:"read"`
}

// RatingEntry is one raw rating row mirrored for admin views.
type RatingEntry struct {
	ItemID    string    `json:"itemId"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
}
