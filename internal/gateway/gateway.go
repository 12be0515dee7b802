package gateway

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"mezze/internal/domain"
)

// Client is a thin typed wrapper over the backend's tables and the
// create_order_with_items procedure. It owns no state; the cache store is
// the only local owner of data.
type Client struct {
	db *sql.DB
}

func NewClient(db *sql.DB) *Client {
	return &Client{db: db}
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(sort, 0)
		FROM categories
		ORDER BY sort ASC`)
	if err != nil {
		return nil, remoteErr("categories.select", err)
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Sort); err != nil {
			return nil, remoteErr("categories.scan", err)
		}
		cats = append(cats, cat)
	}
	return cats, remoteErr("categories.rows", rows.Err())
}

const menuItemColumns = `
	id, name, COALESCE("desc", ''), COALESCE(price, 0), COALESCE(img, ''),
	COALESCE(cat_id, ''), COALESCE(available, FALSE), COALESCE(fresh, FALSE),
	COALESCE(rating_avg, 0), COALESCE(rating_count, 0)`

// MenuItems reads one page ordered by recency. onlyAvailable matches the
// public catalog view; the admin sync passes false for the full table.
func (c *Client) MenuItems(ctx context.Context, onlyAvailable bool, offset, limit int) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items`
	if onlyAvailable {
		query += ` WHERE available = TRUE`
	}
	query += ` ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	rows, err := c.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, remoteErr("menu_items.select", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, remoteErr("menu_items.scan", err)
		}
		items = append(items, item)
	}
	return items, remoteErr("menu_items.rows", rows.Err())
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanMenuItem maps a raw menu_items row into the canonical cached shape,
// applying description truncation and numeric coercion on the way.
func scanMenuItem(row rowScanner) (domain.MenuItem, error) {
	var (
		item domain.MenuItem
		id   int64
	)
	if err := row.Scan(&id, &item.Name, &item.Desc, &item.Price, &item.Img,
		&item.CatID, &item.Available, &item.Fresh,
		&item.Rating.Avg, &item.Rating.Count); err != nil {
		return domain.MenuItem{}, err
	}
	item.ID = domain.FormatServerID(id)
	item.Desc = domain.SanitizeDesc(item.Desc)
	item.Price = domain.NonNegative(item.Price)
	return item, nil
}

// OrdersSince reads orders created after since, newest first, without their
// line items. Line items are fetched separately by id list.
func (c *Client) OrdersSince(ctx context.Context, since time.Time, limit int) ([]domain.Order, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, COALESCE(order_name, ''), COALESCE(phone, ''), COALESCE(table_no, ''),
		       COALESCE(notes, ''), COALESCE(total, 0), COALESCE(status, 'new'),
		       COALESCE(discount_pct, 0), COALESCE(discount, 0), additions, created_at
		FROM orders
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2`, since, limit)
	if err != nil {
		return nil, remoteErr("orders.select", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			o         domain.Order
			id        int64
			additions pq.StringArray
		)
		if err := rows.Scan(&id, &o.OrderName, &o.Phone, &o.Table, &o.Notes,
			&o.Total, &o.Status, &o.DiscountPct, &o.Discount, &additions, &o.CreatedAt); err != nil {
			return nil, remoteErr("orders.scan", err)
		}
		o.ID = domain.FormatServerID(id)
		o.Time = o.CreatedAt
		o.Additions = additions
		orders = append(orders, o)
	}
	return orders, remoteErr("orders.rows", rows.Err())
}

// OrderItems fetches line items for one chunk of order ids via an in-list
// join. Chunking to respect query-size limits is the sync engine's job.
func (c *Client) OrderItems(ctx context.Context, orderIDs []string) ([]domain.OrderLine, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(orderIDs))
	for _, id := range orderIDs {
		if n, ok := domain.ParseServerID(id); ok {
			ids = append(ids, n)
		}
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT order_id, COALESCE(item_id, 0), COALESCE(name, ''),
		       COALESCE(price, 0), COALESCE(qty, 1)
		FROM order_items
		WHERE order_id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, remoteErr("order_items.select", err)
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var (
			line    domain.OrderLine
			orderID int64
			itemID  int64
		)
		if err := rows.Scan(&orderID, &itemID, &line.Item.Name, &line.Item.Price, &line.Item.Qty); err != nil {
			return nil, remoteErr("order_items.scan", err)
		}
		line.OrderID = domain.FormatServerID(orderID)
		if itemID != 0 {
			line.Item.ID = domain.FormatServerID(itemID)
		}
		line.Item.Qty = domain.QtyOrDefault(line.Item.Qty, 1)
		lines = append(lines, line)
	}
	return lines, remoteErr("order_items.rows", rows.Err())
}

// ReservationsBetween reads the bounded reservation window ordered by date.
func (c *Client) ReservationsBetween(ctx context.Context, from, to time.Time, limit int) ([]domain.Reservation, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, COALESCE(name, ''), COALESCE(phone, ''), date, COALESCE(people, 0),
		       COALESCE(kind, 'table'), COALESCE(table_no, ''), COALESCE(duration_minutes, 90),
		       COALESCE(notes, ''), COALESCE(status, 'new'), created_at
		FROM reservations
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
		LIMIT $3`, from, to, limit)
	if err != nil {
		return nil, remoteErr("reservations.select", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var (
			r  domain.Reservation
			id int64
		)
		if err := rows.Scan(&id, &r.Name, &r.Phone, &r.Date, &r.People, &r.Kind,
			&r.Table, &r.Duration, &r.Notes, &r.Status, &r.CreatedAt); err != nil {
			return nil, remoteErr("reservations.scan", err)
		}
		r.ID = domain.FormatServerID(id)
		reservations = append(reservations, r)
	}
	return reservations, remoteErr("reservations.rows", rows.Err())
}

// Ratings reads the most recent raw ratings, bounded for cold-start syncs.
func (c *Client) Ratings(ctx context.Context, limit int) ([]domain.RatingEntry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT item_id, stars, created_at
		FROM ratings
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, remoteErr("ratings.select", err)
	}
	defer rows.Close()

	var ratings []domain.RatingEntry
	for rows.Next() {
		var (
			entry  domain.RatingEntry
			itemID int64
		)
		if err := rows.Scan(&itemID, &entry.Stars, &entry.CreatedAt); err != nil {
			return nil, remoteErr("ratings.scan", err)
		}
		entry.ItemID = domain.FormatServerID(itemID)
		ratings = append(ratings, entry)
	}
	return ratings, remoteErr("ratings.rows", rows.Err())
}

// CheckSession validates an admin session token. A missing or expired
// session yields ErrSessionMissing; backend failures yield RemoteError.
func (c *Client) CheckSession(ctx context.Context, token string) error {
	if token == "" {
		return ErrSessionMissing
	}
	var ok bool
	err := c.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM admin_sessions
			WHERE token = $1 AND expires_at > now()
		)`, token).Scan(&ok)
	if err != nil {
		return remoteErr("session.check", err)
	}
	if !ok {
		return ErrSessionMissing
	}
	return nil
}
