package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"mezze/internal/domain"
)

// setClause accumulates a dynamic UPDATE ... SET list.
type setClause struct {
	cols []string
	args []any
}

func (s *setClause) add(col string, v any) {
	s.args = append(s.args, v)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(s.args)))
}

func (s *setClause) empty() bool { return len(s.cols) == 0 }

func (s *setClause) sql() string { return strings.Join(s.cols, ", ") }

// CreateOrderWithItems calls the backend procedure that creates the order
// and its line items atomically, so a partial order is never visible.
// Returns the server-assigned order id.
func (c *Client) CreateOrderWithItems(ctx context.Context, orderName, phone, tableNo, notes string, items []domain.OrderItem) (string, error) {
	payload, err := json.Marshal(items)
	if err != nil {
		return "", remoteErr("orders.rpc", err)
	}

	var id int64
	err = c.db.QueryRowContext(ctx,
		`SELECT create_order_with_items($1, $2, $3, $4, $5)`,
		orderName, phone, tableNo, notes, payload,
	).Scan(&id)
	if err != nil {
		return "", remoteErr("orders.rpc", err)
	}
	return domain.FormatServerID(id), nil
}

// OrderPatch carries the admin-editable order fields. Nil means unchanged.
type OrderPatch struct {
	Status      *string
	Additions   *[]string
	Discount    *float64
	DiscountPct *float64
}

func (c *Client) UpdateOrder(ctx context.Context, id string, patch OrderPatch) error {
	serverID, ok := domain.ParseServerID(id)
	if !ok {
		return remoteErr("orders.update", fmt.Errorf("bad order id %q", id))
	}

	var set setClause
	if patch.Status != nil {
		set.add("status", *patch.Status)
	}
	if patch.Additions != nil {
		set.add("additions", pq.Array(*patch.Additions))
	}
	if patch.Discount != nil {
		set.add("discount", domain.NonNegative(*patch.Discount))
	}
	if patch.DiscountPct != nil {
		set.add("discount_pct", domain.NonNegative(*patch.DiscountPct))
	}
	if set.empty() {
		return nil
	}

	set.args = append(set.args, serverID)
	_, err := c.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", set.sql(), len(set.args)),
		set.args...)
	return remoteErr("orders.update", err)
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	serverID, ok := domain.ParseServerID(id)
	if !ok {
		return remoteErr("orders.delete", fmt.Errorf("bad order id %q", id))
	}
	_, err := c.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", serverID)
	return remoteErr("orders.delete", err)
}

// InsertReservation is insert-only: the public surface has no read-back
// privilege, so no server id is returned.
func (c *Client) InsertReservation(ctx context.Context, r domain.Reservation) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO reservations (name, phone, date, people, kind, notes, duration_minutes, table_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.Name, r.Phone, r.Date, r.People, r.Kind, r.Notes, r.Duration, r.Table)
	return remoteErr("reservations.insert", err)
}

// ReservationPatch: nil means unchanged.
type ReservationPatch struct {
	Name     *string
	Phone    *string
	Date     *time.Time
	People   *int
	Status   *string
	Notes    *string
	Table    *string
	Duration *int
}

func (c *Client) UpdateReservation(ctx context.Context, id string, patch ReservationPatch) error {
	serverID, ok := domain.ParseServerID(id)
	if !ok {
		return remoteErr("reservations.update", fmt.Errorf("bad reservation id %q", id))
	}

	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Phone != nil {
		set.add("phone", *patch.Phone)
	}
	if patch.Date != nil {
		set.add("date", *patch.Date)
	}
	if patch.People != nil {
		set.add("people", *patch.People)
	}
	if patch.Status != nil {
		set.add("status", *patch.Status)
	}
	if patch.Notes != nil {
		set.add("notes", *patch.Notes)
	}
	if patch.Table != nil {
		set.add("table_no", *patch.Table)
	}
	if patch.Duration != nil {
		set.add("duration_minutes", *patch.Duration)
	}
	if set.empty() {
		return nil
	}

	set.args = append(set.args, serverID)
	_, err := c.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE reservations SET %s WHERE id = $%d", set.sql(), len(set.args)),
		set.args...)
	return remoteErr("reservations.update", err)
}

func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	serverID, ok := domain.ParseServerID(id)
	if !ok {
		return remoteErr("reservations.delete", fmt.Errorf("bad reservation id %q", id))
	}
	_, err := c.db.ExecContext(ctx, "DELETE FROM reservations WHERE id = $1", serverID)
	return remoteErr("reservations.delete", err)
}

func (c *Client) InsertCategory(ctx context.Context, cat domain.Category) (domain.Category, error) {
	var created domain.Category
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO categories (id, name, sort)
		VALUES ($1, $2, $3)
		RETURNING id, name, COALESCE(sort, 0)`,
		cat.ID, cat.Name, cat.Sort,
	).Scan(&created.ID, &created.Name, &created.Sort)
	if err != nil {
		return domain.Category{}, remoteErr("categories.insert", err)
	}
	return created, nil
}

// CategoryPatch: nil means unchanged.
type CategoryPatch struct {
	Name *string
	Sort *int
}

func (c *Client) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (domain.Category, error) {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Sort != nil {
		set.add("sort", *patch.Sort)
	}
	if set.empty() {
		return domain.Category{}, nil
	}

	set.args = append(set.args, id)
	var updated domain.Category
	err := c.db.QueryRowContext(ctx,
		fmt.Sprintf("UPDATE categories SET %s WHERE id = $%d RETURNING id, name, COALESCE(sort, 0)",
			set.sql(), len(set.args)),
		set.args...,
	).Scan(&updated.ID, &updated.Name, &updated.Sort)
	if err != nil {
		return domain.Category{}, remoteErr("categories.update", err)
	}
	return updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	return remoteErr("categories.delete", err)
}

// MenuItemInput is the remote payload for a new menu item.
type MenuItemInput struct {
	Name      string
	Desc      string
	Price     float64
	Img       string
	CatID     string
	Available bool
	Fresh     bool
}

func (c *Client) InsertMenuItem(ctx context.Context, in MenuItemInput) (domain.MenuItem, error) {
	row := c.db.QueryRowContext(ctx, `
		INSERT INTO menu_items (name, "desc", price, img, cat_id, available, fresh)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		RETURNING `+menuItemColumns,
		in.Name, in.Desc, domain.NonNegative(in.Price), in.Img, in.CatID, in.Available, in.Fresh)

	item, err := scanMenuItem(row)
	if err != nil {
		return domain.MenuItem{}, remoteErr("menu_items.insert", err)
	}
	return item, nil
}

// MenuItemPatch: nil means unchanged.
type MenuItemPatch struct {
	Name      *string
	Desc      *string
	Price     *float64
	Img       *string
	CatID     *string
	Available *bool
	Fresh     *bool
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, patch MenuItemPatch) (domain.MenuItem, error) {
	serverID, ok := domain.ParseServerID(id)
	if !ok {
		return domain.MenuItem{}, remoteErr("menu_items.update", fmt.Errorf("bad item id %q", id))
	}

	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Desc != nil {
		set.add(`"desc"`, *patch.Desc)
	}
	if patch.Price != nil {
		set.add("price", domain.NonNegative(*patch.Price))
	}
	if patch.Img != nil {
		set.add("img", *patch.Img)
	}
	if patch.CatID != nil {
		set.add("cat_id", nullIfEmpty(*patch.CatID))
	}
	if patch.Available != nil {
		set.add("available", *patch.Available)
	}
	if patch.Fresh != nil {
		set.add("fresh", *patch.Fresh)
	}
	if set.empty() {
		return domain.MenuItem{}, nil
	}

	set.args = append(set.args, serverID)
	row := c.db.QueryRowContext(ctx,
		fmt.Sprintf("UPDATE menu_items SET %s WHERE id = $%d RETURNING %s",
			set.sql(), len(set.args), menuItemColumns),
		set.args...)

	item, err := scanMenuItem(row)
	if err != nil {
		return domain.MenuItem{}, remoteErr("menu_items.update", err)
	}
	return item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	serverID, ok := domain.ParseServerID(id)
	if !ok {
		return remoteErr("menu_items.delete", fmt.Errorf("bad item id %q", id))
	}
	_, err := c.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", serverID)
	return remoteErr("menu_items.delete", err)
}

func (c *Client) InsertRating(ctx context.Context, itemID string, stars int) error {
	serverID, ok := domain.ParseServerID(itemID)
	if !ok {
		return remoteErr("ratings.insert", fmt.Errorf("bad item id %q", itemID))
	}
	_, err := c.db.ExecContext(ctx,
		"INSERT INTO ratings (item_id, stars) VALUES ($1, $2)",
		serverID, domain.ClampStars(stars))
	return remoteErr("ratings.insert", err)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
