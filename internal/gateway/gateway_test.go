package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"mezze/internal/domain"
)

func newTestClient(t *testing.T) (*Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewClient(db), mock
}

func TestClient_Categories(t *testing.T) {
	client, mock := newTestClient(t)

	rows := sqlmock.NewRows([]string{"id", "name", "sort"}).
		AddRow("grill", "Grill", 1).
		AddRow("drinks", "Drinks", 2)
	mock.ExpectQuery("SELECT id, name, COALESCE").WillReturnRows(rows)

	cats, err := client.Categories(context.Background())
	assert.NoError(t, err)
	assert.Len(t, cats, 2)
	assert.Equal(t, "grill", cats[0].ID)
}

func TestClient_MenuItemsMapsRows(t *testing.T) {
	client, mock := newTestClient(t)

	longDesc := strings.Repeat("a", 400)
	rows := sqlmock.NewRows([]string{
		"id", "name", "desc", "price", "img", "cat_id", "available", "fresh", "rating_avg", "rating_count",
	}).AddRow(int64(7), "Kebab", longDesc, -5.0, "img/kebab.png", "grill", true, false, 4.5, 12)

	mock.ExpectQuery("FROM menu_items").
		WithArgs(0, 200).
		WillReturnRows(rows)

	items, err := client.MenuItems(context.Background(), true, 0, 200)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "7", items[0].ID)
	assert.Len(t, items[0].Desc, domain.DescMaxLen)
	assert.Equal(t, 0.0, items[0].Price) // negative price coerced
	assert.Equal(t, 4.5, items[0].Rating.Avg)
}

func TestClient_MenuItemsQueryError(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery("FROM menu_items").WillReturnError(errors.New("connection reset"))

	_, err := client.MenuItems(context.Background(), true, 0, 200)
	var remote *RemoteError
	assert.ErrorAs(t, err, &remote)
	assert.Equal(t, "menu_items.select", remote.Op)
}

func TestClient_CreateOrderWithItems(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery("SELECT create_order_with_items").
		WillReturnRows(sqlmock.NewRows([]string{"create_order_with_items"}).AddRow(int64(321)))

	id, err := client.CreateOrderWithItems(context.Background(), "Abu Ahmad", "", "5", "",
		[]domain.OrderItem{{ID: "1", Name: "Kebab", Price: 1000, Qty: 2}})
	assert.NoError(t, err)
	assert.Equal(t, "321", id)
}

func TestClient_UpdateOrderBuildsPartialSet(t *testing.T) {
	client, mock := newTestClient(t)

	status := "done"
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("done", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := client.UpdateOrder(context.Background(), "9", OrderPatch{Status: &status})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_UpdateOrderEmptyPatchIsNoop(t *testing.T) {
	client, mock := newTestClient(t)

	err := client.UpdateOrder(context.Background(), "9", OrderPatch{})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_OrderItemsEmptyIDList(t *testing.T) {
	client, mock := newTestClient(t)

	lines, err := client.OrderItems(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, lines)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_CheckSession(t *testing.T) {
	client, mock := newTestClient(t)

	assert.ErrorIs(t, client.CheckSession(context.Background(), ""), ErrSessionMissing)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("expired-token").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	assert.ErrorIs(t, client.CheckSession(context.Background(), "expired-token"), ErrSessionMissing)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("good-token").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	assert.NoError(t, client.CheckSession(context.Background(), "good-token"))
}

func TestClient_ReservationsBetween(t *testing.T) {
	client, mock := newTestClient(t)

	date := time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "name", "phone", "date", "people", "kind", "table_no",
		"duration_minutes", "notes", "status", "created_at",
	}).AddRow(int64(4), "Rami", "099", date, 4, "family", "12", 90, "", "new", date)

	mock.ExpectQuery("FROM reservations").WillReturnRows(rows)

	got, err := client.ReservationsBetween(context.Background(),
		date.AddDate(0, 0, -7), date.AddDate(0, 0, 60), 1000)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "4", got[0].ID)
	assert.Equal(t, "family", got[0].Kind)
}
