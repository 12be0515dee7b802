package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mezze/internal/domain"
	"mezze/internal/events"
	"mezze/internal/gateway"
	"mezze/internal/localstore"
	"mezze/internal/mutate"
	"mezze/internal/scheduler"
)

// SessionChecker validates an admin session token against the backend.
type SessionChecker interface {
	CheckSession(ctx context.Context, token string) error
}

type Handler struct {
	Store    *localstore.Store
	Mutator  *mutate.Mutator
	Sync     *scheduler.Manager
	Bus      *events.Bus
	Sessions SessionChecker
}

func NewHandler(store *localstore.Store, mutator *mutate.Mutator, sync *scheduler.Manager, bus *events.Bus, sessions SessionChecker) *Handler {
	return &Handler{
		Store:    store,
		Mutator:  mutator,
		Sync:     sync,
		Bus:      bus,
		Sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.sessionMiddleware)

	api.HandleFunc("/orders", h.getOrders).Methods("GET")
	api.HandleFunc("/orders/{id}", h.updateOrder).Methods("PATCH")
	api.HandleFunc("/orders/{id}", h.deleteOrder).Methods("DELETE")

	api.HandleFunc("/reservations", h.getReservations).Methods("GET")
	api.HandleFunc("/reservations/{id}", h.updateReservation).Methods("PATCH")
	api.HandleFunc("/reservations/{id}", h.deleteReservation).Methods("DELETE")

	api.HandleFunc("/categories", h.getCategories).Methods("GET")
	api.HandleFunc("/categories", h.createCategory).Methods("POST")
	api.HandleFunc("/categories/{id}", h.updateCategory).Methods("PATCH")
	api.HandleFunc("/categories/{id}", h.deleteCategory).Methods("DELETE")

	api.HandleFunc("/menu", h.getMenu).Methods("GET")
	api.HandleFunc("/menu", h.createMenuItem).Methods("POST")
	api.HandleFunc("/menu/{id}", h.updateMenuItem).Methods("PATCH")
	api.HandleFunc("/menu/{id}", h.deleteMenuItem).Methods("DELETE")
	api.HandleFunc("/menu/{id}/image", h.uploadMenuItemImage).Methods("POST")

	api.HandleFunc("/notifications", h.getNotifications).Methods("GET")
	api.HandleFunc("/notifications/read-all", h.markAllNotificationsRead).Methods("POST")
	api.HandleFunc("/notifications/{id}/read", h.markNotificationRead).Methods("POST")

	api.HandleFunc("/sync", h.triggerSync).Methods("POST")
	api.HandleFunc("/events", h.streamEvents).Methods("GET")
}

// sessionMiddleware gates every API route on a live backend session. A
// rejected token gets 401; the page is expected to send the user back to
// the login flow, not retry.
func (h *Handler) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Session-Token")
		err := h.Sessions.CheckSession(r.Context(), token)
		if errors.Is(err, gateway.ErrSessionMissing) {
			http.Error(w, "Session expired or missing", http.StatusUnauthorized)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "admin-app",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Store.Orders())
}

type orderPatchRequest struct {
	Status      *string   `json:"status"`
	Additions   *[]string `json:"additions"`
	Discount    *float64  `json:"discount"`
	DiscountPct *float64  `json:"discountPct"`
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.Mutator.UpdateOrder(r.Context(), mux.Vars(r)["id"], gateway.OrderPatch{
		Status:      req.Status,
		Additions:   req.Additions,
		Discount:    req.Discount,
		DiscountPct: req.DiscountPct,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, h.Store.Orders())
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Mutator.DeleteOrder(r.Context(), mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Store.Reservations())
}

type reservationPatchRequest struct {
	Name     *string    `json:"name"`
	Phone    *string    `json:"phone"`
	Date     *time.Time `json:"date"`
	People   *int       `json:"people"`
	Status   *string    `json:"status"`
	Notes    *string    `json:"notes"`
	Table    *string    `json:"table"`
	Duration *int       `json:"duration"`
}

func (h *Handler) updateReservation(w http.ResponseWriter, r *http.Request) {
	var req reservationPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.Mutator.UpdateReservation(r.Context(), mux.Vars(r)["id"], gateway.ReservationPatch{
		Name:     req.Name,
		Phone:    req.Phone,
		Date:     req.Date,
		People:   req.People,
		Status:   req.Status,
		Notes:    req.Notes,
		Table:    req.Table,
		Duration: req.Duration,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, h.Store.Reservations())
}

func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.Mutator.DeleteReservation(r.Context(), mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Store.Categories())
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var cat domain.Category
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if cat.Name == "" {
		http.Error(w, "Category name is required", http.StatusBadRequest)
		return
	}

	created, err := h.Mutator.CreateCategory(r.Context(), cat)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

type categoryPatchRequest struct {
	Name *string `json:"name"`
	Sort *int    `json:"sort"`
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.Mutator.UpdateCategory(r.Context(), mux.Vars(r)["id"], gateway.CategoryPatch{
		Name: req.Name,
		Sort: req.Sort,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, h.Store.Categories())
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Mutator.DeleteCategory(r.Context(), mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Store.MenuItems())
}

type menuItemRequest struct {
	Name      string  `json:"name"`
	Desc      string  `json:"desc"`
	Price     float64 `json:"price"`
	Img       string  `json:"img"`
	CatID     string  `json:"catId"`
	Available bool    `json:"available"`
	Fresh     bool    `json:"fresh"`
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Item name is required", http.StatusBadRequest)
		return
	}

	created, err := h.Mutator.CreateMenuItem(r.Context(), mutate.MenuItemInput{
		Name:      req.Name,
		Desc:      req.Desc,
		Price:     req.Price,
		Img:       req.Img,
		CatID:     req.CatID,
		Available: req.Available,
		Fresh:     req.Fresh,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

type menuItemPatchRequest struct {
	Name      *string  `json:"name"`
	Desc      *string  `json:"desc"`
	Price     *float64 `json:"price"`
	Img       *string  `json:"img"`
	CatID     *string  `json:"catId"`
	Available *bool    `json:"available"`
	Fresh     *bool    `json:"fresh"`
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.Mutator.UpdateMenuItem(r.Context(), mux.Vars(r)["id"], gateway.MenuItemPatch{
		Name:      req.Name,
		Desc:      req.Desc,
		Price:     req.Price,
		Img:       req.Img,
		CatID:     req.CatID,
		Available: req.Available,
		Fresh:     req.Fresh,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, h.Store.MenuItems())
}

// uploadMenuItemImage stores the image inline as a data URI, so the item
// row stays self-contained and no file server is needed.
func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	mime := header.Header.Get("Content-Type")
	if !allowedTypes[mime] {
		http.Error(w, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	img := domain.EncodeImage(data, mime)
	err = h.Mutator.UpdateMenuItem(r.Context(), mux.Vars(r)["id"], gateway.MenuItemPatch{Img: &img})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, map[string]string{"img": img})
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Mutator.DeleteMenuItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Store.Notifications())
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	h.Mutator.MarkNotificationRead(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	h.Mutator.MarkAllNotificationsRead()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	started := h.Sync.Trigger("manual")
	writeJSON(w, map[string]bool{"started": started})
}

func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	ch := make(chan events.Event, 16)
	cancel := h.Bus.SubscribeAll(func(ev events.Event) {
		select {
		case ch <- ev:
		default:
		}
	})
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, data)
			flusher.Flush()
		}
	}
}
