package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mezze/internal/cart"
	"mezze/internal/domain"
	"mezze/internal/events"
	"mezze/internal/localstore"
	"mezze/internal/mutate"
	"mezze/internal/scheduler"
	"mezze/public-app/internal/service"
)

type Handler struct {
	Store   *localstore.Store
	Cart    *cart.Service
	Mutator *mutate.Mutator
	Sync    *scheduler.Manager
	Bus     *events.Bus
	QR      service.QRGenerator
	BaseURL string
}

func NewHandler(store *localstore.Store, cartSvc *cart.Service, mutator *mutate.Mutator, sync *scheduler.Manager, bus *events.Bus, qr service.QRGenerator, baseURL string) *Handler {
	return &Handler{
		Store:   store,
		Cart:    cartSvc,
		Mutator: mutator,
		Sync:    sync,
		Bus:     bus,
		QR:      qr,
		BaseURL: baseURL,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}/increment", h.incrementCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}/decrement", h.decrementCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{id}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/rate", h.rateItem).Methods("POST")
	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")

	r.HandleFunc("/api/sync", h.triggerSync).Methods("POST")
	r.HandleFunc("/api/events", h.streamEvents).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "public-app",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Store.Categories())
}

// getMenu serves the cached catalog. ?category= narrows to one category;
// image refs are resolved to absolute URLs so the page can use them as-is.
func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	catID := r.URL.Query().Get("category")

	items := h.Store.MenuItems()
	out := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if catID != "" && item.CatID != catID {
			continue
		}
		item.Img = domain.ResolveImage(item.Img, h.BaseURL)
		out = append(out, item)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

type cartResponse struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

func (h *Handler) writeCart(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse{
		Lines: h.Cart.Lines(),
		Total: h.Cart.Total(),
		Count: h.Cart.Count(),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if item.ID == "" {
		http.Error(w, "Item id is required", http.StatusBadRequest)
		return
	}
	h.Cart.Add(item)
	h.writeCart(w)
}

func (h *Handler) incrementCartItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.Increment(mux.Vars(r)["id"])
	h.writeCart(w)
}

func (h *Handler) decrementCartItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.Decrement(mux.Vars(r)["id"])
	h.writeCart(w)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.Remove(mux.Vars(r)["id"])
	h.writeCart(w)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}

type checkoutRequest struct {
	OrderName string `json:"orderName"`
	Phone     string `json:"phone"`
	Table     string `json:"table"`
	Notes     string `json:"notes"`
}

// checkout turns the cart into an order. The cart is cleared only after
// the backend confirms, so a failed checkout leaves it intact.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	lines := h.Cart.Lines()
	if len(lines) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			ID:    line.ID,
			Name:  line.Name,
			Price: line.Price,
			Qty:   line.Qty,
		})
	}

	order, err := h.Mutator.CreateOrder(r.Context(), mutate.CheckoutInput{
		OrderName: req.OrderName,
		Phone:     req.Phone,
		Table:     req.Table,
		Notes:     req.Notes,
		Items:     items,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	h.Cart.Clear()

	type checkoutResponse struct {
		domain.Order
		QRCode string `json:"qrCode"`
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(checkoutResponse{
		Order:  order,
		QRCode: fmt.Sprintf("/api/orders/%s/qrcode", order.ID),
	})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	qrCode, err := h.QR.Generate(id)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

type rateRequest struct {
	ItemID string `json:"itemId"`
	Stars  int    `json:"stars"`
}

func (h *Handler) rateItem(w http.ResponseWriter, r *http.Request) {
	var req rateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ItemID == "" {
		http.Error(w, "Item id is required", http.StatusBadRequest)
		return
	}

	err := h.Mutator.RateItem(r.Context(), req.ItemID, req.Stars)
	if errors.Is(err, mutate.ErrAlreadyRated) {
		http.Error(w, "Item already rated", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reservationRequest struct {
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Date     time.Time `json:"date"`
	People   int       `json:"people"`
	Kind     string    `json:"kind"`
	Table    string    `json:"table"`
	Notes    string    `json:"notes"`
	Duration int       `json:"duration"`
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Date.IsZero() {
		http.Error(w, "Name and date are required", http.StatusBadRequest)
		return
	}

	reservation, err := h.Mutator.CreateReservation(r.Context(), mutate.ReservationInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Date:     req.Date,
		People:   req.People,
		Kind:     req.Kind,
		Table:    req.Table,
		Notes:    req.Notes,
		Duration: req.Duration,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(reservation)
}

// triggerSync asks the scheduler for an immediate pass. A pass already in
// flight absorbs the request, mirroring the single-flight rule.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	started := h.Sync.Trigger("manual")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"started": started})
}

// streamEvents republishes bus signals as server-sent events so pages can
// re-read the cache when something changes.
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

	// Buffered so a slow consumer drops signals instead of blocking the bus.
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
