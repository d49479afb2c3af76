package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/stylestore/app/models"
	"github.com/shashiranjanraj/stylestore/pkg/event"
	"github.com/shashiranjanraj/stylestore/pkg/kvstore"
	"github.com/shashiranjanraj/stylestore/pkg/logger"
	"github.com/shashiranjanraj/stylestore/pkg/metrics"
)

// CartService owns the active cart and the order history. It is the only
// writer of the "cart" and "orders" store keys and the only place order
// subtotals are computed.
//
// Cart and order state is mutated in memory first and persisted after every
// mutation. For ordinary cart edits persistence is best-effort: a failed
// write is logged and surfaced as a store.persist_failed event, never an
// error to the caller. CreateOrder is the exception — it either records the
// order and empties the cart, or does neither.
type CartService struct {
	mu     sync.Mutex
	store  kvstore.Store
	lines  []models.CartLine
	orders []models.Order
}

// NewCartService restores any persisted cart and order history from store.
// Unreadable state degrades to empty collections with a warning; a missing
// key just means nothing was saved yet.
func NewCartService(store kvstore.Store) *CartService {
	s := &CartService{store: store}

	if _, err := store.Get(kvstore.KeyCart, &s.lines); err != nil {
		logger.Warn("cart: could not restore cart", "error", err)
		s.lines = nil
	}
	if _, err := store.Get(kvstore.KeyOrders, &s.orders); err != nil {
		logger.Warn("cart: could not restore orders", "error", err)
		s.orders = nil
	}

	return s
}

// AddItem puts quantity units of product in the cart. Adding a product
// already present increments its line instead of duplicating it; the line
// keeps the product fields as they are right now. Stock flags are not
// checked here — that is a display concern.
func (s *CartService) AddItem(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == product.ID {
			s.lines[i].Quantity += quantity
			s.persistCart()
			metrics.CartMutations.WithLabelValues("add").Inc()
			return
		}
	}

	s.lines = append(s.lines, models.CartLine{Product: product, Quantity: quantity})
	s.persistCart()
	metrics.CartMutations.WithLabelValues("add").Inc()
}

// RemoveItem deletes the line for productID; removing an absent product is
// a no-op.
func (s *CartService) RemoveItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
	s.persistCart()
	metrics.CartMutations.WithLabelValues("remove").Inc()
}

// UpdateQuantity replaces the quantity of an existing line. A quantity of
// zero or less removes the line instead of persisting a non-positive value;
// an unknown productID is a no-op and never inserts.
func (s *CartService) UpdateQuantity(productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		s.persistCart()
		metrics.CartMutations.WithLabelValues("update").Inc()
		return
	}

	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines[i].Quantity = quantity
			s.persistCart()
			break
		}
	}
	metrics.CartMutations.WithLabelValues("update").Inc()
}

// Clear empties the cart.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persistCart()
	metrics.CartMutations.WithLabelValues("clear").Inc()
}

// Lines returns a copy of the cart in insertion order.
func (s *CartService) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLine(nil), s.lines...)
}

// Subtotal is Σ(price × quantity) over the current lines, computed fresh on
// every call.
func (s *CartService) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotalOf(s.lines)
}

// ItemCount is Σ(quantity) over the current lines — distinct from the
// number of lines.
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// CreateOrder snapshots the cart into a new completed order, appends it to
// the order history, empties the cart and returns the generated order ID.
//
// The operation is atomic from the caller's perspective: the new order list
// is persisted first, then the emptied cart; if the cart write fails the
// orders key is restored before returning, so an order-recorded-but-cart-
// kept state is never observable.
func (s *CartService) CreateOrder(payment models.PaymentSummary, shipping models.ShippingSummary) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := models.Order{
		ID:       uuid.NewString(),
		Items:    append([]models.CartLine(nil), s.lines...),
		Subtotal: subtotalOf(s.lines),
		Date:     time.Now().UTC(),
		Status:   models.StatusCompleted,
		Payment:  payment,
		Shipping: shipping,
	}

	newOrders := make([]models.Order, 0, len(s.orders)+1)
	newOrders = append(newOrders, s.orders...)
	newOrders = append(newOrders, order)

	if err := s.store.Put(kvstore.KeyOrders, newOrders); err != nil {
		return "", fmt.Errorf("cart: record order: %w", err)
	}
	if err := s.store.Put(kvstore.KeyCart, []models.CartLine{}); err != nil {
		if rbErr := s.store.Put(kvstore.KeyOrders, s.orders); rbErr != nil {
			logger.Error("cart: rollback of orders key failed", "error", rbErr)
		}
		return "", fmt.Errorf("cart: clear cart after order: %w", err)
	}

	s.orders = newOrders
	s.lines = nil

	metrics.OrdersCreated.Inc()
	event.Fire(event.OrderCreated, order)

	return order.ID, nil
}

// Order looks up an order by ID. ok is false for unknown identifiers —
// stale invoice links are normal navigation, not failures.
func (s *CartService) Order(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}

// Orders returns a copy of the order history, oldest first.
func (s *CartService) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Order(nil), s.orders...)
}

func (s *CartService) removeLocked(productID int) {
	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// persistCart writes the cart best-effort. The in-memory view stays
// authoritative on failure; the host is notified through the log and the
// persist-failed event rather than an error on the mutation path.
func (s *CartService) persistCart() {
	lines := s.lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	if err := s.store.Put(kvstore.KeyCart, lines); err != nil {
		logger.Warn("cart: persist failed", "key", kvstore.KeyCart, "error", err)
		event.Fire(event.PersistFailed, err)
	}
}

func subtotalOf(lines []models.CartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
