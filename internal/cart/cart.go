// Package cart is the storefront cart as an explicit store object: selected
// products, quantities and variant picks, persisted through an injected
// key-value adapter instead of ambient globals. It models single-user,
// single-browser-tab state and does no cross-request locking.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/don-Savage01/universe-ofhair-sub001/internal/models"
)

// ErrOutOfStockItems blocks checkout while the cart holds an item whose
// product went out of stock since it was added.
var ErrOutOfStockItems = errors.New("cart contains out-of-stock items")

// Storage is the persistence adapter: one opaque value under one key, the
// shape of browser local storage.
type Storage interface {
	Load() ([]byte, error) // nil, nil on empty
	Save(data []byte) error
	Clear() error
}

// Store holds the live cart and writes through to storage after every
// mutation.
type Store struct {
	storage Storage
	items   []models.CartItem
}

// NewStore builds a cart over the adapter, restoring whatever it held.
// A corrupt snapshot starts the cart empty rather than failing.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	if data, err := storage.Load(); err == nil && len(data) > 0 {
		if err := json.Unmarshal(data, &s.items); err != nil {
			s.items = nil
		}
	}
	return s
}

func sameLine(a models.CartItem, productID string, v models.VariantSelection) bool {
	return a.ProductID == productID && a.Variant == v
}

// Add puts an item in the cart, capturing its price at add time. Adding a
// product+variant already present bumps the quantity instead of duplicating
// the line.
func (s *Store) Add(item models.CartItem) error {
	if item.ProductID == "" {
		return errors.New("cart item needs a product id")
	}
	if item.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", item.Quantity)
	}

	for i := range s.items {
		if sameLine(s.items[i], item.ProductID, item.Variant) {
			s.items[i].Quantity += item.Quantity
			return s.persist()
		}
	}

	s.items = append(s.items, item)
	return s.persist()
}

// UpdateQuantity sets the quantity of an existing line.
func (s *Store) UpdateQuantity(productID string, variant models.VariantSelection, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}

	for i := range s.items {
		if sameLine(s.items[i], productID, variant) {
			s.items[i].Quantity = quantity
			return s.persist()
		}
	}
	return fmt.Errorf("product %s not in cart", productID)
}

// Remove drops a line from the cart.
func (s *Store) Remove(productID string, variant models.VariantSelection) error {
	kept := s.items[:0]
	for _, item := range s.items {
		if !sameLine(item, productID, variant) {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.persist()
}

// Clear empties the cart and its persisted copy.
func (s *Store) Clear() error {
	s.items = nil
	return s.storage.Clear()
}

// Items returns a copy of the current lines.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Sync reconciles the cart against a fresh product snapshot: stale price,
// stock and display fields are overwritten from the current product, and
// lines whose product no longer exists are dropped. Last fetch wins.
func (s *Store) Sync(products []models.Product) error {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID.String()] = p
	}

	kept := s.items[:0]
	for _, item := range s.items {
		p, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		item.Name = p.Name
		item.Price = p.Price
		item.InStock = p.InStock == 1
		if len(p.ImageURLs) > 0 {
			item.ImageURL = p.ImageURLs[0]
		}
		kept = append(kept, item)
	}
	s.items = kept
	return s.persist()
}

// Totals is the payable breakdown for checkout.
type Totals struct {
	Subtotal    float64
	ShippingFee float64
	Total       float64
}

// CheckoutTotals sums price × quantity over the in-stock lines and adds the
// shipping fee. Out-of-stock lines never count toward the payable total, and
// their presence returns ErrOutOfStockItems alongside the totals: checkout
// is blocked until the customer removes them.
func (s *Store) CheckoutTotals(shippingFee float64) (Totals, error) {
	var subtotal float64
	blocked := false
	for _, item := range s.items {
		if !item.InStock {
			blocked = true
			continue
		}
		subtotal += item.Price * float64(item.Quantity)
	}

	totals := Totals{
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		Total:       subtotal + shippingFee,
	}
	if blocked {
		return totals, ErrOutOfStockItems
	}
	return totals, nil
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return err
	}
	return s.storage.Save(data)
}
