package cart

import (
	"fmt"
	"strings"
	"sync"

	"curaone-backend/internal/models"
)

// Message shown when a referral code is accepted. The code is informational
// only; totals are computed from item prices alone, matching the storefront
// behavior the API replaced.
const ReferralMessage = "10% extra discount applied."

// Item is a catalog price snapshot taken at add time. Later catalog changes
// do not touch items already in the cart.
type Item struct {
	ID            string  `json:"id"` // testID-lab composite
	TestName      string  `json:"test_name"`
	Lab           string  `json:"lab"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
}

// Cart holds one user's selected lab tests. Totals are recomputed on every
// read, never cached.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

// Add appends a snapshot of the given lab's offer. The original price comes
// from the test's price list; when the lab is not listed there the paid price
// doubles as the original. Adding the same test and lab twice yields two
// items.
func (c *Cart) Add(test models.LabTest, lab string, price float64) Item {
	original := price
	for _, p := range test.Prices {
		if p.Lab == lab {
			original = p.OriginalPrice
			break
		}
	}

	item := Item{
		ID:            fmt.Sprintf("%d-%s", test.ID, lab),
		TestName:      test.Name,
		Lab:           lab,
		Price:         price,
		OriginalPrice: original,
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
	return item
}

// Remove drops the first item with the given composite id. Reports whether
// anything was removed.
func (c *Cart) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of item prices in USD.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum float64
	for _, item := range c.items {
		sum += item.Price
	}
	return sum
}

// TotalSavings is the sum of per-item discounts in USD.
func (c *Cart) TotalSavings() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum float64
	for _, item := range c.items {
		sum += item.OriginalPrice - item.Price
	}
	return sum
}

// ValidReferralCode accepts any non-empty code after trimming.
func ValidReferralCode(code string) bool {
	return strings.TrimSpace(code) != ""
}

// Registry hands out one cart per user. Carts live in memory for the session
// and are not persisted.
type Registry struct {
	mu    sync.Mutex
	carts map[uint64]*Cart
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[uint64]*Cart)}
}

func (r *Registry) Get(userID uint64) *Cart {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[userID]
	if !ok {
		c = &Cart{}
		r.carts[userID] = c
	}
	return c
}
