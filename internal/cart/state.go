package cart

import (
	"github.com/google/uuid"

	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
	"github.com/khaldoun-digital/baytkum-backend/pkg/money"
)

// Line is a single product entry in a cart. The unit price is locked when
// the product is first added and is not refreshed by later adds.
type Line struct {
	ProductID uuid.UUID  `json:"productId"`
	Title     i18n.Text  `json:"title"`
	UnitPrice money.Fils `json:"unitPrice"`
	ImageURL  *string    `json:"imageUrl,omitempty"`
	Qty       int        `json:"qty"`
}

// Total returns the extended price of the line.
func (l Line) Total() money.Fils {
	return l.UnitPrice.Mul(l.Qty)
}

// State holds the cart lines for one session. Lines are unique per product
// and keep insertion order. State is not safe for concurrent use; the store
// serializes access per session.
type State struct {
	Lines []Line `json:"lines"`
}

// find returns the index of the line for productID, or -1.
func (s *State) find(productID uuid.UUID) int {
	for i := range s.Lines {
		if s.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add appends a new line or, when the product is already present, raises
// its quantity while keeping the originally locked price and title.
func (s *State) Add(line Line) {
	if idx := s.find(line.ProductID); idx >= 0 {
		s.Lines[idx].Qty += line.Qty
		return
	}
	s.Lines = append(s.Lines, line)
}

// SetQuantity replaces the quantity of an existing line. It reports whether
// the product was present.
func (s *State) SetQuantity(productID uuid.UUID, qty int) bool {
	idx := s.find(productID)
	if idx < 0 {
		return false
	}
	s.Lines[idx].Qty = qty
	return true
}

// Remove drops the line for productID, preserving the order of the rest.
// It reports whether the product was present.
func (s *State) Remove(productID uuid.UUID) bool {
	idx := s.find(productID)
	if idx < 0 {
		return false
	}
	s.Lines = append(s.Lines[:idx], s.Lines[idx+1:]...)
	return true
}

// Clear empties the cart.
func (s *State) Clear() {
	s.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (s *State) IsEmpty() bool {
	return len(s.Lines) == 0
}

// ItemCount sums the quantities across all lines.
func (s *State) ItemCount() int {
	var n int
	for i := range s.Lines {
		n += s.Lines[i].Qty
	}
	return n
}

// Total sums the extended prices across all lines.
func (s *State) Total() money.Fils {
	var total money.Fils
	for i := range s.Lines {
		total += s.Lines[i].Total()
	}
	return total
}

// Copy returns a deep copy so callers can read a snapshot without holding
// the session lock.
func (s *State) Copy() State {
	if len(s.Lines) == 0 {
		return State{}
	}
	lines := make([]Line, len(s.Lines))
	copy(lines, s.Lines)
	return State{Lines: lines}
}
