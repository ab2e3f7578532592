// Package cart implements the local, in-memory cart: the list of intended
// purchases a visitor builds before (and independently of) authentication.
// It never touches the network; server-side cart materialization happens in
// the checkout service.
package cart

// Line is one local cart position. Lines are keyed by FoodID: adding an
// already-present food increments the quantity instead of duplicating.
type Line struct {
	FoodID    string
	Name      string
	UnitPrice float64
	ImageURL  string
	Quantity  int
}

// Store holds the cart lines in insertion order and a total that is
// recomputed on every mutation, so it can never drift from the lines.
type Store struct {
	lines []Line
	total float64
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) indexOf(foodID string) int {
	for i := range s.lines {
		if s.lines[i].FoodID == foodID {
			return i
		}
	}
	return -1
}

func (s *Store) recompute() {
	total := 0.0
	for _, l := range s.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	s.total = total
}

// Add inserts a new line or increments the quantity of an existing one.
// Quantities below 1 are treated as 1.
func (s *Store) Add(foodID, name string, unitPrice float64, imageURL string, qty int) {
	if qty < 1 {
		qty = 1
	}
	if i := s.indexOf(foodID); i >= 0 {
		s.lines[i].Quantity += qty
	} else {
		s.lines = append(s.lines, Line{
			FoodID:    foodID,
			Name:      name,
			UnitPrice: unitPrice,
			ImageURL:  imageURL,
			Quantity:  qty,
		})
	}
	s.recompute()
}

// UpdateQuantity sets the quantity of an existing line. Quantity floors at
// 1: values below that are rejected silently, removal is its own operation.
func (s *Store) UpdateQuantity(foodID string, qty int) {
	if qty < 1 {
		return
	}
	if i := s.indexOf(foodID); i >= 0 {
		s.lines[i].Quantity = qty
		s.recompute()
	}
}

// Remove deletes the line if present.
func (s *Store) Remove(foodID string) {
	if i := s.indexOf(foodID); i >= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
		s.recompute()
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.lines = nil
	s.total = 0
}

// Lines returns a copy of the current lines in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the sum of UnitPrice*Quantity over all lines.
func (s *Store) Total() float64 {
	return s.total
}

// ItemCount is the number of distinct lines, not the sum of quantities.
// The cart badge shows line count.
func (s *Store) ItemCount() int {
	return len(s.lines)
}

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool {
	return len(s.lines) == 0
}
