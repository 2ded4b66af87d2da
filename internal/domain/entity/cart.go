package entity

// CartLine is one distinct (dish, taste, note) combination in a cart, with
// its own quantity and payment method. Two additions agreeing on all three
// identity fields merge into one line; any difference keeps them separate.
type CartLine struct {
	Dish                  Dish          `json:"dish"`
	Quantity              int           `json:"quantity"`
	SelectedPaymentMethod PaymentMethod `json:"selectedPaymentMethod"`
	SelectedTaste         string        `json:"selectedTaste,omitempty"`
	Note                  string        `json:"note,omitempty"`
}

// lineKey is the composite identity of a cart line. Lookup and merge go
// through this key, never through slice positions or pointer equality.
type lineKey struct {
	dishID string
	taste  string
	note   string
}

func (l *CartLine) key() lineKey {
	return lineKey{dishID: l.Dish.ID, taste: l.SelectedTaste, note: l.Note}
}

// CartTotals aggregates a cart by payment method. A line contributes to
// exactly one of the two buckets, decided by its current method.
type CartTotals struct {
	TotalMoney  float64 `json:"totalMoney"`
	TotalChores int     `json:"totalChores"`
	Count       int     `json:"count"`
}

// CartLines is the in-memory cart of the active session.
type CartLines []CartLine

// Add merges the dish into the cart: an existing line with the same
// (dish, taste, note) identity gains one unit, otherwise a new line with
// quantity 1 and the dish's default payment method is appended.
func (lines CartLines) Add(dish Dish, taste, note string) CartLines {
	key := lineKey{dishID: dish.ID, taste: taste, note: note}
	for i := range lines {
		if lines[i].key() == key {
			lines[i].Quantity++

			return lines
		}
	}

	return append(lines, CartLine{
		Dish:                  dish,
		Quantity:              1,
		SelectedPaymentMethod: dish.DefaultPaymentMethod(),
		SelectedTaste:         taste,
		Note:                  note,
	})
}

// UpdateQuantity adds delta to the matching line's quantity, clamping at
// zero and dropping the line once it reaches zero. A missing key is a
// silent no-op.
func (lines CartLines) UpdateQuantity(dishID, taste, note string, delta int) CartLines {
	key := lineKey{dishID: dishID, taste: taste, note: note}
	for i := range lines {
		if lines[i].key() != key {
			continue
		}

		qty := lines[i].Quantity + delta
		if qty <= 0 {
			return append(lines[:i], lines[i+1:]...)
		}
		lines[i].Quantity = qty

		return lines
	}

	return lines
}

// SetPaymentMethod overwrites the payment method of the matching line only.
// Whether the dish supports the method is the caller's concern; the cart
// engine just records the selection.
func (lines CartLines) SetPaymentMethod(dishID, taste, note string, method PaymentMethod) CartLines {
	key := lineKey{dishID: dishID, taste: taste, note: note}
	for i := range lines {
		if lines[i].key() == key {
			lines[i].SelectedPaymentMethod = method

			break
		}
	}

	return lines
}

// Find returns the line with the given identity, or nil.
func (lines CartLines) Find(dishID, taste, note string) *CartLine {
	key := lineKey{dishID: dishID, taste: taste, note: note}
	for i := range lines {
		if lines[i].key() == key {
			return &lines[i]
		}
	}

	return nil
}

// Totals derives the dual-currency aggregate of the cart. Pure, no side
// effects: money lines sum price*quantity, housework lines sum
// chorePrice*quantity, and Count sums quantities regardless of method.
func (lines CartLines) Totals() CartTotals {
	var totals CartTotals
	for i := range lines {
		line := &lines[i]
		if line.SelectedPaymentMethod == PaymentBalance {
			totals.TotalMoney += line.Dish.Price * float64(line.Quantity)
		} else {
			totals.TotalChores += line.Dish.ChorePrice * line.Quantity
		}
		totals.Count += line.Quantity
	}

	return totals
}

// Clone returns an independent copy so callers can hand carts across
// API boundaries without sharing the backing array.
func (lines CartLines) Clone() CartLines {
	if lines == nil {
		return nil
	}
	cloned := make(CartLines, len(lines))
	copy(cloned, lines)

	return cloned
}
