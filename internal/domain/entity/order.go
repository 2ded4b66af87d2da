package entity

// OrderStatus tracks an order through the kitchen workflow.
type OrderStatus string

const (
	// StatusPending means the order is waiting for the cook to pick it up.
	StatusPending OrderStatus = "PENDING"
	// StatusCooking means the dish is being prepared.
	StatusCooking OrderStatus = "COOKING"
	// StatusCompleted means the dish has been served. Terminal.
	StatusCompleted OrderStatus = "COMPLETED"
	// StatusCancelled is a reserved terminal state. No workflow transition
	// produces it; orders carrying it from older data still load and render.
	StatusCancelled OrderStatus = "CANCELLED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCooking, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Next advances the status one step along the kitchen workflow:
// PENDING -> COOKING -> COMPLETED. Both terminal states map to themselves,
// so advancing an already-served or cancelled order is an idempotent no-op.
func (s OrderStatus) Next() OrderStatus {
	switch s {
	case StatusPending:
		return StatusCooking
	case StatusCooking:
		return StatusCompleted
	default:
		return s
	}
}

// Order is an immutable snapshot of one cart line taken at checkout time.
// Dish display fields are copied by value so later menu edits never rewrite
// order history; only Status changes after creation, and only through the
// admin workflow.
type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	UserName      string        `json:"userName"`
	DishID        string        `json:"dishId"`
	DishName      string        `json:"dishName"`
	DishImage     string        `json:"dishImage"`
	Quantity      int           `json:"quantity"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TotalCost     float64       `json:"totalCost"`
	Status        OrderStatus   `json:"status"`
	Timestamp     int64         `json:"timestamp"`
	SelectedTaste string        `json:"selectedTaste,omitempty"`
	Note          string        `json:"note,omitempty"`
}

// VisibleTo reports whether the viewer may see this order: owners see their
// own, admins see everything.
func (o *Order) VisibleTo(viewer *User) bool {
	return viewer.IsAdmin() || o.UserID == viewer.ID
}
