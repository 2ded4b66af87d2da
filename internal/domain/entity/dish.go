package entity

// Dish is a menu item priced in both family currencies. A dish must support
// at least one payment method to be orderable; admin commands enforce this
// before a dish is saved.
type Dish struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	ChorePrice        int      `json:"chorePrice"`
	SupportsBalance   bool     `json:"supportsBalance"`
	SupportsHousework bool     `json:"supportsHousework"`
	ImageURL          string   `json:"imageUrl"`
	Category          string   `json:"category"`
	Ingredients       []string `json:"ingredients"`
	Steps             []string `json:"steps"`
	CookingTime       string   `json:"cookingTime"`
	Difficulty        int      `json:"difficulty"`
	TasteOptions      []string `json:"tasteOptions,omitempty"`
}

// Payable reports whether the dish supports at least one payment method.
func (d *Dish) Payable() bool {
	return d.SupportsBalance || d.SupportsHousework
}

// Supports reports whether the dish accepts the given payment method.
func (d *Dish) Supports(method PaymentMethod) bool {
	switch method {
	case PaymentBalance:
		return d.SupportsBalance
	case PaymentHousework:
		return d.SupportsHousework
	default:
		return false
	}
}

// DefaultPaymentMethod is the method preselected when the dish is first
// added to a cart: balance when supported, housework credits otherwise.
func (d *Dish) DefaultPaymentMethod() PaymentMethod {
	if d.SupportsBalance {
		return PaymentBalance
	}

	return PaymentHousework
}
