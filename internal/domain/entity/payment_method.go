package entity

// PaymentMethod selects which family currency a cart line is charged to.
type PaymentMethod string

const (
	// PaymentBalance charges the member's monetary balance.
	PaymentBalance PaymentMethod = "BALANCE"
	// PaymentHousework charges the member's housework credits.
	PaymentHousework PaymentMethod = "HOUSEWORK"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentBalance, PaymentHousework:
		return true
	default:
		return false
	}
}
