package entity

import "math"

// User is a family member account. The household shares one trusted device,
// so the password is stored as a plain shared secret and compared by exact
// match at login.
type User struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Password         string  `json:"password,omitempty"`
	Balance          float64 `json:"balance"`
	HouseworkCredits int     `json:"houseworkCredits"`
	Role             Role    `json:"role"`
	Avatar           string  `json:"avatar,omitempty"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanAfford reports whether both balances cover the given cart totals.
func (u *User) CanAfford(totals CartTotals) bool {
	return u.Balance >= totals.TotalMoney && u.HouseworkCredits >= totals.TotalChores
}

// RoundBalance normalizes a monetary balance to one decimal place, the
// precision every balance is displayed and persisted at.
func RoundBalance(v float64) float64 {
	return math.Round(v*10) / 10
}
