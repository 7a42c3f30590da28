package user

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	BalanceMinutes int    `json:"balance_minutes"`
	BalanceHours   string `json:"balance_hours"`
}
