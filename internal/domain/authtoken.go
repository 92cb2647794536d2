package domain

// AuthToken records a bearer token issued at login. A token stays on record
// until it expires; logout flips Valid so the token fails verification even
// though its signature and expiry are still good.
type AuthToken struct {
	Token string `json:"token"`
	Valid bool   `json:"valid"`
}
