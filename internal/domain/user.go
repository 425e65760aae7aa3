package domain

// User is created lazily on first successful login for a mobile number.
type User struct {
	ID     string `json:"id"`
	Mobile string `json:"mobile"`
}
