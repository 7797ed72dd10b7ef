package models

// User represents a wardrobe owner as stored
type User struct {
	Username     string
	Name         string
	PasswordHash string
	Streak       int
	LastLogin    string // dd-MM-yyyy, empty before the first login
	DarkMode     bool
}

// SignUpRequest represents the request body for creating a user
type SignUpRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the response after a successful login
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Streak   int    `json:"streak"`
}

// ProfileResponse represents the profile of the active user
type ProfileResponse struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Streak      int    `json:"streak"`
	ItemCount   int    `json:"itemCount"`
	OutfitCount int    `json:"outfitCount"`
	DarkMode    bool   `json:"darkMode"`
}

// DarkModeRequest represents the request body for toggling the theme
type DarkModeRequest struct {
	Enabled bool `json:"enabled"`
}
