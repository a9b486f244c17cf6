package dto

// LoginResponse carries the access token issued on a successful login. The
// refresh token travels separately, in an HTTP-only cookie.
type LoginResponse struct {
	Token string `json:"token"`
}

// RefreshTokenResponse carries the new access token issued when a refresh
// token is rotated.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}
