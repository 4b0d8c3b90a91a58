package entity

// Entidade: User (perfil retornado por /auth/me)
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// TokenPair é o par de tokens persistido entre sessões
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

func (t TokenPair) IsEmpty() bool {
	return t.AccessToken == "" && t.RefreshToken == ""
}
