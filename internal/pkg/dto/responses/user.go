package responses

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type AdminCheck struct {
	IsAdmin bool `json:"isAdmin"`
}

type AccessToken struct {
	AccessToken string `json:"accessToken"`
}
