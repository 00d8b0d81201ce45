package responses

type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	PhotoURL  string `json:"photoUrl,omitempty"`
}
