package requests

type IssueToken struct {
	Email string `json:"email" validate:"required,email"`
}
