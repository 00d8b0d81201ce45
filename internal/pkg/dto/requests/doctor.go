package requests

type CreateDoctor struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty" validate:"required"`
	// PhotoBase64 is an optional base64-encoded image stored in object storage.
	PhotoBase64    string `json:"photo,omitempty"`
	PhotoExtension string `json:"photoExtension,omitempty"`
}
