package requests

type CreateTreatment struct {
	Name  string   `json:"name" validate:"required"`
	Price int64    `json:"price" validate:"required,gt=0"`
	Slots []string `json:"slots" validate:"required,min=1"`
}
