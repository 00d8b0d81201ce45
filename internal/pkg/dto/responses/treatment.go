package responses

// TreatmentAvailability is one entry of the bulk availability read: the
// treatment with only its remaining (unbooked) slots for the requested date.
type TreatmentAvailability struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price int64    `json:"price"`
	Slots []string `json:"slots"`
}

type TreatmentSpecialty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Treatment struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price int64    `json:"price"`
	Slots []string `json:"slots"`
}
