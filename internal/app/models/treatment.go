package models

// Treatment is a catalog entry. Slots is the full daily capacity in display
// order; the slot set never shrinks implicitly, only bookings reduce
// availability.
type Treatment struct {
	ID    string   `bson:"_id,omitempty"`
	Name  string   `bson:"name"`
	Price int64    `bson:"price"`
	Slots []string `bson:"slots"`
}
