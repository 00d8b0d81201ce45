package models

type Doctor struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Specialty string `bson:"specialty"`
	PhotoURL  string `bson:"photoUrl,omitempty"`
	TimeModel `bson:",inline"`
}
