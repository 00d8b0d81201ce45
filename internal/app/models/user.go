package models

import "doctorsportal-service/internal/pkg/constvars"

type User struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Role      string `bson:"role,omitempty"`
	TimeModel `bson:",inline"`
}

func (u *User) IsAdmin() bool {
	return u.Role == constvars.RoleAdmin
}
