package models

import "time"

const RoleCustomer = "customer"

// User is an account of the stub backend.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// Claims returns the fields carried in the user's token.
func (u User) Claims() Claims {
	return Claims{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
