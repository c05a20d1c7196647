package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin   = "admin"
	RolePremium = "premium"
)

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email" binding:"required,email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"` // "", "admin" or "premium"
}

// EmailRequest is the body shared by the role and approval PATCH endpoints.
type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}
