package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const StatusApproved = "approved"

type ContactRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email" binding:"required,email"` // requester
	BiodataID string             `bson:"biodataId" json:"biodataId" binding:"required"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Mobile    string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	BioEmail  string             `bson:"bioEmail,omitempty" json:"bioEmail,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
}

type PremiumRequest struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email  string             `bson:"email" json:"email" binding:"required,email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	BioID  int                `bson:"bioId,omitempty" json:"bioId,omitempty"`
	Status string             `bson:"status,omitempty" json:"status,omitempty"`
}

type Favourite struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email             string             `bson:"email" json:"email" binding:"required,email"`
	BiodataID         int                `bson:"biodataId" json:"biodataId" binding:"required"`
	Name              string             `bson:"name,omitempty" json:"name,omitempty"`
	Occupation        string             `bson:"occupation,omitempty" json:"occupation,omitempty"`
	PermanentDivision string             `bson:"permanentDivision,omitempty" json:"permanentDivision,omitempty"`
}
