package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MarriageDateLayout is the MM-DD-YYYY format reviews store their marriage date in.
const MarriageDateLayout = "01-02-2006"

type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	MarriageDate string             `bson:"marriage_date" json:"marriage_date"`
	Review       string             `bson:"review,omitempty" json:"review,omitempty"`
	Rating       float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	SelfBioID    int                `bson:"selfBioId,omitempty" json:"selfBioId,omitempty"`
	PartnerBioID int                `bson:"partnerBioId,omitempty" json:"partnerBioId,omitempty"`
	ParsedDate   *time.Time         `bson:"parsedDate,omitempty" json:"parsedDate,omitempty"` // only set by the listing
}
