package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Biodata struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BioID                 int                `bson:"bioId" json:"bioId"`     // assigned by the server, never by the caller
	BioType               string             `bson:"bioType" json:"bioType"` // "Male" / "Female", matched case-insensitively in counts
	Name                  string             `bson:"name" json:"name"`
	Image                 string             `bson:"image,omitempty" json:"image,omitempty"`
	DateOfBirth           string             `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Height                string             `bson:"height,omitempty" json:"height,omitempty"`
	Weight                string             `bson:"weight,omitempty" json:"weight,omitempty"`
	Age                   int                `bson:"age" json:"age"`
	Occupation            string             `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Race                  string             `bson:"race,omitempty" json:"race,omitempty"`
	FathersName           string             `bson:"fathersName,omitempty" json:"fathersName,omitempty"`
	MothersName           string             `bson:"mothersName,omitempty" json:"mothersName,omitempty"`
	PermanentDivision     string             `bson:"permanentDivision,omitempty" json:"permanentDivision,omitempty"`
	PresentDivision       string             `bson:"presentDivision,omitempty" json:"presentDivision,omitempty"`
	ExpectedPartnerAge    int                `bson:"expectedPartnerAge,omitempty" json:"expectedPartnerAge,omitempty"`
	ExpectedPartnerHeight string             `bson:"expectedPartnerHeight,omitempty" json:"expectedPartnerHeight,omitempty"`
	ExpectedPartnerWeight string             `bson:"expectedPartnerWeight,omitempty" json:"expectedPartnerWeight,omitempty"`
	Email                 string             `bson:"email" json:"email"`
	Mobile                string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
}

// CreateBiodataRequest is the body of POST /biodatas. bioId is not accepted.
type CreateBiodataRequest struct {
	BioType               string `json:"bioType"`
	Name                  string `json:"name" binding:"required"`
	Image                 string `json:"image"`
	DateOfBirth           string `json:"dateOfBirth"`
	Height                string `json:"height"`
	Weight                string `json:"weight"`
	Age                   int    `json:"age" binding:"gte=0"`
	Occupation            string `json:"occupation"`
	Race                  string `json:"race"`
	FathersName           string `json:"fathersName"`
	MothersName           string `json:"mothersName"`
	PermanentDivision     string `json:"permanentDivision"`
	PresentDivision       string `json:"presentDivision"`
	ExpectedPartnerAge    int    `json:"expectedPartnerAge" binding:"gte=0"`
	ExpectedPartnerHeight string `json:"expectedPartnerHeight"`
	ExpectedPartnerWeight string `json:"expectedPartnerWeight"`
	Email                 string `json:"email" binding:"omitempty,email"`
	Mobile                string `json:"mobile"`
}

func (r CreateBiodataRequest) Biodata() Biodata {
	return Biodata{
		BioType:               r.BioType,
		Name:                  r.Name,
		Image:                 r.Image,
		DateOfBirth:           r.DateOfBirth,
		Height:                r.Height,
		Weight:                r.Weight,
		Age:                   r.Age,
		Occupation:            r.Occupation,
		Race:                  r.Race,
		FathersName:           r.FathersName,
		MothersName:           r.MothersName,
		PermanentDivision:     r.PermanentDivision,
		PresentDivision:       r.PresentDivision,
		ExpectedPartnerAge:    r.ExpectedPartnerAge,
		ExpectedPartnerHeight: r.ExpectedPartnerHeight,
		ExpectedPartnerWeight: r.ExpectedPartnerWeight,
		Email:                 r.Email,
		Mobile:                r.Mobile,
	}
}

// UpdateBiodataRequest is the partial body of PATCH /biodatas/:bioId.
// Only fields present in the request end up in the $set document.
type UpdateBiodataRequest struct {
	BioType               *string `json:"bioType,omitempty"`
	Name                  *string `json:"name,omitempty"`
	Image                 *string `json:"image,omitempty"`
	DateOfBirth           *string `json:"dateOfBirth,omitempty"`
	Height                *string `json:"height,omitempty"`
	Weight                *string `json:"weight,omitempty"`
	Age                   *int    `json:"age,omitempty" binding:"omitempty,gte=0"`
	Occupation            *string `json:"occupation,omitempty"`
	Race                  *string `json:"race,omitempty"`
	FathersName           *string `json:"fathersName,omitempty"`
	MothersName           *string `json:"mothersName,omitempty"`
	PermanentDivision     *string `json:"permanentDivision,omitempty"`
	PresentDivision       *string `json:"presentDivision,omitempty"`
	ExpectedPartnerAge    *int    `json:"expectedPartnerAge,omitempty" binding:"omitempty,gte=0"`
	ExpectedPartnerHeight *string `json:"expectedPartnerHeight,omitempty"`
	ExpectedPartnerWeight *string `json:"expectedPartnerWeight,omitempty"`
	Email                 *string `json:"email,omitempty" binding:"omitempty,email"`
	Mobile                *string `json:"mobile,omitempty"`
}

// Fields returns the provided fields keyed by their document names.
func (r UpdateBiodataRequest) Fields() map[string]any {
	fields := map[string]any{}
	setString := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	setInt := func(key string, v *int) {
		if v != nil {
			fields[key] = *v
		}
	}
	setString("bioType", r.BioType)
	setString("name", r.Name)
	setString("image", r.Image)
	setString("dateOfBirth", r.DateOfBirth)
	setString("height", r.Height)
	setString("weight", r.Weight)
	setInt("age", r.Age)
	setString("occupation", r.Occupation)
	setString("race", r.Race)
	setString("fathersName", r.FathersName)
	setString("mothersName", r.MothersName)
	setString("permanentDivision", r.PermanentDivision)
	setString("presentDivision", r.PresentDivision)
	setInt("expectedPartnerAge", r.ExpectedPartnerAge)
	setString("expectedPartnerHeight", r.ExpectedPartnerHeight)
	setString("expectedPartnerWeight", r.ExpectedPartnerWeight)
	setString("email", r.Email)
	setString("mobile", r.Mobile)
	return fields
}
