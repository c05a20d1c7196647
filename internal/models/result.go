package models

// Write outcomes returned to clients. They mirror the shape the web client
// already reads (insertedId, modifiedCount, deletedCount) without leaking
// driver types.

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// BiodataInsertResult also reports the identifier the server assigned.
type BiodataInsertResult struct {
	InsertResult
	BioID int `json:"bioId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// BiodataCounts is the dashboard counts report.
type BiodataCounts struct {
	TotalBio      int64 `json:"totalBio"`
	MaleBio       int64 `json:"maleBio"`
	FemaleBio     int64 `json:"femaleBio"`
	TotalMarriage int64 `json:"totalMarriage"`
}

// Revenues is the admin revenue report.
type Revenues struct {
	TotalBio     int64 `json:"totalBio"`
	MaleBio      int64 `json:"maleBio"`
	FemaleBio    int64 `json:"femaleBio"`
	TotalPremium int64 `json:"totalpremium"`
	Revenue      int64 `json:"revenue"`
}
