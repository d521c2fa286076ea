package models

// Butterfly is a catalogued butterfly entry. IDs are server-generated and
// immutable after creation.
type Butterfly struct {
	ID         string `json:"id" bson:"id"`
	CommonName string `json:"commonName" bson:"commonName"`
	Species    string `json:"species" bson:"species"`
	Article    string `json:"article" bson:"article"`
}

// User owns its rating list exclusively. ButterflyRatings stays absent from
// the JSON encoding until the first rating is recorded.
type User struct {
	ID               string   `json:"id" bson:"id"`
	Username         string   `json:"username" bson:"username"`
	ButterflyRatings []Rating `json:"butterflyRatings,omitempty" bson:"butterflyRatings,omitempty"`
}

// Rating is embedded in a User and keyed by butterfly common name within that
// user's list. Values are constrained to [0, 5] before any mutation happens.
type Rating struct {
	Butterfly string  `json:"butterfly" bson:"butterfly"`
	Rating    float64 `json:"rating" bson:"rating"`
}
