package models

// Institution is one catalog entry. Type is an opaque tag (e.g. "Public",
// "Private", "National"), not a closed set enforced here.
type Institution struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Colleges []College `json:"colleges"`
}

// College is a sub-record of an institution. Order within the slice is
// display order, not identity.
type College struct {
	Name string `json:"name"`
}

// Filter narrows a catalog query. All set fields must match (AND).
type Filter struct {
	// Name matches as a case-insensitive substring.
	Name string
	// Type matches exactly.
	Type string
	// College matches when any college's name equals it exactly.
	College string
}
