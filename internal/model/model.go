package model

// Contact is the data structure for a person in the contact manager. Every
// persisted contact has all four fields set; the id is assigned by the
// database on insert and never changes afterwards.
type Contact struct {
	Id          int64  `json:"id"           db:"id"`
	FirstName   string `json:"first_name"   db:"first_name"`
	LastName    string `json:"last_name"    db:"last_name"`
	PhoneNumber string `json:"phone_number" db:"phone_number"`
}

// ContactCreate is the request body for creating a contact. All fields are
// required; requests missing one of them are rejected before any data access.
type ContactCreate struct {
	FirstName   string `json:"first_name"   db:"first_name"   binding:"required"`
	LastName    string `json:"last_name"    db:"last_name"    binding:"required"`
	PhoneNumber string `json:"phone_number" db:"phone_number" binding:"required"`
}

// ContactUpdate is the request body for updating a contact. Each field is
// independently optional; a nil field keeps the stored value.
type ContactUpdate struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
}

// IsEmpty reports whether the update contains no fields at all.
func (u ContactUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.PhoneNumber == nil
}
