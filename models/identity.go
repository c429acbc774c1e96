package models

import "time"

// Identity is a synthetic persona stored in the encrypted record store.
type Identity struct {
	ID          string
	FirstName   string
	LastName    string
	Street      string
	City        string
	Region      string
	PostalCode  string
	Country     string
	Phone       string
	DateOfBirth string // YYYY-MM-DD
	// Email is the optional forwarding address attached to the persona.
	Email     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns "First Last".
func (i Identity) FullName() string {
	switch {
	case i.FirstName == "":
		return i.LastName
	case i.LastName == "":
		return i.FirstName
	default:
		return i.FirstName + " " + i.LastName
	}
}
