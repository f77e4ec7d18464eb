// Package ids holds a few tagged identifiers whose methods are produced by the newtype command.
package ids

//go:generate go run github.com/anchore/newtype/cmd/newtype

//newtype:tagged
type UserID struct{ id int64 }

//newtype:tagged
type Email struct{ string }

// Names is an ordered list of display names.
//
//newtype:tagged json,yaml
type Names struct{ names []string }

// Account is stored as a JSON document.
type Account struct {
	ID    UserID `json:"id"`
	Email Email  `json:"email"`
	Names Names  `json:"names"`
}
