package models

// Person represents one member of the allocation roster.
// People are loaded once at boot and stay immutable for the session;
// their lanes and off-days live in the board state, not here.
type Person struct {
	ID            string
	FullName      string
	PreferredName string
	Status        string
}

// Person status values as stored in the people table.
const (
	PersonActive   = "active"
	PersonInactive = "inactive"
)

// DisplayName returns the preferred name when set, falling back to the
// full name, then to a placeholder so rendering never deals with "".
func (p *Person) DisplayName() string {
	if p.PreferredName != "" {
		return p.PreferredName
	}
	if p.FullName != "" {
		return p.FullName
	}
	return "Unknown"
}
