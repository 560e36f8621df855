package entity

// FirstNamer is the capability Greet requires of the other party
type FirstNamer interface {
	FirstName() string
}

// Individual is the capability set shared by every person in the lesson
type Individual interface {
	FirstNamer

	ID() string
	Name() string
	Age() int
	Species() string
	Type() EntityType

	// HaveBirthday ages the individual by one year and announces it
	HaveBirthday()

	// Greet announces a greeting to other and returns its text
	Greet(other FirstNamer) string

	String() string
}

// Personable is satisfied by *Person and by every type that embeds it,
// which makes it the IS-A Person check.
type Personable interface {
	Individual
	AsPerson() *Person
}

// IsPerson reports whether v is a Person or a specialization of one
func IsPerson(v any) bool {
	_, ok := v.(Personable)
	return ok
}

// IsLawyer reports whether v is a Lawyer
func IsLawyer(v any) bool {
	_, ok := v.(*Lawyer)
	return ok
}
