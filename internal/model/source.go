package model

// MaxSources is the largest valid source identifier.
const MaxSources = 8

// Source is one of the system's audio inputs.
type Source struct {
	id   Identifier
	name Name
}

// NewSource constructs a Source with the given id and initial name.
func NewSource(id Identifier, name string) Source {
	return Source{id: id, name: NewName(name)}
}

func (s Source) ID() Identifier { return s.id }
func (s Source) Name() string   { return s.name.String() }

// SetName validates and assigns a new source name.
func (s *Source) SetName(name string) (Status, *Error) { return s.name.Set(name) }
