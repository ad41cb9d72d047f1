package model

// MaxFavorites is the largest valid favorite identifier.
const MaxFavorites = 10

// Favorite is a named, saved system configuration slot. Shaped identically
// to Source: an identifier and a name, nothing more.
type Favorite struct {
	id   Identifier
	name Name
}

// NewFavorite constructs a Favorite with the given id and initial name.
func NewFavorite(id Identifier, name string) Favorite {
	return Favorite{id: id, name: NewName(name)}
}

func (f Favorite) ID() Identifier { return f.id }
func (f Favorite) Name() string   { return f.name.String() }

// SetName validates and assigns a new favorite name.
func (f *Favorite) SetName(name string) (Status, *Error) { return f.name.Set(name) }
