package model

import "fmt"

// NameMinLength and NameMaxLength bound a Name's UTF-8 byte length.
const (
	NameMinLength = 1
	NameMaxLength = 16
)

// Name is a validated, mutable label shared by sources, zones, groups,
// equalizer presets, and favorites.
type Name struct {
	value string
}

// NewName wraps an already-valid string, used only when constructing
// defaults whose values are known to satisfy the length bound.
func NewName(s string) Name { return Name{value: s} }

func (n Name) String() string { return n.value }

// Set validates and assigns s. Setting the current value returns
// StatusValueAlreadySet without an error; a value outside
// [NameMinLength, NameMaxLength] is rejected and n is left unchanged.
func (n *Name) Set(s string) (Status, *Error) {
	if s == n.value {
		return StatusValueAlreadySet, nil
	}
	if l := len(s); l < NameMinLength || l > NameMaxLength {
		return 0, ErrOutOfRange(fmt.Sprintf("name length %d out of range [%d,%d]", l, NameMinLength, NameMaxLength))
	}
	n.value = s
	return StatusSuccess, nil
}
