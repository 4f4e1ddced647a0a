// Package domain contains the core data types for the food guide.
// Every type here is an immutable value: "changing" an eatery means building
// a new one, never writing to an existing one.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Eatery is one entry in the food guide.
//
// Two relations are defined over eateries:
//   - IsSameEatery: same real-world eatery, decided by exact Name equality.
//   - Equal: every attribute equal, tags compared as sets.
//
// All fields are unexported so an Eatery cannot be modified after NewEatery.
type Eatery struct {
	name     Name
	phone    Phone
	cuisine  Cuisine
	location Location
	tags     TagSet
}

// NewEatery builds an Eatery. Every field except tags is required; an unset
// (zero-value) field fails with ErrValidation. Field formats are checked by
// the field constructors (NewName, NewPhone, ...) before this is called.
func NewEatery(name Name, phone Phone, cuisine Cuisine, location Location, tags TagSet) (*Eatery, error) {
	var missing []string
	if name.IsZero() {
		missing = append(missing, "name")
	}
	if phone.IsZero() {
		missing = append(missing, "phone")
	}
	if cuisine.IsZero() {
		missing = append(missing, "cuisine")
	}
	if location.IsZero() {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	return &Eatery{
		name:     name,
		phone:    phone,
		cuisine:  cuisine,
		location: location,
		tags:     tags,
	}, nil
}

// ParseEatery validates raw strings and builds an Eatery in one step.
// It is used by storage backends and tests that start from plain values.
func ParseEatery(name, phone, cuisine, location string, tags ...string) (*Eatery, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}
	c, err := NewCuisine(cuisine)
	if err != nil {
		return nil, err
	}
	l, err := NewLocation(location)
	if err != nil {
		return nil, err
	}
	ts, err := ParseTagSet(tags...)
	if err != nil {
		return nil, err
	}
	return NewEatery(n, p, c, l, ts)
}

func (e *Eatery) Name() Name         { return e.name }
func (e *Eatery) Phone() Phone       { return e.phone }
func (e *Eatery) Cuisine() Cuisine   { return e.cuisine }
func (e *Eatery) Location() Location { return e.location }

// Tags returns the eatery's tag set. TagSet is immutable, so the caller
// cannot change the eatery through it.
func (e *Eatery) Tags() TagSet { return e.tags }

// --- copy-on-write reconstruction -------------------------------------------

// WithName returns a copy of e with its name replaced.
func (e *Eatery) WithName(n Name) *Eatery {
	c := *e
	c.name = n
	return &c
}

// WithPhone returns a copy of e with its phone replaced.
func (e *Eatery) WithPhone(p Phone) *Eatery {
	c := *e
	c.phone = p
	return &c
}

// WithCuisine returns a copy of e with its cuisine replaced.
func (e *Eatery) WithCuisine(cu Cuisine) *Eatery {
	c := *e
	c.cuisine = cu
	return &c
}

// WithLocation returns a copy of e with its location replaced.
func (e *Eatery) WithLocation(l Location) *Eatery {
	c := *e
	c.location = l
	return &c
}

// WithTags returns a copy of e whose tag set is exactly tags.
func (e *Eatery) WithTags(tags TagSet) *Eatery {
	c := *e
	c.tags = tags
	return &c
}

// WithAddedTags returns a copy of e whose tags are e's tags united with tags.
// Adding a tag that is already present leaves the tag set unchanged.
func (e *Eatery) WithAddedTags(tags TagSet) *Eatery {
	return e.WithTags(e.tags.Union(tags))
}

// WithRemovedTags returns a copy of e without any of tags.
func (e *Eatery) WithRemovedTags(tags TagSet) *Eatery {
	return e.WithTags(e.tags.Difference(tags))
}

// --- identity and equality --------------------------------------------------

// IsSameEatery reports whether other refers to the same real-world eatery:
// the names match exactly (case and whitespace sensitive). Every other field
// is ignored. A nil other is never the same eatery.
func (e *Eatery) IsSameEatery(other *Eatery) bool {
	if other == e {
		return true
	}
	return other != nil && e != nil && other.name == e.name
}

// Equal reports whether every attribute of e and other is equal.
// It is stricter than IsSameEatery.
func (e *Eatery) Equal(other *Eatery) bool {
	if other == e {
		return true
	}
	if other == nil || e == nil {
		return false
	}
	return e.name == other.name &&
		e.phone == other.phone &&
		e.cuisine == other.cuisine &&
		e.location == other.location &&
		e.tags.Equal(other.tags)
}

// Key returns a canonical string for e. Two eateries have the same Key if
// and only if they are Equal, so Key can be used as a map key.
// Every part is quoted, so no field value can forge a separator.
func (e *Eatery) Key() string {
	parts := []string{
		strconv.Quote(e.name.value),
		strconv.Quote(e.phone.value),
		strconv.Quote(e.cuisine.value),
		strconv.Quote(e.location.value),
	}
	for _, n := range e.tags.Names() {
		parts = append(parts, strconv.Quote(n))
	}
	return strings.Join(parts, " ")
}

// String is the display form used in command feedback.
func (e *Eatery) String() string {
	return fmt.Sprintf("%s; Phone: %s; Cuisine: %s; Location: %s; Tags: %s",
		e.name, e.phone, e.cuisine, e.location, e.tags)
}
