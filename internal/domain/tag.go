package domain

import (
	"maps"
	"slices"
	"strings"
)

// TagConstraints is shown to the user when a tag fails validation.
const TagConstraints = "Tags names should be alphanumeric and at most 30 characters long"

const tagRules = "required,alphanumunicode,max=30"

// Tag is a short label attached to an eatery, e.g. "halal" or "cheap".
// Tags are compared exactly; "Halal" and "halal" are different tags.
type Tag struct {
	name string
}

// NewTag validates name and returns a Tag.
func NewTag(name string) (Tag, error) {
	if err := validateField(name, tagRules, TagConstraints); err != nil {
		return Tag{}, err
	}
	return Tag{name: name}, nil
}

// Name returns the tag label.
func (t Tag) Name() string { return t.name }

// String renders the tag the way it appears in an eatery's display form.
func (t Tag) String() string { return "[" + t.name + "]" }

// TagSet is an immutable set of tags. The zero value is an empty set.
// Set operations return new TagSets and never modify their receiver, so a
// TagSet handed out by an Eatery cannot be used to change that Eatery.
type TagSet struct {
	m map[Tag]struct{}
}

// NewTagSet returns a set holding tags. Duplicates collapse.
func NewTagSet(tags ...Tag) TagSet {
	if len(tags) == 0 {
		return TagSet{}
	}
	m := make(map[Tag]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return TagSet{m: m}
}

// ParseTagSet builds a TagSet from raw names, validating each one.
func ParseTagSet(names ...string) (TagSet, error) {
	tags := make([]Tag, 0, len(names))
	for _, n := range names {
		t, err := NewTag(n)
		if err != nil {
			return TagSet{}, err
		}
		tags = append(tags, t)
	}
	return NewTagSet(tags...), nil
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int { return len(s.m) }

// Contains reports whether t is in the set.
func (s TagSet) Contains(t Tag) bool {
	_, ok := s.m[t]
	return ok
}

// Union returns a new set holding every tag of s and other.
func (s TagSet) Union(other TagSet) TagSet {
	m := make(map[Tag]struct{}, len(s.m)+len(other.m))
	maps.Copy(m, s.m)
	maps.Copy(m, other.m)
	return TagSet{m: m}
}

// Difference returns a new set holding the tags of s that are not in other.
func (s TagSet) Difference(other TagSet) TagSet {
	m := make(map[Tag]struct{}, len(s.m))
	for t := range s.m {
		if !other.Contains(t) {
			m[t] = struct{}{}
		}
	}
	return TagSet{m: m}
}

// Equal reports whether s and other hold exactly the same tags.
func (s TagSet) Equal(other TagSet) bool {
	if len(s.m) != len(other.m) {
		return false
	}
	for t := range s.m {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// Slice returns the tags sorted by name. The slice is a fresh copy.
func (s TagSet) Slice() []Tag {
	out := slices.Collect(maps.Keys(s.m))
	slices.SortFunc(out, func(a, b Tag) int { return strings.Compare(a.name, b.name) })
	return out
}

// Names returns the tag labels sorted alphabetically.
func (s TagSet) Names() []string {
	tags := s.Slice()
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.name
	}
	return out
}

// String renders the set as "[a][b]" in sorted order.
func (s TagSet) String() string {
	var b strings.Builder
	for _, t := range s.Slice() {
		b.WriteString(t.String())
	}
	return b.String()
}
