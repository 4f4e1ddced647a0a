package command

import (
	"fmt"

	"github.com/charleslimjh/tp/internal/domain"
)

const EditWord = "edit"

const EditUsage = EditWord + ": Edits the details of the eatery identified by the index number used in the displayed eatery list. " +
	"Existing values will be overwritten by the input values.\n" +
	"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [c/CUISINE] [l/LOCATION] [t/TAG]...\n" +
	"Example: " + EditWord + " 1 p/91234567 c/Thai"

// EditDescriptor holds the fields to change. Nil fields keep their value.
// A non-nil Tags replaces the whole tag set (an empty set clears it).
type EditDescriptor struct {
	Name     *domain.Name
	Phone    *domain.Phone
	Cuisine  *domain.Cuisine
	Location *domain.Location
	Tags     *domain.TagSet
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Cuisine != nil || d.Location != nil || d.Tags != nil
}

// Apply returns a copy of e with the descriptor's fields applied.
func (d EditDescriptor) Apply(e *domain.Eatery) *domain.Eatery {
	out := e
	if d.Name != nil {
		out = out.WithName(*d.Name)
	}
	if d.Phone != nil {
		out = out.WithPhone(*d.Phone)
	}
	if d.Cuisine != nil {
		out = out.WithCuisine(*d.Cuisine)
	}
	if d.Location != nil {
		out = out.WithLocation(*d.Location)
	}
	if d.Tags != nil {
		out = out.WithTags(*d.Tags)
	}
	return out
}

// Equal reports whether both descriptors set the same fields to the same values.
func (d EditDescriptor) Equal(o EditDescriptor) bool {
	return ptrEqual(d.Name, o.Name) &&
		ptrEqual(d.Phone, o.Phone) &&
		ptrEqual(d.Cuisine, o.Cuisine) &&
		ptrEqual(d.Location, o.Location) &&
		((d.Tags == nil) == (o.Tags == nil)) && (d.Tags == nil || d.Tags.Equal(*o.Tags))
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// EditCommand overwrites fields of the eatery at a displayed index.
type EditCommand struct {
	index      domain.Index
	descriptor EditDescriptor
}

func NewEditCommand(index domain.Index, d EditDescriptor) *EditCommand {
	return &EditCommand{index: index, descriptor: d}
}

func (c *EditCommand) Execute(m Model) (Result, error) {
	target, err := targetAt(m, c.index)
	if err != nil {
		return Result{}, err
	}

	edited := c.descriptor.Apply(target)
	if err := replace(m, target, edited); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageEditSuccess, edited)}, nil
}

func (c *EditCommand) Equal(other Command) bool {
	o, ok := other.(*EditCommand)
	return ok && o != nil && c.index == o.index && c.descriptor.Equal(o.descriptor)
}
