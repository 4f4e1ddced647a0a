package command

import (
	"fmt"

	"github.com/charleslimjh/tp/internal/domain"
)

// TagWord is the command word for TagCommand.
const TagWord = "tag"

// TagUsage describes the tag command.
const TagUsage = TagWord + ": Adds tags to the eatery identified by the index number used in the displayed eatery list.\n" +
	"Parameters: INDEX (must be a positive integer) [t/TAG]...\n" +
	"Example: " + TagWord + " 1 t/halal"

// TagCommand adds tags to the eatery at a displayed index.
// An empty tag set is accepted here; the parser refuses it.
type TagCommand struct {
	index     domain.Index
	tagsToAdd domain.TagSet
}

// NewTagCommand returns a command adding tags to the eatery at index.
func NewTagCommand(index domain.Index, tags domain.TagSet) *TagCommand {
	return &TagCommand{index: index, tagsToAdd: tags}
}

// Execute merges the tags into the target eatery and commits the result.
// Returns domain.ErrInvalidIndex when the index is past the filtered view and
// domain.ErrDuplicateEatery when the merged eatery already exists.
func (c *TagCommand) Execute(m Model) (Result, error) {
	target, err := targetAt(m, c.index)
	if err != nil {
		return Result{}, err
	}

	tagged := createTaggedEatery(target, c.tagsToAdd)
	if err := replace(m, target, tagged); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageTagSuccess, tagged)}, nil
}

// createTaggedEatery returns a copy of target with tags added to its tag set.
func createTaggedEatery(target *domain.Eatery, tags domain.TagSet) *domain.Eatery {
	return target.WithAddedTags(tags)
}

// Equal reports whether other is a TagCommand with the same index and tags.
func (c *TagCommand) Equal(other Command) bool {
	o, ok := other.(*TagCommand)
	if !ok || o == nil {
		return false
	}
	return c.index == o.index && c.tagsToAdd.Equal(o.tagsToAdd)
}
