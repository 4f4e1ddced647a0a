package command

import (
	"fmt"

	"github.com/charleslimjh/tp/internal/domain"
)

const UntagWord = "untag"

const UntagUsage = UntagWord + ": Removes tags from the eatery identified by the index number used in the displayed eatery list.\n" +
	"Parameters: INDEX (must be a positive integer) [t/TAG]...\n" +
	"Example: " + UntagWord + " 1 t/halal"

// UntagCommand removes tags from the eatery at a displayed index.
// Tags the eatery does not carry are ignored.
type UntagCommand struct {
	index        domain.Index
	tagsToRemove domain.TagSet
}

func NewUntagCommand(index domain.Index, tags domain.TagSet) *UntagCommand {
	return &UntagCommand{index: index, tagsToRemove: tags}
}

func (c *UntagCommand) Execute(m Model) (Result, error) {
	target, err := targetAt(m, c.index)
	if err != nil {
		return Result{}, err
	}

	untagged := target.WithRemovedTags(c.tagsToRemove)
	if err := replace(m, target, untagged); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageUntagSuccess, untagged)}, nil
}

func (c *UntagCommand) Equal(other Command) bool {
	o, ok := other.(*UntagCommand)
	if !ok || o == nil {
		return false
	}
	return c.index == o.index && c.tagsToRemove.Equal(o.tagsToRemove)
}
