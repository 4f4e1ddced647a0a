package command

import (
	"fmt"

	"github.com/charleslimjh/tp/internal/domain"
)

const DeleteWord = "delete"

const DeleteUsage = DeleteWord + ": Deletes the eatery identified by the index number used in the displayed eatery list.\n" +
	"Parameters: INDEX (must be a positive integer)\n" +
	"Example: " + DeleteWord + " 1"

// DeleteCommand removes the eatery at a displayed index.
type DeleteCommand struct {
	index domain.Index
}

func NewDeleteCommand(index domain.Index) *DeleteCommand {
	return &DeleteCommand{index: index}
}

func (c *DeleteCommand) Execute(m Model) (Result, error) {
	target, err := targetAt(m, c.index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteEatery(target); err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf(MessageDeleteSuccess, target)}, nil
}

func (c *DeleteCommand) Equal(other Command) bool {
	o, ok := other.(*DeleteCommand)
	return ok && o != nil && c.index == o.index
}
