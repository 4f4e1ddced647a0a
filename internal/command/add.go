package command

import (
	"fmt"

	"github.com/charleslimjh/tp/internal/domain"
)

const AddWord = "add"

const AddUsage = AddWord + ": Adds an eatery to the food guide.\n" +
	"Parameters: n/NAME p/PHONE c/CUISINE l/LOCATION [t/TAG]...\n" +
	"Example: " + AddWord + " n/Ah Hock Fried Hokkien Mee p/98765432 c/Chinese l/Blk 20 Ghim Moh Road t/cheap"

// AddCommand appends a new eatery to the food guide.
type AddCommand struct {
	toAdd *domain.Eatery
}

// NewAddCommand returns a command adding e. e must not be nil.
func NewAddCommand(e *domain.Eatery) *AddCommand {
	if e == nil {
		panic("command.NewAddCommand: nil eatery")
	}
	return &AddCommand{toAdd: e}
}

func (c *AddCommand) Execute(m Model) (Result, error) {
	if m.HasEatery(c.toAdd) {
		return Result{}, domain.ErrDuplicateEatery
	}
	m.AddEatery(c.toAdd)
	return Result{Feedback: fmt.Sprintf(MessageAddSuccess, c.toAdd)}, nil
}

func (c *AddCommand) Equal(other Command) bool {
	o, ok := other.(*AddCommand)
	return ok && o != nil && c.toAdd.Equal(o.toAdd)
}
