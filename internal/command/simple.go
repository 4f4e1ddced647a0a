package command

import (
	"strings"

	"github.com/charleslimjh/tp/internal/model"
)

const (
	ListWord  = "list"
	ClearWord = "clear"
	HelpWord  = "help"
	ExitWord  = "exit"
)

// ListCommand shows every eatery.
type ListCommand struct{}

func (ListCommand) Execute(m Model) (Result, error) {
	m.UpdateFilteredEateryList(model.ShowAll)
	return Result{Feedback: MessageListSuccess}, nil
}

func (ListCommand) Equal(other Command) bool {
	_, ok := other.(ListCommand)
	return ok
}

// ClearCommand empties the food guide.
type ClearCommand struct{}

func (ClearCommand) Execute(m Model) (Result, error) {
	m.SetEateries(nil)
	return Result{Feedback: MessageClearSuccess}, nil
}

func (ClearCommand) Equal(other Command) bool {
	_, ok := other.(ClearCommand)
	return ok
}

// HelpCommand asks the surface to show usage for every command.
type HelpCommand struct{}

func (HelpCommand) Execute(Model) (Result, error) {
	return Result{Feedback: MessageHelpShown, ShowHelp: true}, nil
}

func (HelpCommand) Equal(other Command) bool {
	_, ok := other.(HelpCommand)
	return ok
}

// ExitCommand asks the surface to close.
type ExitCommand struct{}

func (ExitCommand) Execute(Model) (Result, error) {
	return Result{Feedback: MessageExitAck, Exit: true}, nil
}

func (ExitCommand) Equal(other Command) bool {
	_, ok := other.(ExitCommand)
	return ok
}

// HelpText is the full usage listing shown for the help command.
var HelpText = strings.Join([]string{
	AddUsage,
	EditUsage,
	DeleteUsage,
	TagUsage,
	UntagUsage,
	FindUsage,
	FindTagUsage,
	ListWord + ": Lists all eateries.",
	ClearWord + ": Clears all eateries from the food guide.",
	HelpWord + ": Shows this help.",
	ExitWord + ": Exits the program.",
}, "\n\n")
