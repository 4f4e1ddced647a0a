package command

import (
	"fmt"

	"github.com/charleslimjh/tp/internal/model"
)

const (
	FindWord    = "find"
	FindTagWord = "findtag"
)

const FindUsage = FindWord + ": Finds all eateries whose names contain any of the specified keywords (case-insensitive) " +
	"and displays them as a list with index numbers.\n" +
	"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
	"Example: " + FindWord + " hokkien mee"

const FindTagUsage = FindTagWord + ": Finds all eateries carrying any of the specified tags (case-insensitive) " +
	"and displays them as a list with index numbers.\n" +
	"Parameters: TAG [MORE_TAGS]...\n" +
	"Example: " + FindTagWord + " halal cheap"

// FindCommand narrows the displayed list to eateries whose name matches.
type FindCommand struct {
	predicate model.NameContainsKeywords
}

func NewFindCommand(keywords []string) *FindCommand {
	return &FindCommand{predicate: model.NameContainsKeywords{Keywords: keywords}}
}

func (c *FindCommand) Execute(m Model) (Result, error) {
	m.UpdateFilteredEateryList(c.predicate)
	return Result{Feedback: fmt.Sprintf(MessageEateriesListedOverview, m.FilteredEateryList().Len())}, nil
}

func (c *FindCommand) Equal(other Command) bool {
	o, ok := other.(*FindCommand)
	return ok && o != nil && c.predicate.Equal(o.predicate)
}

// FindTagCommand narrows the displayed list to eateries carrying a matching tag.
type FindTagCommand struct {
	predicate model.TagContainsKeywords
}

func NewFindTagCommand(keywords []string) *FindTagCommand {
	return &FindTagCommand{predicate: model.TagContainsKeywords{Keywords: keywords}}
}

func (c *FindTagCommand) Execute(m Model) (Result, error) {
	m.UpdateFilteredEateryList(c.predicate)
	return Result{Feedback: fmt.Sprintf(MessageEateriesListedOverview, m.FilteredEateryList().Len())}, nil
}

func (c *FindTagCommand) Equal(other Command) bool {
	o, ok := other.(*FindTagCommand)
	return ok && o != nil && c.predicate.Equal(o.predicate)
}
