// Package parser turns command text typed by the user into command values.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charleslimjh/tp/internal/command"
	"github.com/charleslimjh/tp/internal/domain"
)

// ErrUnknownCommand is returned when the first word is not a command.
var ErrUnknownCommand = errors.New("unknown command")

// ErrInvalidFormat is returned when a command's arguments are malformed.
// The wrapping message carries the reason and the command usage.
var ErrInvalidFormat = errors.New("invalid command format")

// Parse reads one line of user input and returns the command it names.
// Field value errors wrap domain.ErrValidation; everything else wraps
// ErrInvalidFormat or ErrUnknownCommand.
func Parse(input string) (command.Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, invalidFormat("", command.HelpText)
	}

	word, args := splitCommandWord(input)

	switch word {
	case command.AddWord:
		return parseAdd(args)
	case command.EditWord:
		return parseEdit(args)
	case command.DeleteWord:
		idx, err := parseIndex(strings.TrimSpace(args))
		if err != nil {
			return nil, invalidFormat(err.Error(), command.DeleteUsage)
		}
		return command.NewDeleteCommand(idx), nil
	case command.TagWord:
		idx, ts, err := parseIndexAndTags(args, command.TagUsage)
		if err != nil {
			return nil, err
		}
		return command.NewTagCommand(idx, ts), nil
	case command.UntagWord:
		idx, ts, err := parseIndexAndTags(args, command.UntagUsage)
		if err != nil {
			return nil, err
		}
		return command.NewUntagCommand(idx, ts), nil
	case command.FindWord:
		keywords := strings.Fields(args)
		if len(keywords) == 0 {
			return nil, invalidFormat("", command.FindUsage)
		}
		return command.NewFindCommand(keywords), nil
	case command.FindTagWord:
		keywords := strings.Fields(args)
		if len(keywords) == 0 {
			return nil, invalidFormat("", command.FindTagUsage)
		}
		return command.NewFindTagCommand(keywords), nil
	case command.ListWord:
		return command.ListCommand{}, nil
	case command.ClearWord:
		return command.ClearCommand{}, nil
	case command.HelpWord:
		return command.HelpCommand{}, nil
	case command.ExitWord:
		return command.ExitCommand{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, word)
	}
}

func parseAdd(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixCuisine, PrefixLocation, PrefixTag)
	for _, p := range []Prefix{PrefixName, PrefixPhone, PrefixCuisine, PrefixLocation} {
		if !am.Has(p) {
			return nil, invalidFormat("missing "+string(p), command.AddUsage)
		}
	}
	if am.Preamble() != "" {
		return nil, invalidFormat("unexpected text before arguments", command.AddUsage)
	}

	name, _ := am.Value(PrefixName)
	phone, _ := am.Value(PrefixPhone)
	cuisine, _ := am.Value(PrefixCuisine)
	location, _ := am.Value(PrefixLocation)

	e, err := domain.ParseEatery(name, phone, cuisine, location, am.AllValues(PrefixTag)...)
	if err != nil {
		return nil, err
	}
	return command.NewAddCommand(e), nil
}

func parseEdit(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixCuisine, PrefixLocation, PrefixTag)

	idx, err := parseIndex(am.Preamble())
	if err != nil {
		return nil, invalidFormat(err.Error(), command.EditUsage)
	}

	var d command.EditDescriptor
	if v, ok := am.Value(PrefixName); ok {
		n, err := domain.NewName(v)
		if err != nil {
			return nil, err
		}
		d.Name = &n
	}
	if v, ok := am.Value(PrefixPhone); ok {
		p, err := domain.NewPhone(v)
		if err != nil {
			return nil, err
		}
		d.Phone = &p
	}
	if v, ok := am.Value(PrefixCuisine); ok {
		c, err := domain.NewCuisine(v)
		if err != nil {
			return nil, err
		}
		d.Cuisine = &c
	}
	if v, ok := am.Value(PrefixLocation); ok {
		l, err := domain.NewLocation(v)
		if err != nil {
			return nil, err
		}
		d.Location = &l
	}
	if am.Has(PrefixTag) {
		ts, err := parseTagsForEdit(am.AllValues(PrefixTag))
		if err != nil {
			return nil, err
		}
		d.Tags = &ts
	}

	if !d.IsAnyFieldEdited() {
		return nil, invalidFormat(command.MessageNotEdited, command.EditUsage)
	}
	return command.NewEditCommand(idx, d), nil
}

// parseTagsForEdit treats a single empty "t/" as "clear all tags".
func parseTagsForEdit(values []string) (domain.TagSet, error) {
	if len(values) == 1 && values[0] == "" {
		return domain.TagSet{}, nil
	}
	return domain.ParseTagSet(values...)
}

// parseIndexAndTags handles the shared "INDEX t/TAG..." shape of tag and untag.
func parseIndexAndTags(args, usage string) (domain.Index, domain.TagSet, error) {
	am := Tokenize(args, PrefixTag)

	idx, err := parseIndex(am.Preamble())
	if err != nil {
		return domain.Index{}, domain.TagSet{}, invalidFormat(err.Error(), usage)
	}
	if !am.Has(PrefixTag) {
		return domain.Index{}, domain.TagSet{}, invalidFormat(command.MessageNotTagged, usage)
	}

	ts, err := domain.ParseTagSet(am.AllValues(PrefixTag)...)
	if err != nil {
		return domain.Index{}, domain.TagSet{}, err
	}
	return idx, ts, nil
}

// parseIndex reads a 1-based positive integer index.
func parseIndex(s string) (domain.Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return domain.Index{}, errors.New("index is not a non-zero unsigned integer")
	}
	return domain.NewIndexFromOneBased(n)
}

// splitCommandWord splits input at its first whitespace run. The returned
// args keep a leading space so the first prefix is recognised.
func splitCommandWord(input string) (word, args string) {
	i := strings.IndexFunc(input, unicode.IsSpace)
	if i < 0 {
		return input, " "
	}
	return input[:i], " " + strings.TrimLeftFunc(input[i:], unicode.IsSpace)
}

func invalidFormat(reason, usage string) error {
	if reason == "" {
		return fmt.Errorf("%w\n%s", ErrInvalidFormat, usage)
	}
	return fmt.Errorf("%w: %s\n%s", ErrInvalidFormat, reason, usage)
}
