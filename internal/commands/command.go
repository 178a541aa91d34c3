package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeTitle  Type = "title"
	TypeDesc   Type = "desc"
	TypePhoto  Type = "photo"
	TypeEdit   Type = "edit"
	TypeDone   Type = "done"
	TypeDelete Type = "delete"
	TypeOpen   Type = "open"
	TypeClose  Type = "close"
	TypeSave   Type = "save"
	TypeCancel Type = "cancel"
	TypeTheme  Type = "theme"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Title string
}

// TextArgs carries free text for the title and desc commands. Text keeps
// inner whitespace as typed.
type TextArgs struct {
	Text string
}

type PhotoArgs struct {
	Path string
}

// TargetArgs addresses a task by its 1-based position in the list.
type TargetArgs struct {
	Position int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Text   *TextArgs
	Photo  *PhotoArgs
	Target *TargetArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	rest := strings.TrimSpace(raw[len(parts[0]):])
	args := parts[1:]

	switch t := Type(head); t {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeTitle, TypeDesc:
		return Command{Type: t, Raw: input, Text: &TextArgs{Text: rest}}, nil
	case TypePhoto:
		return parsePhoto(input, rest)
	case TypeEdit, TypeDone, TypeDelete, TypeOpen:
		return parseTarget(input, t, args)
	case TypeClose, TypeSave, TypeCancel, TypeTheme:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", t)}
		}
		return Command{Type: t, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: rest}}, nil
}

func parsePhoto(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "photo requires a file path"}
	}
	return Command{Type: TypePhoto, Raw: raw, Photo: &PhotoArgs{Path: rest}}, nil
}

func parseTarget(raw string, t Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task number", t)}
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil || pos < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task number: %s", args[0])}
	}
	return Command{Type: t, Raw: raw, Target: &TargetArgs{Position: pos}}, nil
}
