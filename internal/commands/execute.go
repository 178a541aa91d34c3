package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Title  func(TextArgs) (Result, error)
	Desc   func(TextArgs) (Result, error)
	Photo  func(PhotoArgs) (Result, error)
	Edit   func(TargetArgs) (Result, error)
	Done   func(TargetArgs) (Result, error)
	Delete func(TargetArgs) (Result, error)
	Open   func(TargetArgs) (Result, error)
	Close  func() (Result, error)
	Save   func() (Result, error)
	Cancel func() (Result, error)
	Theme  func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return missing(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeTitle:
		if handlers.Title == nil {
			return missing(cmd.Type)
		}
		return handlers.Title(*cmd.Text)
	case TypeDesc:
		if handlers.Desc == nil {
			return missing(cmd.Type)
		}
		return handlers.Desc(*cmd.Text)
	case TypePhoto:
		if handlers.Photo == nil {
			return missing(cmd.Type)
		}
		return handlers.Photo(*cmd.Photo)
	case TypeEdit:
		if handlers.Edit == nil {
			return missing(cmd.Type)
		}
		return handlers.Edit(*cmd.Target)
	case TypeDone:
		if handlers.Done == nil {
			return missing(cmd.Type)
		}
		return handlers.Done(*cmd.Target)
	case TypeDelete:
		if handlers.Delete == nil {
			return missing(cmd.Type)
		}
		return handlers.Delete(*cmd.Target)
	case TypeOpen:
		if handlers.Open == nil {
			return missing(cmd.Type)
		}
		return handlers.Open(*cmd.Target)
	case TypeClose:
		return runBare(cmd.Type, handlers.Close)
	case TypeSave:
		return runBare(cmd.Type, handlers.Save)
	case TypeCancel:
		return runBare(cmd.Type, handlers.Cancel)
	case TypeTheme:
		return runBare(cmd.Type, handlers.Theme)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func runBare(t Type, fn func() (Result, error)) (Result, error) {
	if fn == nil {
		return missing(t)
	}
	return fn()
}

func missing(t Type) (Result, error) {
	return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
