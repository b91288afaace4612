package graphlib

import (
	"errors"
	"fmt"
)

var ErrBuilt = errors.New("chart already built")

type ValidationError struct {
	Option  string
	Message string
}

func validationError(option, msg string, args ...any) ValidationError {
	return ValidationError{
		Option:  option,
		Message: fmt.Sprintf(msg, args...),
	}
}

func (e ValidationError) Error() string {
	return e.Message
}

type LayoutError struct {
	Message string
}

func (e LayoutError) Error() string {
	return e.Message
}

// MisuseError is returned, never logged, when a chart is used after Build.
type MisuseError struct {
	Op string
}

func misuse(op string) error {
	return &MisuseError{Op: op}
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, ErrBuilt)
}

func (e *MisuseError) Unwrap() error {
	return ErrBuilt
}

type ErrorLog []error

func (e ErrorLog) Len() int {
	return len(e)
}

func (e ErrorLog) Empty() bool {
	return len(e) == 0
}

func (e ErrorLog) Messages() []string {
	list := make([]string, 0, len(e))
	for _, err := range e {
		list = append(list, err.Error())
	}
	return list
}

func (e ErrorLog) Copy() ErrorLog {
	if len(e) == 0 {
		return nil
	}
	x := make(ErrorLog, len(e))
	copy(x, e)
	return x
}

func (e *ErrorLog) Add(err error) {
	if err == nil {
		return
	}
	*e = append(*e, err)
}
