package compiler_errors

import (
	"fmt"
	"io"
)

type CompilerError interface {
	GetMessage() string
	GetLine() int
	// GetWhere is empty for errors not anchored to a token, otherwise
	// " at end" or " at '<lexeme>'".
	GetWhere() string
}

type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	Errors() []CompilerError
	Report()
	Reset()
}

type CompilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

func (eh *CompilerErrorHandler) Errors() []CompilerError {
	return eh.errors
}

func (eh *CompilerErrorHandler) Report() {
	if eh.writer == nil {
		return
	}

	for _, err := range eh.errors {
		fmt.Fprintln(eh.writer, Format(err))
	}
}

func (eh *CompilerErrorHandler) Reset() {
	eh.errors = make([]CompilerError, 0)
}

// Format renders err as "[line N] Error<where>: <message>".
func Format(err CompilerError) string {
	return fmt.Sprintf("[line %d] Error%s: %s", err.GetLine(), err.GetWhere(), err.GetMessage())
}
