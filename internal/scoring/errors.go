package scoring

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("falha na validação das respostas")
	ErrConflict   = errors.New("resposta duplicada para a mesma pergunta")
)

type DiagnosticKind string

const (
	KindEmpty           DiagnosticKind = "EMPTY"
	KindNotObject       DiagnosticKind = "NOT_OBJECT"
	KindMissingQuestion DiagnosticKind = "MISSING_QUESTION_ID"
	KindMissingValue    DiagnosticKind = "MISSING_VALUE"
	KindNotInteger      DiagnosticKind = "NOT_INTEGER"
	KindUnknownQuestion DiagnosticKind = "UNKNOWN_QUESTION"
	KindDuplicate       DiagnosticKind = "DUPLICATE_QUESTION"
)

type Diagnostic struct {
	Item       int            `json:"item"`
	QuestionID any            `json:"perguntaId,omitempty"`
	Kind       DiagnosticKind `json:"tipo"`
	Message    string         `json:"mensagem"`
}

// ValidationError reúne todos os problemas encontrados numa submissão.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d problema(s)", ErrValidation.Error(), len(e.Diagnostics))
}

func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return true
	case ErrConflict:
		return e.HasKind(KindDuplicate)
	}
	return false
}

func (e *ValidationError) HasKind(kind DiagnosticKind) bool {
	for _, d := range e.Diagnostics {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

func (e *ValidationError) Messages() []string {
	out := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		out[i] = d.Message
	}
	return out
}
