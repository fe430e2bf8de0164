package answer

import (
	"errors"
	"fmt"
)

var (
	ErrModuleAnswerNotFound     = errors.New("resposta de módulo não encontrada")
	ErrDimensionAnswersNotFound = errors.New("nenhuma resposta de dimensão encontrada para este módulo")
	ErrPartialAnswerNotFound    = errors.New("nenhuma resposta parcial salva para este módulo")
	ErrInvalidUser              = errors.New("usuário inválido")
	ErrMissingDate              = errors.New("Data não informada.")
	ErrInvalidDate              = errors.New("Formato de data inválido. Use YYYY-MM-DD.")

	ErrMalformedBody    = errors.New("Corpo da requisição não é um JSON válido.")
	ErrMissingAnswers   = errors.New(`Payload deve conter a chave "respostas".`)
	ErrAnswersNotList   = errors.New(`"respostas" deve ser uma lista.`)
	ErrAnswersNotObject = errors.New(`"respostas" deve ser um objeto.`)
)

// PersistenceError indica falha ao gravar uma submissão; a transação foi desfeita.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("erro ao salvar respostas no banco de dados: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
