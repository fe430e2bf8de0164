package answer

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/lucalvex/hub-projeto-diag-api/internal/scoring"
)

type ModuleResultDTO struct {
	ModuleID   uint   `json:"moduloId"`
	ModuleName string `json:"nomeModulo"`
	Total      int    `json:"valorFinal"`
	Band       string `json:"faixa"`
	Status     string `json:"status"`
}

type DimensionResultDTO struct {
	DimensionID uint   `json:"dimensaoId"`
	Total       int    `json:"valorFinal"`
	Band        string `json:"faixa"`
	Status      string `json:"status"`
}

type SubmissionResponse struct {
	Message           string               `json:"message"`
	ModuleAnswerID    uuid.UUID            `json:"respostaModuloId"`
	Module            ModuleResultDTO      `json:"modulo"`
	CreatedDimensions []DimensionResultDTO `json:"dimensoesCriadas"`
}

type DeadlineResponse struct {
	OK       bool       `json:"ok_response"`
	Message  string     `json:"message"`
	UnlockAt *time.Time `json:"unlock_at,omitempty"`
}

type ReportEntryDTO struct {
	ID         uuid.UUID `json:"id"`
	ModuleID   uint      `json:"moduloId"`
	ModuleName string    `json:"nomeModulo"`
	Total      int       `json:"valorFinal"`
	AnsweredAt time.Time `json:"dataResposta"`
}

type SearchResponse struct {
	Results []ReportEntryDTO `json:"resultados"`
}

type DateTotalDTO struct {
	Date  string `json:"data"`
	Total int    `json:"valorFinal"`
}

type LastDimensionResultDTO struct {
	Dimension string  `json:"dimensao"`
	Total     *int    `json:"valorFinal"`
	Date      *string `json:"data"`
	Average   float64 `json:"media"`
}

type DimensionAnswerDTO struct {
	ID             uuid.UUID `json:"id"`
	DimensionID    uint      `json:"dimensaoId"`
	DimensionTitle string    `json:"dimensao"`
	Total          int       `json:"valorFinal"`
	Band           string    `json:"faixa"`
}

type ModuleAnswerDTO struct {
	ID         uuid.UUID            `json:"id"`
	ModuleID   uint                 `json:"moduloId"`
	ModuleName string               `json:"nomeModulo"`
	Total      int                  `json:"valorFinal"`
	Band       string               `json:"faixa"`
	AnsweredAt time.Time            `json:"dataResposta"`
	Dimensions []DimensionAnswerDTO `json:"dimensoes"`
}

type PartialAnswerDTO struct {
	ModuleID   uint            `json:"moduloId"`
	ModuleName string          `json:"nomeModulo"`
	Answers    json.RawMessage `json:"respostas"`
	UpdatedAt  time.Time       `json:"dataResposta"`
}

// DecodeSubmission lê {"respostas":[...]} mantendo cada item cru para que a
// validação item a item aconteça no motor de pontuação.
func DecodeSubmission(r io.Reader) ([]scoring.AnswerItem, error) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, ErrMalformedBody
	}

	raw, ok := body["respostas"]
	if !ok || isNull(raw) {
		return nil, ErrMissingAnswers
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, ErrAnswersNotList
	}

	items := make([]scoring.AnswerItem, 0, len(list))
	for _, elem := range list {
		var v any
		dec := json.NewDecoder(bytes.NewReader(elem))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, ErrMalformedBody
		}
		obj, ok := v.(map[string]any)
		if !ok {
			items = append(items, scoring.AnswerItem{NotObject: true})
			continue
		}
		items = append(items, scoring.AnswerItem{
			QuestionID: obj["perguntaId"],
			Value:      obj["valor"],
		})
	}
	return items, nil
}

// DecodePartial lê {"respostas":{...}} de um salvamento parcial.
func DecodePartial(r io.Reader) (map[string]any, error) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, ErrMalformedBody
	}

	raw, ok := body["respostas"]
	if !ok || isNull(raw) {
		return nil, ErrMissingAnswers
	}

	var answers map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&answers); err != nil {
		return nil, ErrAnswersNotObject
	}
	return answers, nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// IsPayloadError indica erros de formato do corpo, respondidos com 400.
func IsPayloadError(err error) bool {
	return errors.Is(err, ErrMalformedBody) ||
		errors.Is(err, ErrMissingAnswers) ||
		errors.Is(err, ErrAnswersNotList) ||
		errors.Is(err, ErrAnswersNotObject)
}
