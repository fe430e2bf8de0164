package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// QuestionRef é a visão mínima de uma pergunta do módulo usada na pontuação.
type QuestionRef struct {
	ID          uint
	DimensionID uint
	Weight      int
}

// AnswerItem é um item bruto da lista de respostas. QuestionID e Value ficam
// nil quando a chave não veio no payload.
type AnswerItem struct {
	QuestionID any
	Value      any
	NotObject  bool
}

type Submission struct {
	Module    string
	Questions []QuestionRef
	Items     []AnswerItem
}

type Result struct {
	DimensionTotals map[uint]int
	// Dimensions guarda a ordem em que as dimensões apareceram nas respostas.
	Dimensions  []uint
	ModuleTotal int
}

// Score valida todos os itens antes de decidir; qualquer problema invalida a
// submissão inteira e volta como *ValidationError com a lista completa.
func Score(sub Submission) (*Result, error) {
	if len(sub.Items) == 0 {
		return nil, &ValidationError{Diagnostics: []Diagnostic{{
			Kind:    KindEmpty,
			Message: `A lista "respostas" está vazia. Nenhuma resposta foi processada.`,
		}}}
	}

	valid := make(map[uint]QuestionRef, len(sub.Questions))
	for _, q := range sub.Questions {
		valid[q.ID] = q
	}

	var diags []Diagnostic
	answered := make(map[uint]struct{}, len(sub.Items))
	result := &Result{DimensionTotals: map[uint]int{}}

	for idx, it := range sub.Items {
		n := idx + 1

		if it.NotObject {
			diags = append(diags, Diagnostic{Item: n, Kind: KindNotObject,
				Message: fmt.Sprintf("Item %d: Não é um objeto JSON válido.", n)})
			continue
		}
		if it.QuestionID == nil {
			diags = append(diags, Diagnostic{Item: n, Kind: KindMissingQuestion,
				Message: fmt.Sprintf("Item %d: Chave 'perguntaId' ausente.", n)})
			continue
		}
		if it.Value == nil {
			diags = append(diags, Diagnostic{Item: n, QuestionID: it.QuestionID, Kind: KindMissingValue,
				Message: fmt.Sprintf("Item %d (Pergunta ID %v): Chave 'valor' ausente.", n, it.QuestionID)})
			continue
		}

		value, ok := ToInt(it.Value)
		if !ok {
			diags = append(diags, Diagnostic{Item: n, QuestionID: it.QuestionID, Kind: KindNotInteger,
				Message: fmt.Sprintf("Item %d (Pergunta ID %v): 'valor' deve ser um número inteiro (recebeu '%v').", n, it.QuestionID, it.Value)})
			continue
		}

		id, ok := questionID(it.QuestionID)
		q, known := valid[id]
		if !ok || !known {
			diags = append(diags, Diagnostic{Item: n, QuestionID: it.QuestionID, Kind: KindUnknownQuestion,
				Message: fmt.Sprintf("Item %d: Pergunta com ID %v não encontrada ou não pertence ao módulo '%s'.", n, it.QuestionID, sub.Module)})
			continue
		}

		if _, dup := answered[id]; dup {
			diags = append(diags, Diagnostic{Item: n, QuestionID: it.QuestionID, Kind: KindDuplicate,
				Message: fmt.Sprintf("Item %d: Resposta duplicada para a pergunta com ID %v nesta requisição.", n, it.QuestionID)})
			continue
		}
		answered[id] = struct{}{}

		if _, seen := result.DimensionTotals[q.DimensionID]; !seen {
			result.Dimensions = append(result.Dimensions, q.DimensionID)
		}
		result.DimensionTotals[q.DimensionID] += value * q.Weight
	}

	if len(diags) > 0 {
		return nil, &ValidationError{Diagnostics: diags}
	}

	for _, dimID := range result.Dimensions {
		result.ModuleTotal += result.DimensionTotals[dimID]
	}
	return result, nil
}

// ToInt converte um valor vindo do payload para inteiro. Números reais são
// truncados e textos precisam ser inteiros em base 10.
func ToInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int(x), true
	case float32:
		return floatToInt(float64(x))
	case float64:
		return floatToInt(x)
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i), true
		}
		if f, err := x.Float64(); err == nil {
			return floatToInt(f)
		}
		return 0, false
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if !inIntRange(f) {
		return 0, false
	}
	return int(math.Trunc(f)), true
}

// inIntRange rejeita NaN, infinitos e valores fora do intervalo de int64.
func inIntRange(f float64) bool {
	return !math.IsNaN(f) && f >= math.MinInt64 && f < math.MaxInt64
}

// questionID aceita apenas identificadores numéricos inteiros e não negativos.
func questionID(v any) (uint, bool) {
	switch x := v.(type) {
	case string, bool:
		return 0, false
	case json.Number:
		if i, err := x.Int64(); err == nil && i >= 0 {
			return uint(i), true
		}
		if f, err := x.Float64(); err == nil && f >= 0 && inIntRange(f) && f == math.Trunc(f) {
			return uint(f), true
		}
		return 0, false
	case float64:
		if x >= 0 && inIntRange(x) && x == math.Trunc(x) {
			return uint(x), true
		}
		return 0, false
	}
	i, ok := ToInt(v)
	if !ok || i < 0 {
		return 0, false
	}
	return uint(i), true
}
