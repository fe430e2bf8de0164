package scoring

// Band é a faixa qualitativa de uma pontuação.
type Band string

const (
	BandExcellent    Band = "EXCELLENT"
	BandGreat        Band = "GREAT"
	BandAverage      Band = "AVERAGE"
	BandInsufficient Band = "INSUFFICIENT"
	BandOutOfRange   Band = "OUT_OF_RANGE"
)

func (b Band) Label() string {
	switch b {
	case BandExcellent:
		return "Excelente"
	case BandGreat:
		return "Ótimo"
	case BandAverage:
		return "Médio"
	case BandInsufficient:
		return "Insuficiente"
	default:
		return "Fora da faixa de avaliação"
	}
}

type bandRange struct {
	min, max int
	band     Band
}

var moduleBands = []bandRange{
	{142, 175, BandExcellent},
	{106, 141, BandGreat},
	{71, 105, BandAverage},
	{35, 70, BandInsufficient},
}

var dimensionBands = []bandRange{
	{21, 25, BandExcellent},
	{16, 20, BandGreat},
	{11, 15, BandAverage},
	{5, 10, BandInsufficient},
}

func classify(ranges []bandRange, score int) Band {
	for _, r := range ranges {
		if score >= r.min && score <= r.max {
			return r.band
		}
	}
	return BandOutOfRange
}

// ClassifyModule classifica o total de um módulo.
func ClassifyModule(score int) Band {
	return classify(moduleBands, score)
}

// ClassifyDimension classifica o total de uma dimensão.
func ClassifyDimension(score int) Band {
	return classify(dimensionBands, score)
}
