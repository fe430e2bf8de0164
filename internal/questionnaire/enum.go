package questionnaire

type DimensionType string

const (
	DimensionTypeMandatory DimensionType = "OBRIGATORIO"
	DimensionTypeCommerce  DimensionType = "COMERCIO"
	DimensionTypeService   DimensionType = "SERVICO"
	DimensionTypeIndustry  DimensionType = "INDUSTRIA"
)

func (t DimensionType) Valid() bool {
	switch t {
	case DimensionTypeMandatory, DimensionTypeCommerce, DimensionTypeService, DimensionTypeIndustry:
		return true
	}
	return false
}

// Label é o nome exibido para o usuário.
func (t DimensionType) Label() string {
	switch t {
	case DimensionTypeMandatory:
		return "Obrigatório"
	case DimensionTypeCommerce:
		return "Comércio"
	case DimensionTypeService:
		return "Serviço"
	case DimensionTypeIndustry:
		return "Indústria"
	}
	return string(t)
}
