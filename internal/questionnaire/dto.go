package questionnaire

type DimensionSummaryDTO struct {
	Title       string `json:"dimensaoTitulo"`
	Description string `json:"descricao"`
	Type        string `json:"tipo"`
	Explanation string `json:"explicacao"`
}

type ModuleSummaryDTO struct {
	Name            string                `json:"nome"`
	Description     string                `json:"descricao"`
	DurationMinutes int                   `json:"tempo"`
	QuestionCount   int                   `json:"perguntasQntd"`
	Dimensions      []DimensionSummaryDTO `json:"dimensoes"`
}

type QuestionnaireDTO struct {
	Modules []ModuleSummaryDTO `json:"modulos"`
}

type QuestionDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"pergunta"`
}

type DimensionDetailDTO struct {
	DimensionSummaryDTO
	Questions []QuestionDTO `json:"perguntas"`
}

type ModuleDetailDTO struct {
	Name       string               `json:"nomeModulo"`
	Dimensions []DimensionDetailDTO `json:"dimensoes"`
}

// Catalog é o formato do arquivo usado pelo comando seed.
type Catalog struct {
	Modules []CatalogModule `yaml:"modulos"`
}

type CatalogModule struct {
	Name            string             `yaml:"nome"`
	Description     string             `yaml:"descricao"`
	DurationMinutes int                `yaml:"tempo"`
	Dimensions      []CatalogDimension `yaml:"dimensoes"`
}

type CatalogDimension struct {
	Title       string            `yaml:"titulo"`
	Description string            `yaml:"descricao"`
	Explanation string            `yaml:"explicacao"`
	Type        DimensionType     `yaml:"tipo"`
	Questions   []CatalogQuestion `yaml:"perguntas"`
}

type CatalogQuestion struct {
	Text   string `yaml:"pergunta"`
	Weight int    `yaml:"peso"`
}

func toDimensionSummary(d Dimension) DimensionSummaryDTO {
	return DimensionSummaryDTO{
		Title:       d.Title,
		Description: d.Description,
		Type:        d.Type.Label(),
		Explanation: d.Explanation,
	}
}

func toQuestionnaireDTO(modules []Module) *QuestionnaireDTO {
	out := &QuestionnaireDTO{Modules: make([]ModuleSummaryDTO, 0, len(modules))}
	for _, m := range modules {
		dims := make([]DimensionSummaryDTO, 0, len(m.Dimensions))
		for _, d := range m.Dimensions {
			dims = append(dims, toDimensionSummary(d))
		}
		out.Modules = append(out.Modules, ModuleSummaryDTO{
			Name:            m.Name,
			Description:     m.Description,
			DurationMinutes: m.DurationMinutes,
			QuestionCount:   m.QuestionCount,
			Dimensions:      dims,
		})
	}
	return out
}

func toModuleDetailDTO(m *Module) *ModuleDetailDTO {
	out := &ModuleDetailDTO{Name: m.Name, Dimensions: make([]DimensionDetailDTO, 0, len(m.Dimensions))}
	for _, d := range m.Dimensions {
		questions := make([]QuestionDTO, 0, len(d.Questions))
		for _, q := range d.Questions {
			questions = append(questions, QuestionDTO{ID: q.ID, Text: q.Text})
		}
		out.Dimensions = append(out.Dimensions, DimensionDetailDTO{
			DimensionSummaryDTO: toDimensionSummary(d),
			Questions:           questions,
		})
	}
	return out
}
