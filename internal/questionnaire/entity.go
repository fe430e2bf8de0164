package questionnaire

type Module struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"type:varchar(255);uniqueIndex;not null" json:"nome"`
	Description     string `gorm:"type:text;not null" json:"descricao"`
	QuestionCount   int    `gorm:"not null;default:0" json:"perguntasQntd"`
	DurationMinutes int    `gorm:"not null;default:0" json:"tempo"`

	Dimensions []Dimension `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"dimensoes,omitempty"`
}

type Dimension struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"titulo"`
	Description string        `gorm:"type:text;not null" json:"descricao"`
	Explanation string        `gorm:"type:text" json:"explicacao"`
	Type        DimensionType `gorm:"type:varchar(20);not null" json:"tipo"`
	ModuleID    uint          `gorm:"not null;index" json:"modulo_id"`

	Questions []Question `gorm:"foreignKey:DimensionID;constraint:OnDelete:CASCADE" json:"perguntas,omitempty"`
}

type Question struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Text        string `gorm:"type:text;not null" json:"pergunta"`
	Weight      int    `gorm:"not null;default:1" json:"peso"`
	DimensionID uint   `gorm:"not null;index" json:"dimensao_id"`
}
