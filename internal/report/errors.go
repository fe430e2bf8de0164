package report

import (
	"errors"
	"fmt"
)

var ErrRender = errors.New("erro ao gerar o relatório PDF")

// RenderError encapsula qualquer falha na geração do documento ou do gráfico.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrRender.Error(), e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}
