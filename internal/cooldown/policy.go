package cooldown

import (
	"fmt"
	"time"

	util "github.com/lucalvex/hub-projeto-diag-api/internal/utils"
)

const DefaultWindow = 48 * time.Hour

type Policy struct {
	Window time.Duration
}

var Default = Policy{Window: DefaultWindow}

func New(window time.Duration) Policy {
	if window <= 0 {
		window = DefaultWindow
	}
	return Policy{Window: window}
}

// CanRetake decide se o usuário pode responder o módulo de novo. Sem resposta
// anterior a liberação é imediata e unlock volta zerado.
func (p Policy) CanRetake(last *time.Time, now time.Time) (bool, time.Time) {
	if last == nil {
		return true, time.Time{}
	}
	unlock := last.Add(p.Window)
	return !now.Before(unlock), unlock
}

func CanRetake(last *time.Time, now time.Time) (bool, time.Time) {
	return Default.CanRetake(last, now)
}

func Message(allowed bool, unlock time.Time) string {
	if allowed {
		return "Você pode responder este módulo novamente."
	}
	return fmt.Sprintf("Você só poderá responder novamente após %s.", util.FormatDateTimeBR(unlock))
}

// ActiveError indica que o módulo ainda está bloqueado para o usuário.
type ActiveError struct {
	UnlockAt time.Time
}

func (e *ActiveError) Error() string {
	return Message(false, e.UnlockAt)
}
