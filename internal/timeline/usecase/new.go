package usecase

import (
	"wedding-timeline/internal/timeline/engine"
	"wedding-timeline/pkg/datemath"
	pkgLog "wedding-timeline/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	engine   *engine.Engine
	dateMath *datemath.Parser
}

// New creates a new timeline UseCase instance.
func New(
	l pkgLog.Logger,
	engine *engine.Engine,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		engine:   engine,
		dateMath: dateMath,
	}
}
