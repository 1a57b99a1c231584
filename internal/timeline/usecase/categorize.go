package usecase

import (
	"context"
	"strings"

	"wedding-timeline/internal/timeline"
)

// Categorize classifies one todo.
func (uc *implUseCase) Categorize(ctx context.Context, input timeline.CategorizeInput) (timeline.CategorizeOutput, error) {
	if strings.TrimSpace(input.Todo.Text) == "" {
		return timeline.CategorizeOutput{}, timeline.ErrEmptyTodoText
	}

	smart := uc.engine.Categorize(input.Todo)
	uc.l.Debugf(ctx, "Categorize: %q -> %s (%s)", input.Todo.Text, smart.AICategory, smart.UrgencyLevel)

	return timeline.CategorizeOutput{Todo: smart}, nil
}

// GroupTodos maps todos onto phases. Every phase is present in the output.
func (uc *implUseCase) GroupTodos(ctx context.Context, input timeline.GroupTodosInput) (timeline.GroupTodosOutput, error) {
	groups := uc.engine.CategorizeExisting(input.Todos)
	uc.l.Debugf(ctx, "GroupTodos: %d todos into %d phases", len(input.Todos), len(groups))

	return timeline.GroupTodosOutput{Groups: groups}, nil
}
