package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-timeline/internal/model"
)

const sample = "# Wedding\n\n" +
	"- [x] Book our venue\n" +
	"- [ ] Hire photographer\n" +
	"  - [X] Shortlist three studios\n" +
	"\n```\n- [ ] not a real task\n```\n" +
	"- [ ] Order invitations\n"

func TestParseCheckboxes(t *testing.T) {
	got := New().ParseCheckboxes(sample)
	require.Len(t, got, 4)

	assert.True(t, got[0].Checked)
	assert.Equal(t, "Book our venue", got[0].Text)
	assert.Equal(t, "  ", got[2].Indent)
	assert.True(t, got[2].Checked)
	assert.Equal(t, 3, got[3].Index)
	assert.Equal(t, "Order invitations", got[3].Text)
}

func TestTodos(t *testing.T) {
	got := New().Todos(sample)
	require.Len(t, got, 4)

	assert.Equal(t, model.TodoItem{ID: "1", Text: "Book our venue", Completed: true}, got[0])
	assert.Equal(t, model.TodoID("4"), got[3].ID)
	assert.Empty(t, New().Todos("no checkboxes here"))
}

func TestGetStats(t *testing.T) {
	stats := New().GetStats(sample)
	assert.Equal(t, ChecklistStats{Total: 4, Completed: 2, Pending: 2, Progress: 50}, stats)

	assert.Equal(t, ChecklistStats{}, New().GetStats(""))
}

func TestUpdateCheckbox(t *testing.T) {
	svc := New()

	t.Run("partial match", func(t *testing.T) {
		out, err := svc.UpdateCheckbox(UpdateCheckboxInput{Content: sample, CheckboxText: "photographer", Checked: true})
		require.NoError(t, err)
		assert.True(t, out.Updated)
		assert.Equal(t, 1, out.Count)
		assert.Contains(t, out.Content, "- [x] Hire photographer")
	})

	t.Run("uncheck keeps indent", func(t *testing.T) {
		out, err := svc.UpdateCheckbox(UpdateCheckboxInput{Content: sample, CheckboxText: "shortlist", Checked: false})
		require.NoError(t, err)
		assert.Contains(t, out.Content, "  - [ ] Shortlist three studios")
	})

	t.Run("no match", func(t *testing.T) {
		out, err := svc.UpdateCheckbox(UpdateCheckboxInput{Content: sample, CheckboxText: "florist", Checked: true})
		require.NoError(t, err)
		assert.False(t, out.Updated)
		assert.Equal(t, sample, out.Content)
	})

	t.Run("empty search", func(t *testing.T) {
		_, err := svc.UpdateCheckbox(UpdateCheckboxInput{Content: sample, CheckboxText: " "})
		assert.ErrorIs(t, err, ErrEmptySearchText)
	})
}

func TestRender(t *testing.T) {
	svc := New()
	out := svc.Render([]Checkbox{
		{Text: "Book wedding venue"},
		{Text: "Set wedding budget", Checked: true},
	})
	assert.Equal(t, "- [ ] Book wedding venue\n- [x] Set wedding budget\n", out)

	back := svc.ParseCheckboxes(out)
	require.Len(t, back, 2)
	assert.True(t, back[1].Checked)
}
