package checklist

// Checkbox is one "- [ ] text" line of a Markdown checklist.
type Checkbox struct {
	Index   int
	Indent  string
	Checked bool
	Text    string
	RawLine string // as read, before sanitizing
}

// ChecklistStats counts ticked and open boxes. Progress is 0..100.
type ChecklistStats struct {
	Total     int
	Completed int
	Pending   int
	Progress  float64
}

// UpdateCheckboxInput ticks or unticks every box whose text contains
// CheckboxText, case-insensitively.
type UpdateCheckboxInput struct {
	Content      string
	CheckboxText string
	Checked      bool
}

type UpdateCheckboxOutput struct {
	Content string
	Updated bool
	Count   int // boxes touched
}
