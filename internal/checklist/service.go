package checklist

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"wedding-timeline/internal/model"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Regex pattern: captures indent, checkbox state, and text
	// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
	CheckboxPattern = `(?m)^([ \t]*)- \[([ xX])\] (.+)$`
)

// ErrEmptySearchText is returned when UpdateCheckbox has nothing to match.
var ErrEmptySearchText = errors.New("checkbox text is empty")

var (
	fencedCodeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern      = regexp.MustCompile("`[^`]+`")
)

// Service reads and writes the Markdown checklists couples keep their todos in.
type Service interface {
	// ParseCheckboxes extracts all checkboxes from markdown content
	ParseCheckboxes(content string) []Checkbox

	// Todos converts the checkboxes of a checklist into todo items.
	// IDs are the 1-based checkbox positions.
	Todos(content string) []model.TodoItem

	// GetStats calculates checklist statistics
	GetStats(content string) ChecklistStats

	// UpdateCheckbox updates checkbox state by text match
	UpdateCheckbox(input UpdateCheckboxInput) (UpdateCheckboxOutput, error)

	// Render writes checkboxes back as a Markdown checklist.
	Render(checkboxes []Checkbox) string
}

type service struct {
	pattern *regexp.Regexp
}

func New() Service {
	return &service{
		pattern: regexp.MustCompile(CheckboxPattern),
	}
}

// sanitizeContent removes code blocks before checkbox parsing
func sanitizeContent(content string) string {
	sanitized := fencedCodeBlockPattern.ReplaceAllString(content, "")
	return inlineCodePattern.ReplaceAllString(sanitized, "")
}

// ParseCheckboxes extracts all checkboxes from markdown
func (s *service) ParseCheckboxes(content string) []Checkbox {
	sanitized := sanitizeContent(strings.ReplaceAll(content, "\r\n", "\n"))

	matches := s.pattern.FindAllStringSubmatch(sanitized, -1)
	checkboxes := make([]Checkbox, 0, len(matches))

	for _, match := range matches {
		if len(match) != 4 {
			continue
		}

		checkboxes = append(checkboxes, Checkbox{
			Index:   len(checkboxes),
			Indent:  match[1],
			Checked: strings.ToLower(match[2]) == "x",
			Text:    strings.TrimSpace(match[3]),
			RawLine: match[0],
		})
	}

	return checkboxes
}

func (s *service) Todos(content string) []model.TodoItem {
	checkboxes := s.ParseCheckboxes(content)
	todos := make([]model.TodoItem, 0, len(checkboxes))
	for _, cb := range checkboxes {
		todos = append(todos, model.TodoItem{
			ID:        model.TodoID(strconv.Itoa(cb.Index + 1)),
			Text:      cb.Text,
			Completed: cb.Checked,
		})
	}
	return todos
}

// GetStats calculates checklist statistics
func (s *service) GetStats(content string) ChecklistStats {
	checkboxes := s.ParseCheckboxes(content)
	total := len(checkboxes)
	if total == 0 {
		return ChecklistStats{}
	}

	completed := 0
	for _, cb := range checkboxes {
		if cb.Checked {
			completed++
		}
	}

	return ChecklistStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

// UpdateCheckbox updates checkbox state by text match (partial match)
func (s *service) UpdateCheckbox(input UpdateCheckboxInput) (UpdateCheckboxOutput, error) {
	searchText := strings.ToLower(strings.TrimSpace(input.CheckboxText))
	if searchText == "" {
		return UpdateCheckboxOutput{Content: input.Content}, ErrEmptySearchText
	}
	if input.Content == "" {
		return UpdateCheckboxOutput{Content: input.Content}, nil
	}

	lines := strings.Split(input.Content, "\n")
	count := 0

	for i, line := range lines {
		matches := s.pattern.FindStringSubmatch(line)
		if len(matches) != 4 {
			continue
		}

		if !strings.Contains(strings.ToLower(matches[3]), searchText) {
			continue
		}

		state := CheckboxUnchecked
		if input.Checked {
			state = CheckboxChecked
		}
		lines[i] = matches[1] + state + " " + matches[3]
		count++
	}

	return UpdateCheckboxOutput{
		Content: strings.Join(lines, "\n"),
		Updated: count > 0,
		Count:   count,
	}, nil
}

func (s *service) Render(checkboxes []Checkbox) string {
	var b strings.Builder
	for _, cb := range checkboxes {
		state := CheckboxUnchecked
		if cb.Checked {
			state = CheckboxChecked
		}
		b.WriteString(cb.Indent)
		b.WriteString(state)
		b.WriteString(" ")
		b.WriteString(strings.TrimSpace(cb.Text))
		b.WriteString("\n")
	}
	return b.String()
}
