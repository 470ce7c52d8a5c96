package tasktui

import (
	"fmt"
	"io"
	"strings"
	"time"

	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/task"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type taskItem struct {
	task task.Task
}

func (item taskItem) FilterValue() string {
	return item.task.Name
}

type taskItemDelegate struct{}

func (d taskItemDelegate) Height() int                             { return 1 }
func (d taskItemDelegate) Spacing() int                            { return 0 }
func (d taskItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(taskItem)
	if !ok {
		return
	}

	line := formatTaskItem(item, m.Width())
	style := itemStyle
	if index == m.Index() {
		style = itemSelectedStyle
	} else if item.task.IsCompleted() {
		style = valueMuted
	}
	fmt.Fprint(w, style.Render(line))
}

func formatTaskItem(item taskItem, width int) string {
	mark := "[ ]"
	if item.task.IsCompleted() {
		mark = "[x]"
	}
	name := item.task.Name
	if internalstrings.IsBlank(name) {
		name = "(unnamed)"
	}
	line := fmt.Sprintf("%s %s  %s", mark, name, item.task.Priority)
	return truncateText(line, width)
}

type taskFieldKind int

const (
	fieldName taskFieldKind = iota
	fieldDescription
	fieldPriority
	fieldCategory
)

type taskField struct {
	kind      taskFieldKind
	label     string
	input     textinput.Model
	textarea  textarea.Model
	multiLine bool
}

func newTaskField(kind taskFieldKind, label string, value string) taskField {
	field := taskField{kind: kind, label: label}
	if kind == fieldDescription {
		area := textarea.New()
		area.SetValue(value)
		area.ShowLineNumbers = false
		area.Prompt = ""
		field.textarea = area
		field.multiLine = true
		return field
	}
	input := textinput.New()
	input.SetValue(value)
	input.Prompt = ""
	field.input = input
	return field
}

func (field taskField) Value() string {
	if field.multiLine {
		return field.textarea.Value()
	}
	return field.input.Value()
}

func (field taskField) Focus() taskField {
	if field.multiLine {
		field.textarea.Focus()
		return field
	}
	field.input.Focus()
	return field
}

func (field taskField) Blur() taskField {
	if field.multiLine {
		field.textarea.Blur()
		return field
	}
	field.input.Blur()
	return field
}

func (field taskField) Update(msg tea.Msg) (taskField, tea.Cmd) {
	var cmd tea.Cmd
	if field.multiLine {
		field.textarea, cmd = field.textarea.Update(msg)
		return field, cmd
	}
	field.input, cmd = field.input.Update(msg)
	return field, cmd
}

func (field taskField) View() string {
	if field.multiLine {
		return field.textarea.View()
	}
	return field.input.View()
}

// taskDetailModel edits one task. Existing tasks expose description and
// priority; a draft is a task not yet added and also takes a name and
// category.
type taskDetailModel struct {
	task       task.Task
	isDraft    bool
	fields     []taskField
	fieldIndex int
	focused    bool
	dirty      bool
	viewport   viewport.Model
}

func newTaskDetailModel() taskDetailModel {
	return taskDetailModel{viewport: viewport.New(0, 0)}
}

func (model *taskDetailModel) SetTask(item task.Task, isDraft bool) {
	wasFocused := model.focused
	model.task = item
	model.isDraft = isDraft
	model.fields = buildTaskFields(item, isDraft)
	model.fieldIndex = 0
	model.focused = false
	model.dirty = false
	if wasFocused {
		model.focused = true
		if len(model.fields) > 0 {
			model.fields[model.fieldIndex] = model.fields[model.fieldIndex].Focus()
		}
	}
	model.SetSize(model.viewport.Width, model.viewport.Height)
	model.refreshViewport(true)
}

func (model *taskDetailModel) SetSize(width, height int) {
	inputWidth := width - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	for i, field := range model.fields {
		if field.multiLine {
			field.textarea.SetWidth(inputWidth)
			field.textarea.SetHeight(5)
		} else {
			field.input.Width = inputWidth
		}
		model.fields[i] = field
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	model.viewport.Width = width
	model.viewport.Height = height
	model.refreshViewport(false)
}

func (model *taskDetailModel) Focus() {
	if model.focused {
		return
	}
	model.focused = true
	if len(model.fields) > 0 {
		model.fields[model.fieldIndex] = model.fields[model.fieldIndex].Focus()
	}
	model.refreshViewport(false)
}

func (model *taskDetailModel) Blur() {
	model.focused = false
	for i := range model.fields {
		model.fields[i] = model.fields[i].Blur()
	}
	model.refreshViewport(false)
}

func (model taskDetailModel) IsDirty() bool {
	return model.dirty
}

// Update forwards msg to the focused field. It reports true when the user
// asked to save.
func (model taskDetailModel) Update(msg tea.Msg) (taskDetailModel, tea.Cmd, bool) {
	if !model.focused {
		return model, nil, false
	}

	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			model = model.advanceField(1)
			return model, nil, false
		case "shift+tab", "backtab":
			model = model.advanceField(-1)
			return model, nil, false
		case "ctrl+s":
			return model, nil, true
		}
		if updated, cmd, handled := model.handleViewportKey(key); handled {
			return updated, cmd, false
		}
	}

	if len(model.fields) == 0 {
		return model, nil, false
	}

	model.fields[model.fieldIndex], cmd = model.fields[model.fieldIndex].Update(msg)
	model.dirty = model.computeDirty()
	model.refreshViewport(false)
	return model, cmd, false
}

func (model taskDetailModel) advanceField(delta int) taskDetailModel {
	if len(model.fields) == 0 {
		return model
	}
	model.fields[model.fieldIndex] = model.fields[model.fieldIndex].Blur()
	model.fieldIndex = (model.fieldIndex + delta + len(model.fields)) % len(model.fields)
	model.fields[model.fieldIndex] = model.fields[model.fieldIndex].Focus()
	model.refreshViewport(false)
	return model
}

func (model taskDetailModel) computeDirty() bool {
	values := model.valuesByKind()
	if model.isDraft {
		if values[fieldName] != model.task.Name || values[fieldCategory] != model.task.Category {
			return true
		}
	}
	if values[fieldDescription] != model.task.Description {
		return true
	}
	return task.NormalizePriority(values[fieldPriority]) != model.task.Priority
}

func (model taskDetailModel) valuesByKind() map[taskFieldKind]string {
	values := make(map[taskFieldKind]string, len(model.fields))
	for _, field := range model.fields {
		values[field.kind] = field.Value()
	}
	return values
}

func (model taskDetailModel) View() string {
	return model.viewport.View()
}

func (model *taskDetailModel) handleViewportKey(key tea.KeyMsg) (taskDetailModel, tea.Cmd, bool) {
	switch key.String() {
	case "up", "down":
		if model.focused && model.currentFieldIsMultiline() {
			return *model, nil, false
		}
	case "pgup", "pgdown":
	default:
		return *model, nil, false
	}
	var cmd tea.Cmd
	model.viewport, cmd = model.viewport.Update(key)
	return *model, cmd, true
}

func (model taskDetailModel) currentFieldIsMultiline() bool {
	if len(model.fields) == 0 {
		return false
	}
	return model.fields[model.fieldIndex].multiLine
}

func (model *taskDetailModel) refreshViewport(reset bool) {
	model.viewport.SetContent(model.renderContent())
	if reset {
		model.viewport.GotoTop()
	}
}

func (model taskDetailModel) renderContent() string {
	if model.task.ID == "" && !model.isDraft {
		return valueMuted.Render("No task selected")
	}

	lines := make([]string, 0, len(model.fields)+8)
	lines = append(lines, labelStyle.Render("Editable"))
	for _, field := range model.fields {
		if field.multiLine {
			lines = append(lines, fmt.Sprintf("%s:", labelStyle.Render(field.label)))
			lines = append(lines, field.View())
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", labelStyle.Render(field.label), field.View()))
	}

	if !model.isDraft {
		lines = append(lines, "")
		lines = append(lines, labelStyle.Render("Read-only"))
		lines = append(lines, formatDetailRow("Name", model.task.Name))
		lines = append(lines, formatDetailRow("ID", model.task.ID))
		lines = append(lines, formatDetailRow("Status", string(model.task.Status)))
		lines = append(lines, formatDetailRow("Category", model.task.Category))
		lines = append(lines, formatDetailRow("Created", formatOptionalTime(model.task.CreatedAt)))
		lines = append(lines, formatDetailRow("Completed", formatTimePtr(model.task.CompletedAt)))
	}

	content := strings.Join(lines, "\n")
	width := model.viewport.Width
	if width <= 0 {
		return content
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}

// draftValues returns the name, description, priority and category typed
// into a draft.
func (model taskDetailModel) draftValues() (string, string, string, string) {
	values := model.valuesByKind()
	return strings.TrimSpace(values[fieldName]),
		values[fieldDescription],
		strings.TrimSpace(values[fieldPriority]),
		strings.TrimSpace(values[fieldCategory])
}

// editValues returns the description and priority of an existing task.
func (model taskDetailModel) editValues() (string, task.Priority) {
	values := model.valuesByKind()
	return values[fieldDescription], task.NormalizePriority(values[fieldPriority])
}

func buildTaskFields(item task.Task, isDraft bool) []taskField {
	if isDraft {
		return []taskField{
			newTaskField(fieldName, "Name", item.Name),
			newTaskField(fieldDescription, "Description", item.Description),
			newTaskField(fieldPriority, "Priority", string(item.Priority)),
			newTaskField(fieldCategory, "Category", item.Category),
		}
	}
	return []taskField{
		newTaskField(fieldDescription, "Description", item.Description),
		newTaskField(fieldPriority, "Priority", string(item.Priority)),
	}
}

func formatDetailRow(label, value string) string {
	return fmt.Sprintf("%s: %s", labelStyle.Render(label), valueMuted.Render(valueOrDash(value)))
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}

func formatOptionalTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("2006-01-02 15:04:05")
}

func formatTimePtr(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return formatOptionalTime(*value)
}

func valueOrDash(value string) string {
	if internalstrings.IsBlank(value) {
		return "-"
	}
	return value
}
