package tasktui

import (
	"fmt"
	"io"
	"strings"

	"github.com/amonks/tasklist/history"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type actionItem struct {
	action history.Action
	// position is 1 for the most recent action.
	position int
}

func (item actionItem) FilterValue() string {
	return item.action.TaskName
}

type actionItemDelegate struct{}

func (d actionItemDelegate) Height() int                             { return 1 }
func (d actionItemDelegate) Spacing() int                            { return 0 }
func (d actionItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d actionItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(actionItem)
	if !ok {
		return
	}

	line := truncateText(fmt.Sprintf("%d. %s", item.position, item.action), m.Width())
	style := itemStyle
	if index == m.Index() {
		style = itemSelectedStyle
	}
	fmt.Fprint(w, style.Render(line))
}

type actionDetailModel struct {
	action   history.Action
	active   bool
	viewport viewport.Model
}

func newActionDetailModel() actionDetailModel {
	return actionDetailModel{viewport: viewport.New(0, 0)}
}

func (model *actionDetailModel) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	model.viewport.Width = width
	model.viewport.Height = height
}

func (model *actionDetailModel) SetAction(action history.Action, active bool) {
	model.action = action
	model.active = active
	model.viewport.SetContent(model.renderContent())
	model.viewport.GotoTop()
}

func (model actionDetailModel) Update(msg tea.Msg) (actionDetailModel, tea.Cmd) {
	var cmd tea.Cmd
	model.viewport, cmd = model.viewport.Update(msg)
	return model, cmd
}

func (model actionDetailModel) View() string {
	if !model.active {
		return valueMuted.Render("No action selected")
	}
	return model.viewport.View()
}

func (model actionDetailModel) renderContent() string {
	if !model.active {
		return ""
	}
	lines := []string{
		labelStyle.Render(model.action.String()),
		"",
		formatDetailRow("Type", string(model.action.Type)),
		formatDetailRow("Task", model.action.TaskName),
		formatDetailRow("Description", model.action.Description),
		formatDetailRow("Priority", model.action.Priority),
		formatDetailRow("Category", model.action.Category),
		formatDetailRow("Recorded", formatOptionalTime(model.action.RecordedAt)),
	}
	return strings.Join(lines, "\n")
}
