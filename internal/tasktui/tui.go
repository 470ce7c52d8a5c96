// Package tasktui is a full-screen browser for a task tracker.
//
// It shows two tabs: the tasks in insertion order and the action history,
// most recent first. Every change goes through the tracker, so the history
// records TUI edits the same way it records menu and shell edits.
package tasktui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/task"
	"github.com/amonks/tasklist/tracker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrNoTracker is returned by Run when no tracker is given.
var ErrNoTracker = errors.New("tracker is required")

// Options configures the browser.
type Options struct {
	// DefaultPriority and DefaultCategory prefill new tasks.
	DefaultPriority task.Priority
	DefaultCategory string

	// Input and Output default to the process's stdin and stdout.
	Input  io.Reader
	Output io.Writer
}

type tabKind int

const (
	tabTasks tabKind = iota
	tabHistory
)

type focusPane int

const (
	focusList focusPane = iota
	focusDetail
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalDeleteTask
	modalDiscardEdits
	modalClearHistory
)

type model struct {
	tracker        *tracker.Tracker
	opts           Options
	width          int
	height         int
	activeTab      tabKind
	focus          focusPane
	taskList       list.Model
	actionList     list.Model
	taskDetail     taskDetailModel
	actionDetail   actionDetailModel
	modal          confirmModal
	status         string
	statusLevel    statusLevel
	selectedTaskID string
}

type confirmModal struct {
	kind        modalKind
	message     string
	confirmText string
	cancelText  string
	selected    int
	taskName    string
}

// Run shows the browser until the user quits or ctx is cancelled.
func Run(ctx context.Context, t *tracker.Tracker, opts Options) error {
	if t == nil {
		return ErrNoTracker
	}
	if ctx == nil {
		ctx = context.Background()
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	program := tea.NewProgram(newModel(t, opts), programOpts...)
	_, err := program.Run()
	return err
}

func newModel(t *tracker.Tracker, opts Options) model {
	taskList := newList("Tasks", taskItemDelegate{})
	actionList := newList("History", actionItemDelegate{})

	m := model{
		tracker:      t,
		opts:         opts,
		activeTab:    tabTasks,
		focus:        focusList,
		taskList:     taskList,
		actionList:   actionList,
		taskDetail:   newTaskDetailModel(),
		actionDetail: newActionDetailModel(),
		modal:        confirmModal{kind: modalNone},
	}
	m.reload()
	return m
}

func newList(title string, delegate list.ItemDelegate) list.Model {
	l := list.New(nil, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	return l
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal.kind != modalNone {
		return m.updateModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		updated, cmd, handled := m.handleKey(msg)
		if handled {
			return updated, cmd
		}
		m = updated
	}

	var cmd tea.Cmd
	if m.activeTab == tabTasks {
		m, cmd = m.updateTasksTab(msg)
	} else {
		m, cmd = m.updateHistoryTab(msg)
	}
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading tasks..."
	}
	helpLine := m.renderHelpLine()
	statusLine := m.renderStatusLine()
	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	leftWidth, rightWidth := splitWidths(m.width)

	listContent := m.taskList.View()
	detailContent := m.taskDetail.View()
	if m.activeTab == tabHistory {
		listContent = m.actionList.View()
		detailContent = m.actionDetail.View()
		if len(m.actionList.Items()) == 0 {
			listContent = valueMuted.Render("No action history!")
		}
	} else if len(m.taskList.Items()) == 0 && !m.taskDetail.isDraft {
		listContent = valueMuted.Render("No tasks yet! Press a to add one.")
	}

	listPane := m.renderPane(listContent, leftWidth, contentHeight, m.focus == focusList)
	detailPane := m.renderPane(detailContent, rightWidth, contentHeight, m.focus == focusDetail)
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	view := strings.Join([]string{m.renderTabs(), helpLine, content, statusLine}, "\n")
	if m.modal.kind != modalNone {
		view = m.renderModalOverlay(view)
	}
	return view
}

func (m model) updateTasksTab(msg tea.Msg) (model, tea.Cmd) {
	if m.focus == focusList {
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		m.updateTaskSelection(false)
		return m, cmd
	}

	updated, cmd, saveRequested := m.taskDetail.Update(msg)
	m.taskDetail = updated
	if saveRequested {
		return m.saveTask(), cmd
	}
	return m, cmd
}

func (m model) updateHistoryTab(msg tea.Msg) (model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusList {
		m.actionList, cmd = m.actionList.Update(msg)
		m.updateActionSelection()
		return m, cmd
	}
	m.actionDetail, cmd = m.actionDetail.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit, true
	}

	// The detail pane owns every other key so that text can be typed.
	if m.focus == focusDetail {
		if key == "esc" {
			return m.exitDetail(), nil, true
		}
		return m, nil, false
	}

	switch key {
	case "?":
		return m.openHelp(), nil, true
	case "q":
		return m, tea.Quit, true
	}

	if updated, handled := m.handleListNavigation(key); handled {
		return updated, nil, true
	}

	switch key {
	case "tab", "shift+tab", "backtab", "[", "]":
		return m.switchTab(), nil, true
	case "1":
		return m.activateTab(tabTasks), nil, true
	case "2":
		return m.activateTab(tabHistory), nil, true
	case "enter":
		return m.enterDetail(), nil, true
	}

	if m.activeTab == tabTasks {
		switch key {
		case "a":
			return m.startTaskDraft(), nil, true
		case "x", " ", "space":
			return m.completeSelected(), nil, true
		case "d", "delete":
			return m.promptDeleteTask(), nil, true
		}
		return m, nil, false
	}

	switch key {
	case "p":
		return m.popHistory(), nil, true
	case "C":
		return m.promptClearHistory(), nil, true
	}
	return m, nil, false
}

func (m model) switchTab() model {
	if m.activeTab == tabTasks {
		return m.activateTab(tabHistory)
	}
	return m.activateTab(tabTasks)
}

func (m model) activateTab(target tabKind) model {
	if target == m.activeTab {
		return m
	}
	if m.focus == focusDetail {
		m = m.setFocus(focusList)
	}
	m.activeTab = target
	if target == tabHistory {
		m.updateActionSelection()
	} else {
		m.updateTaskSelection(true)
	}
	return m
}

func (m model) enterDetail() model {
	if m.activeTab == tabTasks {
		if _, ok := m.currentTaskItem(); !ok {
			m.setStatus("No tasks yet!", statusError)
			return m
		}
	} else if len(m.actionList.Items()) == 0 {
		m.setStatus("No action history!", statusError)
		return m
	}
	return m.setFocus(focusDetail)
}

func (m model) exitDetail() model {
	if m.activeTab == tabTasks && m.taskDetail.IsDirty() {
		m.modal = confirmModal{
			kind:        modalDiscardEdits,
			message:     "Discard unsaved changes?",
			confirmText: "Discard",
			cancelText:  "Keep editing",
			selected:    1,
		}
		return m
	}
	return m.leaveDetail()
}

// leaveDetail returns focus to the list, dropping any draft.
func (m model) leaveDetail() model {
	m = m.setFocus(focusList)
	if m.activeTab == tabTasks {
		m.updateTaskSelection(true)
	}
	return m
}

func (m model) setFocus(target focusPane) model {
	if m.focus == target {
		return m
	}
	m.focus = target
	if m.activeTab == tabTasks {
		if target == focusDetail {
			m.taskDetail.Focus()
		} else {
			m.taskDetail.Blur()
		}
	}
	return m
}

func (m model) startTaskDraft() model {
	draft := task.Task{
		Priority: m.opts.DefaultPriority,
		Category: m.opts.DefaultCategory,
	}
	m.taskDetail.SetTask(draft, true)
	m.setStatus("Adding a new task", statusInfo)
	return m.setFocus(focusDetail)
}

func (m model) saveTask() model {
	if m.taskDetail.isDraft {
		name, description, priority, category := m.taskDetail.draftValues()
		if name == "" {
			m.setStatus("Task name is required", statusError)
			return m
		}
		newPriority := m.opts.DefaultPriority
		if priority != "" {
			newPriority = task.NormalizePriority(priority)
		}
		if category == "" {
			category = m.opts.DefaultCategory
		}

		created := m.tracker.Add(name, description, newPriority, category)
		m.selectedTaskID = created.ID
		m = m.setFocus(focusList)
		m.reload()
		m.setStatus("Task added successfully!", statusInfo)
		return m
	}

	if !m.isFirstWithName(m.taskDetail.task) {
		m.setStatus(shadowedMessage(m.taskDetail.task), statusError)
		return m
	}
	description, priority := m.taskDetail.editValues()
	if err := m.tracker.Edit(m.taskDetail.task.Name, description, priority); err != nil {
		m.setStatus(fmt.Sprintf("Edit failed: %v", err), statusError)
		return m
	}
	m = m.setFocus(focusList)
	m.reload()
	m.setStatus("Task updated successfully!", statusInfo)
	return m
}

func (m model) completeSelected() model {
	item, ok := m.currentTaskItem()
	if !ok {
		m.setStatus("No tasks yet!", statusError)
		return m
	}
	if !m.isFirstWithName(item.task) {
		m.setStatus(shadowedMessage(item.task), statusError)
		return m
	}
	if err := m.tracker.Complete(item.task.Name); err != nil {
		m.setStatus(fmt.Sprintf("Mark failed: %v", err), statusError)
		return m
	}
	m.reload()
	m.setStatus("Task marked as completed!", statusInfo)
	return m
}

func (m model) promptDeleteTask() model {
	item, ok := m.currentTaskItem()
	if !ok {
		m.setStatus("No tasks to delete!", statusError)
		return m
	}
	if !m.isFirstWithName(item.task) {
		m.setStatus(shadowedMessage(item.task), statusError)
		return m
	}
	m.modal = confirmModal{
		kind:        modalDeleteTask,
		message:     fmt.Sprintf("Delete task %q?", item.task.Name),
		confirmText: "Delete",
		cancelText:  "Cancel",
		selected:    1,
		taskName:    item.task.Name,
	}
	return m
}

func (m model) deleteTask(name string) model {
	if err := m.tracker.Delete(name); err != nil {
		m.setStatus(fmt.Sprintf("Delete failed: %v", err), statusError)
		return m
	}
	m.reload()
	m.setStatus("Task deleted successfully!", statusInfo)
	return m
}

// isFirstWithName reports whether the tracker resolves t's name to t itself.
// Name-keyed mutations only ever reach the first task with a given name.
func (m model) isFirstWithName(t task.Task) bool {
	found, ok := m.tracker.Lookup(t.Name)
	return ok && found.ID == t.ID
}

func shadowedMessage(t task.Task) string {
	return fmt.Sprintf("An earlier task is also named %q; only the first one can be changed", t.Name)
}

func (m model) popHistory() model {
	action, ok := m.tracker.PopHistory()
	if !ok {
		m.setStatus("No action history!", statusError)
		return m
	}
	m.reload()
	m.setStatus("Removed from history: "+action.String(), statusInfo)
	return m
}

func (m model) promptClearHistory() model {
	if len(m.actionList.Items()) == 0 {
		m.setStatus("No action history!", statusError)
		return m
	}
	m.modal = confirmModal{
		kind:        modalClearHistory,
		message:     "Clear the whole action history?",
		confirmText: "Clear",
		cancelText:  "Cancel",
		selected:    1,
	}
	return m
}

// reload rebuilds both lists from the tracker, keeping the selected task
// where possible.
func (m *model) reload() {
	tasks := m.tracker.List()
	items := make([]list.Item, 0, len(tasks))
	for _, item := range tasks {
		items = append(items, taskItem{task: item})
	}
	index := m.taskList.Index()
	m.taskList.SetItems(items)
	if !m.selectTaskByID(m.selectedTaskID) && len(items) > 0 {
		m.taskList.Select(min(max(index, 0), len(items)-1))
	}
	if m.focus == focusList || m.activeTab != tabTasks {
		m.updateTaskSelection(true)
	}

	actions := m.tracker.History()
	actionItems := make([]list.Item, 0, len(actions))
	for i, action := range actions {
		actionItems = append(actionItems, actionItem{action: action, position: i + 1})
	}
	m.actionList.SetItems(actionItems)
	if len(actionItems) > 0 {
		m.actionList.Select(0)
	}
	m.updateActionSelection()
}

func (m *model) updateTaskSelection(force bool) {
	item, ok := m.currentTaskItem()
	selectedID := ""
	if ok {
		selectedID = item.task.ID
	}
	if !force && ok && selectedID == m.selectedTaskID {
		return
	}
	if ok {
		m.taskDetail.SetTask(item.task, false)
	} else {
		m.taskDetail.SetTask(task.Task{}, false)
	}
	m.selectedTaskID = selectedID
}

func (m *model) updateActionSelection() {
	item, ok := m.currentActionItem()
	m.actionDetail.SetAction(item.action, ok)
}

func (m model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.modal.kind == modalHelp {
		switch key.String() {
		case "?", "esc":
			m.modal = confirmModal{kind: modalNone}
			return m, nil
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		return m, nil
	}
	switch key.String() {
	case "left", "right", "tab", "shift+tab", "backtab":
		m.modal.selected = 1 - m.modal.selected
		return m, nil
	case "y":
		return m.resolveModal(true)
	case "n":
		return m.resolveModal(false)
	case "enter":
		return m.resolveModal(m.modal.selected == 0)
	case "esc":
		return m.resolveModal(false)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) resolveModal(confirm bool) (tea.Model, tea.Cmd) {
	modal := m.modal
	m.modal = confirmModal{kind: modalNone}
	if !confirm {
		return m, nil
	}
	switch modal.kind {
	case modalDeleteTask:
		return m.deleteTask(modal.taskName), nil
	case modalDiscardEdits:
		m = m.leaveDetail()
		m.setStatus("Edits discarded", statusInfo)
		return m, nil
	case modalClearHistory:
		m.tracker.ClearHistory()
		m.reload()
		m.setStatus("History cleared", statusInfo)
		return m, nil
	default:
		return m, nil
	}
}

func (m model) currentTaskItem() (taskItem, bool) {
	item := m.taskList.SelectedItem()
	if item == nil {
		return taskItem{}, false
	}
	current, ok := item.(taskItem)
	return current, ok
}

func (m model) currentActionItem() (actionItem, bool) {
	item := m.actionList.SelectedItem()
	if item == nil {
		return actionItem{}, false
	}
	current, ok := item.(actionItem)
	return current, ok
}

func (m *model) selectTaskByID(id string) bool {
	if id == "" {
		return false
	}
	for i, item := range m.taskList.Items() {
		if current, ok := item.(taskItem); ok && current.task.ID == id {
			m.taskList.Select(i)
			return true
		}
	}
	return false
}

func (m *model) resize() {
	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	leftWidth, rightWidth := splitWidths(m.width)
	listHeight := max(contentHeight-2, 1)
	listWidth := max(leftWidth-4, 1)
	innerDetailWidth := max(rightWidth-4, 1)
	innerDetailHeight := max(contentHeight-2, 1)
	m.taskList.SetSize(listWidth, listHeight)
	m.actionList.SetSize(listWidth, listHeight)
	m.taskDetail.SetSize(innerDetailWidth, innerDetailHeight)
	m.actionDetail.SetSize(innerDetailWidth, innerDetailHeight)
}

func splitWidths(width int) (int, int) {
	left := width / 3
	if left < 30 {
		left = 30
	}
	if left > width-20 {
		left = width / 2
	}
	right := width - left
	if right < 20 {
		right = 20
		left = width - right
	}
	return left, right
}

func (m model) renderTabs() string {
	labels := []string{"[1] Tasks", fmt.Sprintf("[2] History (%d)", m.tracker.HistoryLen())}
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := tabInactiveStyle
		if tabKind(i) == m.activeTab {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	summary := m.tracker.Summary()
	hint := fmt.Sprintf("%d/%d done", summary.Completed, summary.Total)
	if summary.HasTasks() {
		hint += fmt.Sprintf(" (%d%%)", summary.CompletionRate)
	}
	helpHint := valueMuted.Render(hint + " | Press ? for help")
	spacerWidth := max(m.width-lipgloss.Width(content)-lipgloss.Width(helpHint), 1)
	spacer := strings.Repeat(" ", spacerWidth)
	return tabBarStyle.Width(m.width).Render(content + spacer + helpHint)
}

func (m model) renderPane(content string, width, height int, focused bool) string {
	style := paneStyle
	if focused {
		style = paneActiveStyle
	}
	return style.Width(max(width, 0)).Height(max(height, 0)).Render(content)
}

func (m model) renderStatusLine() string {
	if internalstrings.IsBlank(m.status) {
		return ""
	}
	style := valueMuted
	switch m.statusLevel {
	case statusError:
		style = statusErrorStyle
	case statusInfo:
		style = statusSuccessStyle
	}
	return style.Render(m.status)
}

func (m model) renderHelpLine() string {
	text := strings.TrimSpace(m.helpSummary())
	if text == "" {
		return ""
	}
	return helpBarStyle.Width(m.width).Render(truncateText(text, m.width))
}

func (m model) helpSummary() string {
	if m.activeTab == tabTasks {
		if m.focus == focusDetail {
			return "Keys: tab next field | shift+tab prev | ctrl+s save | esc back"
		}
		return "Keys: up/down move | enter edit | a add | x complete | d delete | tab history | ? help | q quit"
	}
	if m.focus == focusDetail {
		return "Keys: up/down/pgup/pgdown scroll | esc back"
	}
	return "Keys: up/down move | enter detail | p pop | C clear | tab tasks | ? help | q quit"
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m model) renderModalOverlay(content string) string {
	if m.modal.kind == modalNone {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
}

func (m model) modalView() string {
	modalStyle := lipgloss.NewStyle().Border(borderASCII).Padding(1, 2)
	if m.modal.kind == modalHelp {
		return modalStyle.Render(m.helpContent())
	}
	options := []string{m.modal.confirmText, m.modal.cancelText}
	buttons := make([]string, 0, len(options))
	for i, option := range options {
		style := valueMuted
		if i == m.modal.selected {
			style = selectedButton
		}
		buttons = append(buttons, style.Render("["+option+"]"))
	}
	content := strings.Join([]string{m.modal.message, "", strings.Join(buttons, " ")}, "\n")
	return modalStyle.Render(content)
}

func (m model) handleListNavigation(key string) (model, bool) {
	switch key {
	case "up", "k":
		return m.moveListSelection(-1), true
	case "down", "j":
		return m.moveListSelection(1), true
	case "home", "g":
		return m.moveListSelection(-len(m.activeItems())), true
	case "end", "G":
		return m.moveListSelection(len(m.activeItems())), true
	}
	return m, false
}

func (m model) moveListSelection(delta int) model {
	items := m.activeItems()
	if len(items) == 0 {
		return m
	}
	current := max(m.activeIndex(), 0)
	next := min(max(current+delta, 0), len(items)-1)
	if next == current {
		return m
	}
	if m.activeTab == tabTasks {
		m.taskList.Select(next)
		m.updateTaskSelection(false)
		return m
	}
	m.actionList.Select(next)
	m.updateActionSelection()
	return m
}

func (m model) activeItems() []list.Item {
	if m.activeTab == tabHistory {
		return m.actionList.Items()
	}
	return m.taskList.Items()
}

func (m model) activeIndex() int {
	if m.activeTab == tabHistory {
		return m.actionList.Index()
	}
	return m.taskList.Index()
}

func (m model) openHelp() model {
	m.modal = confirmModal{kind: modalHelp}
	return m
}

func (m model) helpContent() string {
	sections := []string{
		labelStyle.Render("Global"),
		"q or ctrl+c: quit",
		"[ or ] / 1 or 2 / tab: switch tabs",
		"?: toggle help",
		"",
		labelStyle.Render("Navigation"),
		"up/down or j/k: move selection",
		"enter: focus detail pane",
		"esc: return to list",
		"",
		labelStyle.Render("Tasks"),
		"a: add task",
		"x or space: mark completed",
		"d: delete task",
		"ctrl+s: save edits",
		"tab/shift+tab: next/previous field",
		"",
		labelStyle.Render("History"),
		"p: pop the most recent action",
		"C: clear the history",
		"",
		labelStyle.Render("Help"),
		"press ? or esc to close",
	}
	return strings.Join(sections, "\n")
}
