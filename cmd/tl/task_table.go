package main

import (
	"time"

	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/task"
)

func formatTaskTable(tasks []task.Task, styles ui.Styles, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "NAME", "PRIORITY", "STATUS", "CATEGORY", "AGE"}, len(tasks)).
		WithHeaderStyle(styles.Label)

	prefixLengths := taskIDPrefixLengths(tasks)
	for _, t := range tasks {
		builder.AddRow(
			highlight(t.ID, ui.PrefixLength(prefixLengths, t.ID)),
			ui.TruncateTableCell(t.Name),
			string(t.Priority),
			string(t.Status),
			ui.TruncateTableCell(t.Category),
			ui.FormatAge(t.CreatedAt, now),
		)
	}

	return builder.String()
}

func taskIDPrefixLengths(tasks []task.Task) map[string]int {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ui.UniqueIDPrefixLengths(ids)
}
