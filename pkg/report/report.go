// Package report renders a categorization pass for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harrisonrobin/habitick/pkg/categorize"
	"github.com/harrisonrobin/habitick/pkg/colors"
	"github.com/harrisonrobin/habitick/pkg/habitica"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	damageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	skippedStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

var typeOrder = []struct {
	taskType string
	heading  string
	statuses []categorize.Status
}{
	{habitica.TypeHabit, "Habits", []categorize.Status{categorize.StatusNone}},
	{habitica.TypeDaily, "Dailies", []categorize.Status{
		categorize.StatusDue, categorize.StatusDone, categorize.StatusGrey,
	}},
	{habitica.TypeTodo, "To Do", []categorize.Status{
		categorize.StatusExpired, categorize.StatusDue, categorize.StatusGrey,
	}},
	{habitica.TypeReward, "Rewards", []categorize.Status{categorize.StatusNone}},
}

// Render formats the buckets section by section, due work first within each
// type. Types with no tasks are omitted.
func Render(result *categorize.Result) string {
	var b strings.Builder

	for _, section := range typeOrder {
		byStatus, ok := result.Buckets[section.taskType]
		if !ok {
			continue
		}

		b.WriteString(headerStyle.Render(section.heading))
		b.WriteString("\n")

		for _, status := range section.statuses {
			tasks := byStatus[status]
			if len(tasks) == 0 {
				continue
			}
			if status != categorize.StatusNone {
				b.WriteString(statusStyle.Render(string(status)))
				b.WriteString("\n")
			}
			for i := range tasks {
				writeTask(&b, &tasks[i])
			}
		}
		b.WriteString("\n")
	}

	if result.Skipped > 0 {
		line := fmt.Sprintf("(%d record(s) skipped)", result.Skipped)
		b.WriteString(skippedStyle.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func writeTask(b *strings.Builder, task *categorize.ProcessedTask) {
	b.WriteString("  • ")
	b.WriteString(colors.Style(task.Bucket).Render(task.Text))

	if task.Direction != "" && task.Direction != categorize.DirectionNone {
		b.WriteString(dimStyle.Render(" [" + task.Direction + "]"))
	}
	if len(task.Tags) > 0 {
		b.WriteString(dimStyle.Render(" #" + strings.Join(task.Tags, " #")))
	}
	if task.ChecklistTotal > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d/%d)", task.ChecklistDone, task.ChecklistTotal)))
	}
	if task.Streak > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf(" streak %d", task.Streak)))
	}
	if task.ToUser > 0 {
		dmg := fmt.Sprintf(" -%.2f HP", task.ToUser)
		if task.ToParty > 0 {
			dmg += fmt.Sprintf(" / -%.1f party", task.ToParty)
		}
		b.WriteString(damageStyle.Render(dmg))
	}
	b.WriteString("\n")
}
