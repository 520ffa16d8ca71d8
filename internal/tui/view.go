package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lovedays/internal/catalog"
	"github.com/lovedays/internal/timeline"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.form != nil {
		return m.form.View()
	}

	var content string
	switch m.state {
	case StateHome:
		content = m.viewHome()
	case StateMilestones:
		content = m.viewMilestones()
	case StateMemories:
		content = m.viewMemories()
	case StateDates:
		content = m.viewDates()
	}

	sections := []string{m.viewTabs(), content}
	if m.lastErr != "" {
		sections = append(sections, errorStyle.Render("⚠ "+m.lastErr))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Home", "Milestones", "Memories", "Dates"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	if m.couple == nil || m.startDate.IsZero() {
		return labelStyle.Render("Loading...")
	}

	elapsed := timeline.ElapsedSince(m.startDate, m.now)
	breakdown := timeline.FormatBreakdown(elapsed)
	progress := timeline.TrackMilestones(elapsed.Days, catalog.Milestones())

	names := namesStyle.Render(fmt.Sprintf("%s ❤ %s", m.couple.Partner1Name, m.couple.Partner2Name))

	counter := counterStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		fmt.Sprintf("%d ngày", elapsed.Days),
		labelStyle.Render(fmt.Sprintf("%d năm %d tháng %d ngày",
			breakdown.Years, breakdown.RemainingMonths, breakdown.RemainingDays)),
		labelStyle.Render(fmt.Sprintf("%02d:%02d:%02d",
			breakdown.DisplayHours, breakdown.DisplayMinutes, breakdown.DisplaySeconds)),
	))

	var milestone string
	if progress.Next != nil {
		milestone = lipgloss.JoinVertical(lipgloss.Left,
			labelStyle.Render(fmt.Sprintf("Next: %s %s in %d days",
				progress.Next.Icon, progress.Next.Label, progress.DaysRemaining)),
			m.milestoneBar.ViewAs(progress.ProgressFraction),
		)
	} else {
		milestone = reachedStyle.Render("All milestones reached")
	}

	sections := []string{names, counter, milestone}
	if m.quote != "" {
		sections = append(sections, quoteStyle.Render("“"+m.quote+"”"))
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m Model) viewMilestones() string {
	if m.milestones == nil {
		return labelStyle.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("%d/%d reached (%d%%)",
		m.milestones.ReachedCount, m.milestones.TotalCount, m.milestones.ProgressPercent)))
	b.WriteString("\n\n")

	for _, entry := range m.milestones.Milestones {
		line := fmt.Sprintf("%s %s (%d days)", entry.Icon, entry.Label, entry.Days)
		switch {
		case entry.IsToday:
			b.WriteString(todayStyle.Render("★ " + line + " · today!"))
		case entry.Reached:
			b.WriteString(reachedStyle.Render("✓ " + line))
		default:
			b.WriteString(labelStyle.Render(fmt.Sprintf("  %s · in %d days", line, entry.DaysRemaining)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewMemories() string {
	if len(m.memories) == 0 {
		return labelStyle.Render("No memories yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, memory := range m.memories {
		line := fmt.Sprintf("%s  %s", memory.Date, memory.Title)
		if memory.Mood != "" {
			line += labelStyle.Render("  (" + memory.Mood + ")")
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewDates() string {
	if len(m.countdowns) == 0 {
		return labelStyle.Render("No important dates yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, cd := range m.countdowns {
		var suffix string
		switch cd.Status {
		case "today":
			suffix = todayStyle.Render("today!")
		default:
			suffix = labelStyle.Render(fmt.Sprintf("in %d days (%s)", cd.DaysUntil, cd.NextDate))
		}
		line := fmt.Sprintf("%s [%s]  %s", cd.Title, cd.Type, suffix)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
