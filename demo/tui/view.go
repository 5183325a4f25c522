package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📰 Newsdesk Reader"))
	b.WriteString("\n\n")

	switch m.State {
	case StateLoading:
		b.WriteString(StatusStyle.Render("⏳ Loading news..."))
		b.WriteString("\n")
	case StateError:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", m.Err)))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Press 'r' to retry | 'q' to quit"))
		return b.String()
	case StateList:
		for i, article := range m.Articles {
			line := fmt.Sprintf("%s  [%s] %s · %s", article.Title, article.Category, article.Source, article.ReadTime)
			if i == m.Cursor {
				b.WriteString(SelectedStyle.Render("> " + line))
			} else {
				b.WriteString(InfoStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
		if len(m.Articles) == 0 {
			b.WriteString(InfoStyle.Render("  No unread articles on this page"))
			b.WriteString("\n")
		}
	}

	if m.Status != "" {
		b.WriteString("\n")
		b.WriteString(StatusStyle.Render(m.Status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "j/k move | n/p page | r refresh | q quit"
	if m.CanMark {
		help = "j/k move | enter mark read | n/p page | r refresh | q quit"
	}
	b.WriteString(InfoStyle.Render(help))

	return b.String()
}
