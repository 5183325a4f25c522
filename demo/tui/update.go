package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case PageLoadedMsg:
		return m.handlePageLoaded(msg)
	case MarkedReadMsg:
		return m.handleMarkedRead(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "j", "down":
		if m.State == StateList && m.Cursor < len(m.Articles)-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.State == StateList && m.Cursor > 0 {
			m.Cursor--
		}
	case "n":
		if m.State == StateList && m.HasMore {
			m.Page++
			m.State = StateLoading
			return m, loadPage(m.Client, m.Page, m.Limit)
		}
	case "p":
		if m.State == StateList && m.Page > 1 {
			m.Page--
			m.State = StateLoading
			return m, loadPage(m.Client, m.Page, m.Limit)
		}
	case "r":
		m.State = StateLoading
		return m, loadPage(m.Client, m.Page, m.Limit)
	case "enter":
		if m.State == StateList && m.CanMark && m.Cursor < len(m.Articles) {
			article := m.Articles[m.Cursor]
			m.Status = fmt.Sprintf("Marking %q as read...", article.Title)
			return m, markRead(m.Client, article)
		}
	}
	return m, nil
}

// handlePageLoaded processes an arriving news page
func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.State = StateList
	m.Articles = msg.Page.Articles
	m.HasMore = msg.Page.HasMore
	m.Cursor = 0
	m.Status = fmt.Sprintf("Page %d: %d articles", msg.Page.CurrentPage, len(msg.Page.Articles))
	return m, nil
}

// handleMarkedRead removes the marked article from the local list, mirroring
// how the UI consumes the write's success.
func (m Model) handleMarkedRead(msg MarkedReadMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Status = fmt.Sprintf("Mark-read failed: %v", msg.Err)
		return m, nil
	}

	remaining := m.Articles[:0:0]
	for _, a := range m.Articles {
		if a.ID != msg.ArticleID {
			remaining = append(remaining, a)
		}
	}
	m.Articles = remaining
	if m.Cursor >= len(m.Articles) && m.Cursor > 0 {
		m.Cursor--
	}
	m.Status = "Marked as read"
	return m, nil
}
