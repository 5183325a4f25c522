package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"newsdesk/demo/client"
	"newsdesk/types"
)

// loadPage creates a command that fetches one news page from the gateway
func loadPage(c *client.Client, page, limit int) tea.Cmd {
	return func() tea.Msg {
		result, err := c.GetNews(context.Background(), page, limit, "")
		return PageLoadedMsg{Page: result, Err: err}
	}
}

// markRead creates a command that marks the given article as read
func markRead(c *client.Client, article types.Article) tea.Cmd {
	return func() tea.Msg {
		err := c.MarkRead(context.Background(), article)
		return MarkedReadMsg{ArticleID: article.ID, Err: err}
	}
}
