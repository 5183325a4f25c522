package tui

import "newsdesk/types"

// Messages for the tea program

// PageLoadedMsg is sent when a news page arrives from the gateway
type PageLoadedMsg struct {
	Page *types.NewsPage
	Err  error
}

// MarkedReadMsg is sent when a mark-read call completes
type MarkedReadMsg struct {
	ArticleID string
	Err       error
}
