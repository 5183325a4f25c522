package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"newsdesk/demo/client"
	"newsdesk/types"
)

// State represents the reader state machine
type State string

const (
	StateLoading State = "loading"
	StateList    State = "list"
	StateError   State = "error"
)

// Model represents the terminal reader state
type Model struct {
	Client  *client.Client
	CanMark bool

	State    State
	Page     int
	Limit    int
	Articles []types.Article
	HasMore  bool
	Cursor   int
	Status   string
	Err      error
}

// NewModel creates a new reader model. canMark enables the mark-read action
// and requires a configured bearer token.
func NewModel(c *client.Client, canMark bool) Model {
	return Model{
		Client:  c,
		CanMark: canMark,
		State:   StateLoading,
		Page:    1,
		Limit:   10,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return loadPage(m.Client, m.Page, m.Limit)
}
