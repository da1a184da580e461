package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Home      key.Binding
	Scenarios key.Binding
	Compare   key.Binding
	Results   key.Binding
	Reload    key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Scenarios, k.Compare, k.Results, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Scenarios, k.Compare, k.Results},
		{k.Reload, k.Back, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Home:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
	Scenarios: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scenarios")),
	Compare:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
	Results:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "results")),
	Reload:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload config")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
