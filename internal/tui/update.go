package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.homeModel.SetSize(msg.Width, msg.Height)
		m.scenariosModel.SetSize(msg.Width, msg.Height)
		m.compareModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case NavigateMsg:
		m.navigate(msg.Scene)
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ConfigLoadedMsg:
		m.loading = false
		m.config = msg.Config
		m.homeModel.SetConfig(msg.Config)
		m.scenariosModel.SetScenarios(msg.Config.Scenarios)
		m.compareModel.SetScenarios(msg.Config.ScenarioNames())
		return m, nil

	case tuimsg.ScenarioSelectedMsg:
		if m.config == nil {
			return m, nil
		}
		m.selectedScenario = msg.ScenarioName
		return m.startLoading("Projecting "+msg.ScenarioName+"...",
			calculateScenarioCmd(m.calcEngine, m.config, msg.ScenarioName))

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.resultsModel.SetResults(msg.Projection)
		m.navigate(SceneResults)
		return m, nil

	case tuimsg.CompareRequestedMsg:
		if m.config == nil {
			return m, nil
		}
		return m.startLoading("Comparing scenarios...",
			compareCmd(m.calcEngine, m.config, m.configPath, msg.BaseName, msg.AlternativeNames))

	case ComparisonCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.compareModel.SetResults(msg.Comparison)
		m.navigate(SceneCompare)
		return m, nil

	case tuimsg.ExportRequestedMsg:
		p := m.resultsModel.Projection()
		if p == nil {
			return m, nil
		}
		return m, exportCmd(p, msg.Format)

	case ExportCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.status = "Wrote " + msg.Filename
		}
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func (m Model) startLoading(message string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.loading = true
	m.loadingMessage = message
	m.err = nil
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m *Model) navigate(scene Scene) {
	if scene == m.currentScene {
		return
	}
	m.previousScene = m.currentScene
	m.currentScene = scene
	m.status = ""
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}
	// Any key dismisses an error.
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Help):
		m.navigate(SceneHelp)
		return m, nil
	case key.Matches(msg, keys.Back):
		if m.currentScene != SceneHome {
			target := m.previousScene
			if target == m.currentScene {
				target = SceneHome
			}
			m.navigate(target)
		}
		return m, nil
	case key.Matches(msg, keys.Home):
		m.navigate(SceneHome)
		return m, nil
	case key.Matches(msg, keys.Scenarios):
		m.navigate(SceneScenarios)
		return m, nil
	case key.Matches(msg, keys.Compare):
		m.navigate(SceneCompare)
		return m, nil
	case key.Matches(msg, keys.Results):
		m.navigate(SceneResults)
		return m, nil
	case key.Matches(msg, keys.Reload):
		return m.startLoading("Reloading configuration...", loadConfigCmd(m.configPath))
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneScenarios:
		m.scenariosModel, cmd = m.scenariosModel.Update(msg)
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	}
	return m, cmd
}
