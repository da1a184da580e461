package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"github.com/pjaos/retirement-finances-sub000/internal/compare"
	"github.com/pjaos/retirement-finances-sub000/internal/config"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/pjaos/retirement-finances-sub000/internal/output"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/scenes"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuistyles"
)

// Model represents the entire application state
type Model struct {
	currentScene  Scene
	previousScene Scene

	width  int
	height int

	configPath string
	config     *config.File
	calcEngine *calculation.CalculationEngine

	selectedScenario string

	homeModel      *scenes.HomeModel
	scenariosModel *scenes.ScenariosModel
	compareModel   *scenes.CompareModel
	resultsModel   *scenes.ResultsModel

	spinner spinner.Model
	help    help.Model

	err            error
	status         string
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel(configPath string, engine *calculation.CalculationEngine) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = tuistyles.StatusKeyStyle

	return Model{
		currentScene:   SceneHome,
		configPath:     configPath,
		calcEngine:     engine,
		homeModel:      scenes.NewHomeModel(),
		scenariosModel: scenes.NewScenariosModel(),
		compareModel:   scenes.NewCompareModel(),
		resultsModel:   scenes.NewResultsModel(),
		spinner:        s,
		help:           help.New(),
		loading:        true,
		loadingMessage: "Loading configuration...",
		width:          80,
		height:         24,
	}
}

// Init loads the configuration and starts the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadConfigCmd(m.configPath), m.spinner.Tick)
}

// loadConfigCmd returns a command that loads the configuration file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// calculateScenarioCmd returns a command that projects one scenario
func calculateScenarioCmd(engine *calculation.CalculationEngine, file *config.File, name string) tea.Cmd {
	return func() tea.Msg {
		in, err := file.ToInputs(name)
		if err != nil {
			return CalculationCompleteMsg{ScenarioName: name, Err: err}
		}
		projection, err := engine.RunScenario(in)
		return CalculationCompleteMsg{ScenarioName: name, Projection: projection, Err: err}
	}
}

// compareCmd returns a command that compares scenarios against a base
func compareCmd(engine *calculation.CalculationEngine, file *config.File, configPath, base string, alternatives []string) tea.Cmd {
	return func() tea.Msg {
		set, err := compare.NewCompareEngine(engine).CompareScenarios(context.Background(), file, base, alternatives)
		if err != nil {
			return ComparisonCompleteMsg{Err: err}
		}
		set.ConfigPath = configPath
		return ComparisonCompleteMsg{Comparison: set}
	}
}

// exportCmd writes the projection to a timestamped file in the named format
func exportCmd(p *domain.Projection, format string) tea.Cmd {
	return func() tea.Msg {
		f := output.GetFormatterByName(format)
		if f == nil {
			return ExportCompleteMsg{Err: fmt.Errorf("unsupported format: %s", format)}
		}
		filename, err := output.WriteFormatted(f, p, format)
		return ExportCompleteMsg{Filename: filename, Err: err}
	}
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneScenarios:
		return "Scenarios"
	case SceneCompare:
		return "Compare"
	case SceneResults:
		return "Results"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
