package tui

import (
	"github.com/pjaos/retirement-finances-sub000/internal/compare"
	"github.com/pjaos/retirement-finances-sub000/internal/config"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneScenarios
	SceneCompare
	SceneResults
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ConfigLoadedMsg signals configuration has been loaded
type ConfigLoadedMsg struct {
	Config *config.File
}

// CalculationCompleteMsg signals a projection has finished
type CalculationCompleteMsg struct {
	ScenarioName string
	Projection   *domain.Projection
	Err          error
}

// ComparisonCompleteMsg signals a comparison has finished
type ComparisonCompleteMsg struct {
	Comparison *compare.ComparisonSet
	Err        error
}

// ExportCompleteMsg reports where a projection was written
type ExportCompleteMsg struct {
	Filename string
	Err      error
}
