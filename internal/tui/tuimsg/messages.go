// Package tuimsg holds the messages scenes send back to the application model.
package tuimsg

// ScenarioSelectedMsg signals a scenario has been selected for calculation
type ScenarioSelectedMsg struct {
	ScenarioName string
}

// CompareRequestedMsg asks for the base scenario to be compared with the alternatives.
// No alternatives means every other scenario.
type CompareRequestedMsg struct {
	BaseName         string
	AlternativeNames []string
}

// ExportRequestedMsg asks for the current projection to be written in the named format.
type ExportRequestedMsg struct {
	Format string
}
