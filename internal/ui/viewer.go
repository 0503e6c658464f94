package ui

import "github.com/testvibe/testvibe/internal/domain"

// Viewer displays the failures of a run in an interactive TUI
type Viewer interface {
	View(failures []domain.TestFailure) error
}
