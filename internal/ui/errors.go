package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/testvibe/testvibe/internal/domain"
)

// maxTraceLines bounds the trace shown in the details pane
const maxTraceLines = 12

// ErrorViewer browses the failures of the last run in an interactive TUI.
// Failures can be marked resolved while browsing; the mark is not persisted.
type ErrorViewer struct{}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer() *ErrorViewer {
	return &ErrorViewer{}
}

// View displays failures until the user quits
func (ev *ErrorViewer) View(failures []domain.TestFailure) error {
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	resolved := make(map[int]bool)
	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(index int) string {
		f := failures[index]
		name := f.Suite + "." + f.TestName
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
	}

	for i := range failures {
		list.AddItem(itemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := len(failures) - len(resolved)
		headerView.SetText(fmt.Sprintf(" Test Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ", len(failures), unresolved))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(failures) {
			return
		}
		statsView.SetText(formatFailureStats(failures[index]))
		detailsView.SetText(formatFailureDetails(failures[index]))
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(failures) {
					if resolved[index] {
						delete(resolved, index)
					} else {
						resolved[index] = true
					}
					list.SetItemText(index, itemText(index), "")
					updateHeader()
					updateDetails()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureDetails renders a failure with tview color tags
func formatFailureDetails(f domain.TestFailure) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", f.TestName)
	fmt.Fprintf(w, "[cyan]Suite:\t%s[white]\n", f.Suite)
	fmt.Fprintf(w, "[cyan]Run-list entry:\t%s/%s[white]\n\n", f.Group, f.Identifier)

	if f.Kind != "" {
		fmt.Fprintf(w, "[yellow]Assertion:[white]\t%s\n", f.Kind)
		fmt.Fprintf(w, "[yellow]Actual:[white]\t%s\n", tview.Escape(f.Actual))
		if f.Expected != "" && f.Expected != "<nil>" {
			fmt.Fprintf(w, "[yellow]Expected:[white]\t%s\n", tview.Escape(f.Expected))
		}
		fmt.Fprintf(w, "\n")
	}

	if f.Message != "" {
		fmt.Fprintf(w, "[yellow]Message:[white]\n%s\n\n", tview.Escape(f.Message))
	}

	if len(f.Trace) > 0 {
		fmt.Fprintf(w, "[yellow]Trace:[white]\n")
		for i, line := range f.Trace {
			if i == maxTraceLines {
				fmt.Fprintf(w, "  [gray]... and %d more lines[white]\n", len(f.Trace)-maxTraceLines)
				break
			}
			fmt.Fprintf(w, "  %s\n", tview.Escape(line))
		}
	}

	w.Flush()
	return builder.String()
}

// formatFailureStats renders the header line of a failure
func formatFailureStats(f domain.TestFailure) string {
	return fmt.Sprintf("[cyan]suite:[white] [yellow]%s/%s[white]::[yellow]%s.%s[white]\n",
		f.Group, f.Identifier, f.Suite, f.TestName)
}
