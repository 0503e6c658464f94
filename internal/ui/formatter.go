package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/testvibe/testvibe/internal/domain"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// Formatter prints run summaries and listings
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out, or to the color-aware
// stdout when out is nil
func NewFormatter(out io.Writer) *Formatter {
	if out == nil {
		out = color.Output
	}
	return &Formatter{out: out}
}

// PrintSummary prints the statistics table of a run followed by the tree of
// its failures
func (f *Formatter) PrintSummary(summary domain.RunSummary) {
	st := summary.Stats()

	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Test Execution Statistics                  ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprint(f.out, "\n")

	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Suites", fmt.Sprint(st.Suites), white},
		{"Failed Suites", fmt.Sprint(st.FailedSuites), red},
		{"Test Cases", fmt.Sprint(st.Cases), white},
		{"Failed Test Cases", fmt.Sprint(st.FailedCases), red},
		{"Skipped Test Cases", fmt.Sprint(st.SkippedCases), yellow},
		{"Assertions (passed/total)", fmt.Sprintf("%d/%d", st.Passed, st.Asserted), green},
		{"Duration", fmt.Sprintf("%.2fs", summary.Duration.Seconds()), white},
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		row.c.Fprintf(f.out, "%-27s", row.value)
		fmt.Fprintln(f.out, " │")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")
	fmt.Fprintln(f.out)

	switch {
	case st.FailedCases == 0 && !summary.Aborted:
		green.Fprintln(f.out, "✓ All tests passed!")
	case st.FailedCases == 0:
		yellow.Fprintln(f.out, "✗ Run aborted")
	default:
		red.Fprintf(f.out, "✗ %d suite(s) failed with %d test case failure(s)\n", st.FailedSuites, st.FailedCases)
		fmt.Fprintln(f.out)
		f.PrintFailures(summary.Failures())
	}
}

// PrintFailures prints failures as a tree of group, run-list entry, suite and
// test case
func (f *Formatter) PrintFailures(failures []domain.TestFailure) {
	root := &treeNode{}
	for _, failure := range failures {
		group := root.child(failure.Group, cyan)
		entry := group.child(failure.Identifier, cyan)
		suite := entry.child(failure.Suite, yellow)
		tc := suite.child(failure.TestName, red)
		if failure.Message != "" {
			tc.child(failure.Message, white)
		}
	}
	root.print(f.out, "")
}

// PrintList prints run-lists with their entries and suite classes, and the
// test cases of each class when showCases is set
func (f *Formatter) PrintList(runlists []domain.ListedRunList, showCases bool) {
	var entries int
	for _, rl := range runlists {
		entries += len(rl.Suites)
	}
	green.Fprintf(f.out, "Found %d run-list(s) with %d suite(s):\n\n", len(runlists), entries)

	root := &treeNode{}
	for _, rl := range runlists {
		group := root.add(fmt.Sprintf("%s (%s)", rl.Group, rl.Path), cyan)
		for _, s := range rl.Suites {
			if s.Err != nil {
				group.add(s.Identifier+" "+red.Sprintf("[%v]", s.Err), yellow)
				continue
			}
			entry := group.add(s.Identifier, yellow)
			for _, c := range s.Classes {
				class := entry.add(c.Name, white)
				if !showCases {
					continue
				}
				if len(c.Cases) == 0 {
					class.add("(no test cases found)", red)
				}
				for _, name := range c.Cases {
					class.add(name, green)
				}
			}
		}
	}
	root.print(f.out, "")
}

// treeNode is a line of a printed tree
type treeNode struct {
	label    string
	c        *color.Color
	children []*treeNode
	index    map[string]*treeNode
}

// add appends a child, duplicates included
func (n *treeNode) add(label string, c *color.Color) *treeNode {
	child := &treeNode{label: label, c: c}
	n.children = append(n.children, child)
	return child
}

// child returns the child labelled label, adding it on first use
func (n *treeNode) child(label string, c *color.Color) *treeNode {
	if n.index == nil {
		n.index = make(map[string]*treeNode)
	}
	if existing, ok := n.index[label]; ok {
		return existing
	}
	child := n.add(label, c)
	n.index[label] = child
	return child
}

func (n *treeNode) print(out io.Writer, prefix string) {
	for i, child := range n.children {
		last := i == len(n.children)-1
		connector, next := "├── ", "│   "
		if last {
			connector, next = "└── ", "    "
		}
		fmt.Fprint(out, prefix+connector)
		child.c.Fprintln(out, child.label)
		child.print(out, prefix+next)
	}
}
