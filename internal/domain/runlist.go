package domain

// RunList is a parsed run-list file
type RunList struct {
	Path   string   // Path to the run-list file
	Group  string   // Group the run-list belongs to
	Suites []string // Suite identifiers in execution order, duplicates kept
}
