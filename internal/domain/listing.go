package domain

// ListedRunList is a run-list as shown by the list command
type ListedRunList struct {
	Group  string
	Path   string
	Suites []ListedSuite
}

// ListedSuite is a run-list entry with the suite classes it resolves to
type ListedSuite struct {
	Identifier string
	Classes    []ListedClass
	Err        error // Resolution error, if any
}

// ListedClass is a suite class with its test cases
type ListedClass struct {
	Name  string
	Cases []string
}
