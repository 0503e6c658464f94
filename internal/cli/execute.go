package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/testvibe/testvibe/internal/scaffold"
)

// ErrTestsFailed is returned by the run command when a test case failed.
// The failures have been reported already.
var ErrTestsFailed = errors.New("tests failed")

// Execute runs root and returns the process exit code. Errors are written to
// stderr.
func Execute(ctx context.Context, root *cobra.Command, stderr io.Writer) int {
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exists *scaffold.ExistsError
	switch {
	case errors.Is(err, ErrTestsFailed):
	case errors.As(err, &exists):
		fmt.Fprintln(stderr, exists.Error())
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}
