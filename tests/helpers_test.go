package tests_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"
)

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectReport returns a comparator verifying that the report written to path
// contains every given substring. The report goes to a file rather than
// stdout, so the comparator reads it back.
func expectReport(path string, substrs ...string) test.Comparator {
	return func(_ string, testing tig.T) {
		testing.Helper()

		raw, err := os.ReadFile(path)
		if err != nil {
			testing.Log(fmt.Sprintf("failed to read report %q: %v", path, err))
			testing.Fail()

			return
		}

		doc := string(raw)

		for _, substr := range substrs {
			if !strings.Contains(doc, substr) {
				testing.Log(fmt.Sprintf("expected substring %q not found in report %q:\n%s", substr, path, doc))
				testing.Fail()

				return
			}
		}
	}
}

// expectReportOmits returns a comparator verifying that the report written to
// path does NOT contain the given substring.
func expectReportOmits(path, substr string) test.Comparator {
	return func(_ string, testing tig.T) {
		testing.Helper()

		raw, err := os.ReadFile(path)
		if err != nil {
			testing.Log(fmt.Sprintf("failed to read report %q: %v", path, err))
			testing.Fail()

			return
		}

		if strings.Contains(string(raw), substr) {
			testing.Log(fmt.Sprintf("unexpected substring %q found in report %q:\n%s", substr, path, string(raw)))
			testing.Fail()
		}
	}
}
