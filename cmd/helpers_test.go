package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	domainmocks "github.com/mbarton/javasphinx/internal/domain/mocks"
)

// testLogFile keeps the log written by PersistentPreRun out of the package directory.
func testLogFile(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "javasphinx.log")
}

// testSourceRoot returns an existing, empty input root.
func testSourceRoot(t *testing.T) string {
	t.Helper()

	return t.TempDir()
}

// withMockWorkflow swaps the shared workflow for a mock for the duration of the test.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func newTestRootCmd(t *testing.T, sub *cobra.Command, args ...string) *cobra.Command {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-file", testLogFile(t)))

	return cmd
}
