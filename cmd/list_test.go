package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/inlay/internal/controller"
	"github.com/mouse-blink/inlay/internal/domain"
	domainmocks "github.com/mouse-blink/inlay/internal/domain/mocks"
	m "github.com/mouse-blink/inlay/internal/model"
)

func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	originalConfig := configFlag
	t.Cleanup(func() { configFlag = originalConfig })

	return mockWorkflow
}

func executeCommand(t *testing.T, sub func() *cobra.Command, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd.Execute()
}

func TestListCmd_DefaultsToTable(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("List", mock.Anything, domain.ListArgs{
		ScanArgs: domain.ScanArgs{Paths: []m.Path{"./..."}},
		Format:   controller.FormatTable,
	}).Return(nil)

	err := executeCommand(t, newListCmd, "list", "./...")
	require.NoError(t, err)
}

func TestListCmd_WithFlags(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Format == controller.FormatPlain &&
			len(args.Exclude) == 2 && args.Exclude[0] == "^_build/" &&
			args.Parallel == 3 &&
			args.Config == "ci/inlay.toml" &&
			len(args.Paths) == 2
	})).Return(nil)

	err := executeCommand(t, newListCmd,
		"--config", "ci/inlay.toml",
		"list", "-x", "^_build/", "-x", "_test", "-p", "3", "--format", "plain", "theories/...", "src")
	require.NoError(t, err)
}

func TestListCmd_InvalidFormat(t *testing.T) {
	withMockWorkflow(t)

	err := executeCommand(t, newListCmd, "list", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)

	for _, name := range []string{"exclude", "parallel", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}
