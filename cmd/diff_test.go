package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mbarton/javasphinx/internal/domain"
	m "github.com/mbarton/javasphinx/internal/model"
)

func TestDiffCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	src := testSourceRoot(t)

	mockWorkflow.EXPECT().Diff(mock.Anything, mock.MatchedBy(func(args domain.BuildArgs) bool {
		return args.Root == m.Path(src) && args.Output == m.Path("docs")
	})).Return(domain.ErrOutputOutOfDate).Once()

	cmd := newTestRootCmd(t, newDiffCmd(), "diff", src, "-o", "docs")
	require.ErrorIs(t, cmd.Execute(), domain.ErrOutputOutOfDate)
}
