package docbrief

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pondside/docbrief/ai/mock"
	"github.com/pondside/docbrief/core"
	"github.com/pondside/docbrief/extract"
	"github.com/pondside/docbrief/ingestion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	t.Run("create new service", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		svc, err := NewService(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, svc)
		defer svc.Close()

		// Verify components are initialized
		assert.NotNil(t, svc.DocumentRepository())
		assert.NotNil(t, svc.Provider())
		assert.NotNil(t, svc.backend)
		assert.NotNil(t, svc.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a service at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		svc, err := NewService(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestService_Close(t *testing.T) {
	svc, err := NewService(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, svc)

	assert.NoError(t, svc.Close())
}

func TestService_FactoryMethods(t *testing.T) {
	svc, err := NewService(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, svc)
	defer svc.Close()

	t.Run("can create pipeline", func(t *testing.T) {
		pipeline, err := svc.NewPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create query service", func(t *testing.T) {
		queries, err := svc.NewQueryService()
		require.NoError(t, err)
		require.NotNil(t, queries)
	})
}

// stubExtractor avoids real container parsing in the end-to-end test.
type stubExtractor struct{}

func (stubExtractor) Extract(kind extract.Kind, data []byte) (string, error) {
	return "board meeting notes for the third quarter", nil
}

func TestService_EndToEnd(t *testing.T) {
	svc, err := NewService("", WithInMemory(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer svc.Close()

	pipeline, err := svc.NewPipeline(ingestion.WithTextExtractor(stubExtractor{}))
	require.NoError(t, err)
	defer pipeline.Release()

	queries, err := svc.NewQueryService()
	require.NoError(t, err)

	ctx := context.Background()

	id, err := pipeline.Accept(ctx, "minutes.docx", "", []byte("zip bytes"))
	require.NoError(t, err)
	require.NotZero(t, id)

	require.Eventually(t, func() bool {
		view, err := queries.Get(ctx, id)
		return err == nil && view.Status == core.StatusReady
	}, 5*time.Second, 10*time.Millisecond)

	view, err := queries.Get(ctx, id)
	require.NoError(t, err)
	assert.NotEmpty(t, view.Summary)
	assert.NotEmpty(t, view.Categories)
	assert.Equal(t, "board meeting notes for the third quarter", view.ExtractedText)

	headers, err := queries.List(ctx)
	require.NoError(t, err)
	require.Len(t, headers, 1)

	require.NoError(t, pipeline.Delete(ctx, id))
	headers, err = queries.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, headers)
}
