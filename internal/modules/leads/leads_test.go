package leads

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somahsap/site-core/internal/models"
	"github.com/somahsap/site-core/internal/pkg/blob"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(blob.NewFile(filepath.Join(t.TempDir(), "leads.json")))
}

func TestListEmptyStore(t *testing.T) {
	svc := newTestService(t)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAppendStampsAndPrepends(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Append(ctx, models.LeadEntry{Type: models.LeadQuote, Email: "a@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, first.CreatedAt)

	second, err := svc.Append(ctx, models.LeadEntry{Type: models.LeadMessage, Email: "b@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Newest entry comes first.
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestRemove(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	kept, err := svc.Append(ctx, models.LeadEntry{Type: models.LeadQuick, Phone: "05551112233"})
	require.NoError(t, err)
	gone, err := svc.Append(ctx, models.LeadEntry{Type: models.LeadQuote, Email: "x@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, gone.ID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, kept.ID, list[0].ID)

	// Unknown ids are ignored.
	require.NoError(t, svc.Remove(ctx, "does-not-exist"))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
