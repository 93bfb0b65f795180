package service

import (
	"context"
	"testing"

	"github.com/mycrmsystems/elatco-will-system/internal/renders"
	"github.com/mycrmsystems/elatco-will-system/internal/storage"
	"github.com/mycrmsystems/elatco-will-system/internal/will"
	"github.com/mycrmsystems/elatco-will-system/internal/will/clause"
	"github.com/mycrmsystems/elatco-will-system/internal/will/compose"
	"github.com/mycrmsystems/elatco-will-system/internal/will/pdf"
	"github.com/mycrmsystems/elatco-will-system/internal/will/repository"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *repository.MemoryRepo, *storage.MemoryStorage, *renders.MemoryStore) {
	repo := repository.NewMemoryRepo()
	store := storage.NewMemoryStorage()
	audit := renders.NewMemoryStore()
	return New(repo, store, audit, "will"), repo, store, audit
}

func TestCreate_ValidationRejectsMissingName(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &will.Submission{ClientName: "   "})
	require.ErrorIs(t, err, will.ErrClientNameRequired)

	// no partial record was persisted
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCreate_PersistsRecordAndArtifact(t *testing.T) {
	svc, _, store, audit := newTestService()
	ctx := context.Background()

	w, err := svc.Create(ctx, &will.Submission{
		ClientName: "Jane Doe",
		Executors:  "John Smith",
		TrustType:  "Discretionary Trust",
		Trustees:   "",
		Beneficiaries: "my children",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), w.ID)
	require.Equal(t, "will_1.pdf", w.PDFFilename)
	require.Equal(t, will.TrustDiscretionary, w.TrustType)
	require.Contains(t, w.TrustText, clause.DefaultTrustees)
	require.Contains(t, w.TrustText, "my children")

	data, err := store.Read(ctx, "will_1.pdf")
	require.NoError(t, err)
	require.True(t, len(data) > 0)

	entries, err := audit.ListByWill(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.False(t, entries[0].Regenerated)
	require.Equal(t, len(data), entries[0].Size)
}

func TestCreate_TrustTextEmptyIffNone(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	none, err := svc.Create(ctx, &will.Submission{ClientName: "A", TrustType: "None"})
	require.NoError(t, err)
	require.Empty(t, none.TrustText)

	unknown, err := svc.Create(ctx, &will.Submission{ClientName: "B", TrustType: "Secret Trust", Trustees: "T"})
	require.NoError(t, err)
	require.Equal(t, will.TrustNone, unknown.TrustType)
	require.Empty(t, unknown.TrustText)

	trust, err := svc.Create(ctx, &will.Submission{ClientName: "C", TrustType: "Life Interest Trust"})
	require.NoError(t, err)
	require.NotEmpty(t, trust.TrustText)
}

func TestEnsureArtifact_ReturnsStoredBytesUnchanged(t *testing.T) {
	svc, _, store, _ := newTestService()
	ctx := context.Background()

	w, err := svc.Create(ctx, &will.Submission{ClientName: "Jane Doe", Gifts: "A ring"})
	require.NoError(t, err)

	// put a sentinel in place of the real artifact; a present artifact is
	// returned as-is, never re-rendered
	require.NoError(t, store.Write(ctx, w.PDFFilename, []byte("sentinel")))

	_, data, err := svc.EnsureArtifact(ctx, w.ID)
	require.NoError(t, err)
	require.Equal(t, []byte("sentinel"), data)
}

func TestEnsureArtifact_RegeneratesMissingArtifact(t *testing.T) {
	svc, _, store, audit := newTestService()
	ctx := context.Background()

	w, err := svc.Create(ctx, &will.Submission{ClientName: "Jane Doe", Gifts: "A ring"})
	require.NoError(t, err)

	store.Delete(w.PDFFilename)

	got, data, err := svc.EnsureArtifact(ctx, w.ID)
	require.NoError(t, err)
	require.Equal(t, w.PDFFilename, got.PDFFilename)

	// regenerated bytes match a fresh render of the record
	fresh, err := pdf.Render(compose.Compose(got))
	require.NoError(t, err)
	require.Equal(t, fresh, data)

	// and the artifact was re-persisted
	stored, err := store.Read(ctx, w.PDFFilename)
	require.NoError(t, err)
	require.Equal(t, data, stored)

	entries, err := audit.ListByWill(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.True(t, entries[1].Regenerated)
}

func TestEnsureArtifact_FirstRenderViaDownload(t *testing.T) {
	// a record that never had a successful render gets its filename set on
	// first download
	repo := repository.NewMemoryRepo()
	store := storage.NewMemoryStorage()
	svc := New(repo, store, nil, "will")
	ctx := context.Background()

	id, err := repo.Create(ctx, &will.Will{ClientName: "Jane Doe", TrustType: will.TrustNone})
	require.NoError(t, err)

	got, data, err := svc.EnsureArtifact(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "will_1.pdf", got.PDFFilename)
	require.True(t, len(data) > 0)

	persisted, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "will_1.pdf", persisted.PDFFilename)
}

func TestEnsureArtifact_UnknownRecord(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, _, err := svc.EnsureArtifact(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRenderHistory(t *testing.T) {
	svc, _, store, _ := newTestService()
	ctx := context.Background()

	w, err := svc.Create(ctx, &will.Submission{ClientName: "Jane Doe"})
	require.NoError(t, err)
	store.Delete(w.PDFFilename)
	_, _, err = svc.EnsureArtifact(ctx, w.ID)
	require.NoError(t, err)

	hist, err := svc.RenderHistory(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, hist, 2)

	_, err = svc.RenderHistory(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)
}
