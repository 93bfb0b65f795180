// Package service wires the will pipeline together: validate the submission,
// derive the trust wording, persist the record, render the PDF and keep the
// stored artifact reproducible from the record.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mycrmsystems/elatco-will-system/internal/renders"
	"github.com/mycrmsystems/elatco-will-system/internal/storage"
	"github.com/mycrmsystems/elatco-will-system/internal/will"
	"github.com/mycrmsystems/elatco-will-system/internal/will/clause"
	"github.com/mycrmsystems/elatco-will-system/internal/will/compose"
	"github.com/mycrmsystems/elatco-will-system/internal/will/pdf"
	"github.com/mycrmsystems/elatco-will-system/internal/will/repository"
	"github.com/mycrmsystems/elatco-will-system/pkg/logger"
	"github.com/mycrmsystems/elatco-will-system/pkg/metrics"
)

var ErrNotFound = repository.ErrNotFound

// Service exposes the will operations used by the handler layer.
type Service struct {
	repo    repository.Repository
	store   storage.Storage
	renders renders.Store
	prefix  string
}

// New creates a Service. prefix is the artifact filename prefix ("will" when
// empty). rendersStore may be nil to disable the render audit trail.
func New(repo repository.Repository, store storage.Storage, rendersStore renders.Store, prefix string) *Service {
	if prefix == "" {
		prefix = "will"
	}
	return &Service{repo: repo, store: store, renders: rendersStore, prefix: prefix}
}

// Create validates the submission, derives the trust wording, persists the
// record and renders its PDF synchronously. A render or storage failure
// leaves the record in place with no artifact filename; the download path
// regenerates on demand.
func (s *Service) Create(ctx context.Context, sub *will.Submission) (*will.Will, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	trustType := will.ParseTrustType(sub.TrustType)
	w := &will.Will{
		ClientName: strings.TrimSpace(sub.ClientName),
		DOB:        strings.TrimSpace(sub.DOB),
		Address:    strings.TrimSpace(sub.Address),
		Executors:  strings.TrimSpace(sub.Executors),
		Guardians:  strings.TrimSpace(sub.Guardians),
		Gifts:      strings.TrimSpace(sub.Gifts),
		Residuary:  strings.TrimSpace(sub.Residuary),
		TrustType:  trustType,
		TrustText:  clause.Generate(trustType, sub.Trustees, sub.Beneficiaries, sub.AgeOfAccess, sub.SpecialClauses),
	}

	id, err := s.repo.Create(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("create will: %w", err)
	}
	metrics.WillsCreated.Inc()

	data, err := pdf.Render(compose.Compose(w))
	if err != nil {
		return nil, fmt.Errorf("render will %d: %w", id, err)
	}

	filename := will.ArtifactFilename(s.prefix, id)
	if err := s.store.Write(ctx, filename, data); err != nil {
		return nil, fmt.Errorf("store artifact %s: %w", filename, err)
	}
	if err := s.repo.UpdateArtifact(ctx, id, filename); err != nil {
		return nil, fmt.Errorf("link artifact %s: %w", filename, err)
	}
	w.PDFFilename = filename
	metrics.PDFsRendered.Inc()
	s.audit(ctx, &renders.Entry{WillID: id, Filename: filename, Size: len(data)})

	return w, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*will.Will, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*will.Will, error) {
	return s.repo.List(ctx)
}

// EnsureArtifact returns the record and its PDF bytes, regenerating and
// re-persisting the artifact when the stored copy is missing. The stored
// file is a cache; the record is the source of truth. Concurrent callers may
// both regenerate; the writes are idempotent in content so last-write-wins
// is safe.
func (s *Service) EnsureArtifact(ctx context.Context, id int64) (*will.Will, []byte, error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	filename := w.PDFFilename
	if filename == "" {
		filename = will.ArtifactFilename(s.prefix, id)
	}

	data, err := s.store.Read(ctx, filename)
	if err == nil {
		return w, data, nil
	}
	if !errors.Is(err, storage.ErrNotExist) {
		return nil, nil, fmt.Errorf("read artifact %s: %w", filename, err)
	}

	logger.Infof("artifact %s missing, regenerating from will %d", filename, id)
	data, err = pdf.Render(compose.Compose(w))
	if err != nil {
		return nil, nil, fmt.Errorf("render will %d: %w", id, err)
	}
	if err := s.store.Write(ctx, filename, data); err != nil {
		return nil, nil, fmt.Errorf("store artifact %s: %w", filename, err)
	}
	if w.PDFFilename != filename {
		if err := s.repo.UpdateArtifact(ctx, id, filename); err != nil {
			return nil, nil, fmt.Errorf("link artifact %s: %w", filename, err)
		}
		w.PDFFilename = filename
	}
	metrics.PDFsRendered.Inc()
	metrics.ArtifactsRegenerated.Inc()
	s.audit(ctx, &renders.Entry{WillID: id, Filename: filename, Size: len(data), Regenerated: true})

	return w, data, nil
}

// RenderHistory lists the audit trail for one will.
func (s *Service) RenderHistory(ctx context.Context, id int64) ([]*renders.Entry, error) {
	if s.renders == nil {
		return []*renders.Entry{}, nil
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.renders.ListByWill(ctx, id)
}

func (s *Service) audit(ctx context.Context, e *renders.Entry) {
	if s.renders == nil {
		return
	}
	if err := s.renders.Record(ctx, e); err != nil {
		logger.Warnf("render audit write failed for will %d: %v", e.WillID, err)
	}
}
