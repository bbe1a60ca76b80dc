package bat

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bat
type Repository interface {
	GetFile(ctx context.Context, id uint64) (*File, error)
	ListFiles(ctx context.Context) ([]*File, error)
	GetLines(ctx context.Context, batID uint64) ([]*Line, error)

	// CreateFile allocates the file id and every line id, then persists the
	// whole import atomically.
	CreateFile(ctx context.Context, f *File, lines []ParsedLine) error

	// DeleteFile removes the file and its lines, refusing with
	// ErrNotDeletable while any line is still reconciled.
	DeleteFile(ctx context.Context, id uint64) error
}

type Service struct {
	repo      Repository
	importers map[Format]Importer
}

// NewService wires the parsers in from the caller; the format registry
// lives with the composition root, not here.
func NewService(repo Repository, importers map[Format]Importer) *Service {
	return &Service{repo: repo, importers: importers}
}

func (s *Service) GetByID(ctx context.Context, id uint64) (*File, error) {
	return s.repo.GetFile(ctx, id)
}

func (s *Service) GetDataset(ctx context.Context) ([]*File, error) {
	return s.repo.ListFiles(ctx)
}

func (s *Service) GetLines(ctx context.Context, batID uint64) ([]*Line, error) {
	return s.repo.GetLines(ctx, batID)
}

// Import parses the bank file and persists it as one atomic batch. The
// begin/end dates summarize the effect dates actually found in the file.
func (s *Service) Import(ctx context.Context, uri string, format Format, r io.Reader) (*File, error) {
	importer, ok := s.importers[format]
	if !ok {
		return nil, &InvalidDataError{Field: "format", Reason: fmt.Sprintf("unknown format %q", format)}
	}

	parsed, err := importer.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", uri, err)
	}

	if len(parsed.Lines) == 0 {
		return nil, &InvalidDataError{Field: "file", Reason: "no usable transaction lines"}
	}

	f := &File{
		ImportID:  uuid.New(),
		URI:       uri,
		Format:    format,
		Currency:  parsed.Currency,
		LineCount: len(parsed.Lines),
	}

	f.Begin, f.End = dateRange(parsed.Lines)

	if err := s.repo.CreateFile(ctx, f, parsed.Lines); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) Delete(ctx context.Context, id uint64) error {
	return s.repo.DeleteFile(ctx, id)
}

func dateRange(lines []ParsedLine) (*time.Time, *time.Time) {
	begin, end := lines[0].DEffect, lines[0].DEffect

	for _, l := range lines[1:] {
		if l.DEffect.Before(begin) {
			begin = l.DEffect
		}

		if l.DEffect.After(end) {
			end = l.DEffect
		}
	}

	return &begin, &end
}
