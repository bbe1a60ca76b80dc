package dossier

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("dossier not found")

// ErrBadExercice is returned when the exercice bounds are inverted or unset.
var ErrBadExercice = errors.New("exercice begin must precede exercice end")

// Dossier is the singleton row of the accounting database: one dossier,
// one database. Entries dated after ExerciceEnd are posted to the future
// buckets instead of the current ones.
type Dossier struct {
	Label         string
	Currency      string
	ExerciceBegin time.Time
	ExerciceEnd   time.Time
	UpdatedAt     time.Time
}

// InExercice reports whether the effect date falls within the current
// fiscal period.
func (d *Dossier) InExercice(deffect time.Time) bool {
	return !deffect.Before(d.ExerciceBegin) && !deffect.After(d.ExerciceEnd)
}

// IsFuture reports whether the effect date lands beyond the exercice end.
func (d *Dossier) IsFuture(deffect time.Time) bool {
	return deffect.After(d.ExerciceEnd)
}

//go:generate mockgen -source=dossier.go -destination=repository_mock.go -package=dossier
type Repository interface {
	GetDossier(ctx context.Context) (*Dossier, error)
	UpdateDossier(ctx context.Context, d *Dossier) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*Dossier, error) {
	return s.repo.GetDossier(ctx)
}

func (s *Service) Update(ctx context.Context, d *Dossier) error {
	if d.ExerciceBegin.IsZero() || d.ExerciceEnd.IsZero() || !d.ExerciceBegin.Before(d.ExerciceEnd) {
		return ErrBadExercice
	}

	return s.repo.UpdateDossier(ctx, d)
}
