package dossier_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/openbook-core/openbook/internal/dossier"
)

func exercice2024() dossier.Dossier {
	return dossier.Dossier{
		Label:         "test",
		Currency:      "EUR",
		ExerciceBegin: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ExerciceEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestDossier_InExercice(t *testing.T) {
	d := exercice2024()

	assert.True(t, d.InExercice(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, d.InExercice(d.ExerciceBegin))
	assert.True(t, d.InExercice(d.ExerciceEnd))
	assert.False(t, d.InExercice(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, d.InExercice(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDossier_IsFuture(t *testing.T) {
	d := exercice2024()

	assert.False(t, d.IsFuture(d.ExerciceEnd))
	assert.True(t, d.IsFuture(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestService_Update_RejectsInvertedExercice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := dossier.NewMockRepository(ctrl)
	svc := dossier.NewService(repo)

	d := exercice2024()
	d.ExerciceBegin, d.ExerciceEnd = d.ExerciceEnd, d.ExerciceBegin

	err := svc.Update(context.Background(), &d)
	assert.ErrorIs(t, err, dossier.ErrBadExercice)
}

func TestService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := dossier.NewMockRepository(ctrl)
	svc := dossier.NewService(repo)

	d := exercice2024()
	repo.EXPECT().UpdateDossier(gomock.Any(), &d).Return(nil)

	assert.NoError(t, svc.Update(context.Background(), &d))
}
