package bat_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbook-core/openbook/internal/bat"
)

type stubImporter struct {
	parsed *bat.ParsedFile
	err    error
}

func (s *stubImporter) Parse(io.Reader) (*bat.ParsedFile, error) {
	return s.parsed, s.err
}

func newServiceWithMock(t *testing.T, imp bat.Importer) (*bat.Service, *bat.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := bat.NewMockRepository(ctrl)

	importers := map[bat.Format]bat.Importer{}
	if imp != nil {
		importers[bat.FormatFrCSV] = imp
	}

	return bat.NewService(repo, importers), repo
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Import(t *testing.T) {
	parsed := &bat.ParsedFile{
		Currency: "EUR",
		Lines: []bat.ParsedLine{
			{DEffect: day(15), Label: "PRLV EDF", Amount: decimal.RequireFromString("-88.40")},
			{DEffect: day(2), Label: "VIR RECU", Amount: decimal.RequireFromString("1250.00")},
			{DEffect: day(20), Label: "CB ACHAT", Amount: decimal.RequireFromString("-12.50")},
		},
	}

	svc, repo := newServiceWithMock(t, &stubImporter{parsed: parsed})

	repo.EXPECT().
		CreateFile(gomock.Any(), gomock.Any(), parsed.Lines).
		DoAndReturn(func(_ context.Context, f *bat.File, _ []bat.ParsedLine) error {
			f.ID = 3
			return nil
		})

	f, err := svc.Import(context.Background(), "releve-mars.csv", bat.FormatFrCSV, strings.NewReader("ignored"))
	require.NoError(t, err)

	assert.Equal(t, uint64(3), f.ID)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", f.ImportID.String())
	assert.Equal(t, "releve-mars.csv", f.URI)
	assert.Equal(t, 3, f.LineCount)
	require.NotNil(t, f.Begin)
	require.NotNil(t, f.End)
	assert.Equal(t, day(2), *f.Begin)
	assert.Equal(t, day(20), *f.End)
}

func TestService_Import_UnknownFormat(t *testing.T) {
	svc, _ := newServiceWithMock(t, nil)

	_, err := svc.Import(context.Background(), "f.csv", "qif", strings.NewReader(""))

	var invalid *bat.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "format", invalid.Field)
}

func TestService_Import_EmptyFile(t *testing.T) {
	svc, _ := newServiceWithMock(t, &stubImporter{parsed: &bat.ParsedFile{}})

	_, err := svc.Import(context.Background(), "f.csv", bat.FormatFrCSV, strings.NewReader(""))

	var invalid *bat.InvalidDataError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "file", invalid.Field)
}

func TestService_Import_ParserErrorWraps(t *testing.T) {
	svc, _ := newServiceWithMock(t, &stubImporter{err: errors.New("bad csv")})

	_, err := svc.Import(context.Background(), "f.csv", bat.FormatFrCSV, strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "f.csv")
}

func TestService_Delete_NotDeletableSurfaces(t *testing.T) {
	svc, repo := newServiceWithMock(t, nil)

	repo.EXPECT().DeleteFile(gomock.Any(), uint64(3)).Return(bat.ErrNotDeletable)

	assert.ErrorIs(t, svc.Delete(context.Background(), 3), bat.ErrNotDeletable)
}
