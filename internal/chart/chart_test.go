package chart_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbook-core/openbook/internal/account"
	"github.com/openbook-core/openbook/internal/chart"
)

const sampleChart = `
name: PCG minimal
currency: EUR
accounts:
  - number: "4"
    label: Comptes de tiers
    root: true
  - number: "411000"
    label: Clients
    settleable: true
  - number: "512000"
    label: Banque
    reconciliable: true
    currency: USD
`

func TestParse(t *testing.T) {
	c, err := chart.Parse(strings.NewReader(sampleChart))
	require.NoError(t, err)

	assert.Equal(t, "PCG minimal", c.Name)
	require.Len(t, c.Accounts, 3)

	// root accounts never inherit the chart currency
	assert.Empty(t, c.Accounts[0].Currency)
	// detail accounts inherit it unless they set their own
	assert.Equal(t, "EUR", c.Accounts[1].Currency)
	assert.Equal(t, "USD", c.Accounts[2].Currency)
}

func TestParse_Rejections(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"NoAccounts", "name: empty\ncurrency: EUR\n"},
		{"BadNumber", "accounts:\n  - number: \"X99\"\n    label: Bad\n"},
		{"DuplicateNumber", "accounts:\n  - number: \"411000\"\n    label: A\n  - number: \"411000\"\n    label: B\n"},
		{"MissingLabel", "accounts:\n  - number: \"411000\"\n"},
		{"UnknownField", "accounts:\n  - number: \"411000\"\n    label: A\n    colour: red\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chart.Parse(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestSeeder_Apply_SkipsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := account.NewMockRepository(ctrl)
	accounts := account.NewService(repo)

	c, err := chart.Parse(strings.NewReader(sampleChart))
	require.NoError(t, err)

	// "4" already exists, the two detail accounts get created.
	repo.EXPECT().GetAccount(gomock.Any(), "4").Return(&account.Account{Number: "4"}, nil)
	repo.EXPECT().GetAccount(gomock.Any(), "411000").Return(nil, account.ErrNotFound)
	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().GetAccount(gomock.Any(), "512000").Return(nil, account.ErrNotFound)
	repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil)

	seeder := chart.NewSeeder(accounts, slog.New(slog.NewTextHandler(io.Discard, nil)))

	created, err := seeder.Apply(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
}
