package counter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbook-core/openbook/internal/counter"
)

func TestService_KindRouting(t *testing.T) {
	type testCase struct {
		name string
		kind counter.Kind
		call func(svc *counter.Service, ctx context.Context) (uint64, error)
	}

	tests := []testCase{
		{
			name: "NextEntryNumber",
			kind: counter.KindEntry,
			call: func(svc *counter.Service, ctx context.Context) (uint64, error) {
				return svc.NextEntryNumber(ctx)
			},
		},
		{
			name: "NextBatID",
			kind: counter.KindBat,
			call: func(svc *counter.Service, ctx context.Context) (uint64, error) {
				return svc.NextBatID(ctx)
			},
		},
		{
			name: "NextBatLineID",
			kind: counter.KindBatLine,
			call: func(svc *counter.Service, ctx context.Context) (uint64, error) {
				return svc.NextBatLineID(ctx)
			},
		},
		{
			name: "NextConcilID",
			kind: counter.KindConcil,
			call: func(svc *counter.Service, ctx context.Context) (uint64, error) {
				return svc.NextConcilID(ctx)
			},
		},
		{
			name: "NextSettlementID",
			kind: counter.KindSettlement,
			call: func(svc *counter.Service, ctx context.Context) (uint64, error) {
				return svc.NextSettlementID(ctx)
			},
		},
		{
			name: "NextDocID",
			kind: counter.KindDoc,
			call: func(svc *counter.Service, ctx context.Context) (uint64, error) {
				return svc.NextDocID(ctx)
			},
		},
		{
			name: "NextOpeID",
			kind: counter.KindOpe,
			call: func(svc *counter.Service, ctx context.Context) (uint64, error) {
				return svc.NextOpeID(ctx)
			},
		},
		{
			name: "NextTiersID",
			kind: counter.KindTiers,
			call: func(svc *counter.Service, ctx context.Context) (uint64, error) {
				return svc.NextTiersID(ctx)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := counter.NewMockRepository(ctrl)
			repo.EXPECT().GetNext(gomock.Any(), tt.kind).Return(uint64(42), nil)

			svc := counter.NewService(repo)
			got, err := tt.call(svc, context.Background())

			require.NoError(t, err)
			assert.Equal(t, uint64(42), got)
		})
	}
}

func TestService_GetNext_ErrorReturnsNoValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := counter.NewMockRepository(ctrl)
	repo.EXPECT().
		GetNext(gomock.Any(), counter.KindEntry).
		Return(uint64(0), errors.New("write failed"))

	svc := counter.NewService(repo)
	got, err := svc.NextEntryNumber(context.Background())

	assert.Error(t, err)
	assert.Zero(t, got)
}

func TestService_GetLast_UnallocatedKindIsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := counter.NewMockRepository(ctrl)
	repo.EXPECT().GetLast(gomock.Any(), counter.KindConcil).Return(uint64(0), nil)

	svc := counter.NewService(repo)
	got, err := svc.LastConcilID(context.Background())

	require.NoError(t, err)
	assert.Zero(t, got)
}
