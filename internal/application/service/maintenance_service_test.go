package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pluscontrol/plus-control-api/internal/domain/repository"
	mock_repository "github.com/pluscontrol/plus-control-api/internal/domain/repository/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweepOrphans(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock_repository.NewMockEvidenceStorage(ctrl)
	deliveries := mock_repository.NewMockDeliveryRepository(ctrl)
	svc := NewMaintenanceService(storage, NewEvidenceKeys("deliveries"), deliveries, nil, 24*time.Hour, nil, zerolog.Nop())
	svc.now = func() time.Time { return fixedNow }

	q1 := "deliveries/6f1c1b2e-8d0a-4d43-9a55-0a4a6b3f5c11/1-delivery.jpg"
	q2 := "deliveries/0b6f5a8e-3c1d-4e7a-9f20-5d4c3b2a1f00/2-delivery.jpg"
	q3 := "deliveries/9a7d3c1e-2b4f-4c6a-8e1d-7f5b3a9c2e44/3-delivery.png"
	storage.EXPECT().ListOlderThan(gomock.Any(), "deliveries/", fixedNow.Add(-24*time.Hour)).Return([]repository.StoredObject{
		{Path: q1}, {Path: q2}, {Path: q3},
	}, nil)
	deliveries.EXPECT().ReferencedEvidence(gomock.Any(), []string{q1, q2, q3}).
		Return(map[string]bool{q1: true}, nil)
	storage.EXPECT().Delete(gomock.Any(), q2).Return(nil)
	storage.EXPECT().Delete(gomock.Any(), q3).Return(errors.New("denied"))

	removed, err := svc.SweepOrphans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestSweepOrphans_LeavesForeignObjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock_repository.NewMockEvidenceStorage(ctrl)
	deliveries := mock_repository.NewMockDeliveryRepository(ctrl)
	svc := NewMaintenanceService(storage, NewEvidenceKeys(""), deliveries, nil, time.Hour, nil, zerolog.Nop())
	svc.now = func() time.Time { return fixedNow }

	orphan := "6f1c1b2e-8d0a-4d43-9a55-0a4a6b3f5c11/1700000000000-delivery.jpg"
	storage.EXPECT().ListOlderThan(gomock.Any(), "", gomock.Any()).Return([]repository.StoredObject{
		{Path: "reports/x.pdf"},
		{Path: "backups/db.sql.gz"},
		{Path: "6f1c1b2e-8d0a-4d43-9a55-0a4a6b3f5c11/notes.txt"},
		{Path: orphan},
	}, nil)
	deliveries.EXPECT().ReferencedEvidence(gomock.Any(), []string{orphan}).Return(map[string]bool{}, nil)
	storage.EXPECT().Delete(gomock.Any(), orphan).Return(nil)

	removed, err := svc.SweepOrphans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestRunOnce_PurgesIdempotencyKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock_repository.NewMockEvidenceStorage(ctrl)
	deliveries := mock_repository.NewMockDeliveryRepository(ctrl)
	idem := mock_repository.NewMockIdempotencyRepository(ctrl)
	svc := NewMaintenanceService(storage, NewEvidenceKeys("deliveries"), deliveries, idem, time.Hour, nil, zerolog.Nop())
	svc.now = func() time.Time { return fixedNow }

	storage.EXPECT().ListOlderThan(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("listing failed"))
	idem.EXPECT().PurgeExpired(gomock.Any(), fixedNow).Return(int64(3), nil)

	svc.RunOnce(context.Background())
}

func TestRun_DisabledAndCancelled(t *testing.T) {
	svc := NewMaintenanceService(nil, NewEvidenceKeys(""), nil, nil, time.Hour, nil, zerolog.Nop())
	svc.Run(context.Background(), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan struct{})
	go func() {
		svc.Run(ctx, time.Hour)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}
