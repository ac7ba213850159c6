package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/repository/sqlite"
)

var base = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func openTestRepo(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.Open(filepath.Join(t.TempDir(), "neighbors.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func record(station uint32, lat int32, valid bool, at time.Time) domain.AwarenessRecord {
	msg := domain.CAM{
		Header:              domain.ItsPduHeader{ProtocolVersion: 2, MessageID: domain.MessageIDCAM, StationID: station},
		GenerationDeltaTime: 512,
		Basic: domain.BasicContainer{
			StationType:       domain.StationTypePassengerCar,
			ReferencePosition: domain.ReferencePosition{Latitude: lat, Longitude: 768897000},
		},
		LowFrequency: &domain.BasicVehicleContainerLowFrequency{ExteriorLights: 0x08},
	}
	return domain.NewAwarenessRecord(msg, valid, at)
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	ctx := context.Background()

	in := record(4711, 432389000, false, base)
	if err := repo.UpdateAwareness(ctx, in); err != nil {
		t.Fatalf("UpdateAwareness: %v", err)
	}

	got, err := repo.GetNeighbor(ctx, 4711)
	if err != nil {
		t.Fatalf("GetNeighbor: %v", err)
	}
	if got.ID != in.ID || got.Valid || !got.ReceivedAt.Equal(base) {
		t.Errorf("record metadata mismatch: %+v", got)
	}
	if got.Message.Basic.ReferencePosition.Latitude != 432389000 || got.Message.GenerationDeltaTime != 512 {
		t.Errorf("message mismatch: %+v", got.Message)
	}
	if got.Message.LowFrequency == nil || got.Message.LowFrequency.ExteriorLights != 0x08 {
		t.Error("low frequency container lost")
	}

	if _, err := repo.GetNeighbor(ctx, 1); !errors.Is(err, domain.ErrNeighborNotFound) {
		t.Errorf("err = %v, want ErrNeighborNotFound", err)
	}
	if err := repo.Health(ctx); err != nil {
		t.Errorf("Health: %v", err)
	}
}

func TestRepositoryUpsertKeepsNewest(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	ctx := context.Background()

	if err := repo.UpdateAwareness(ctx, record(7, 100, true, base.Add(time.Second))); err != nil {
		t.Fatal(err)
	}
	if err := repo.UpdateAwareness(ctx, record(7, 200, true, base)); err != nil {
		t.Fatal(err)
	}
	got, err := repo.GetNeighbor(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if got.Message.Basic.ReferencePosition.Latitude != 100 {
		t.Error("older record overwrote a newer one")
	}

	if err := repo.UpdateAwareness(ctx, record(7, 300, true, base.Add(2*time.Second))); err != nil {
		t.Fatal(err)
	}
	got, _ = repo.GetNeighbor(ctx, 7)
	if got.Message.Basic.ReferencePosition.Latitude != 300 {
		t.Error("newer record was not stored")
	}
}

func TestRepositoryGetNeighbors(t *testing.T) {
	t.Parallel()

	repo := openTestRepo(t)
	ctx := context.Background()
	for i := uint32(1); i <= 3; i++ {
		if err := repo.UpdateAwareness(ctx, record(i, int32(i), true, base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.GetNeighbors(ctx, base.Add(2*time.Second))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].StationID != 3 || got[1].StationID != 2 {
		t.Errorf("unexpected neighbors %+v", got)
	}
}
