package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/smartcity/castation/internal/cam"
	"github.com/smartcity/castation/internal/dcc"
	delivery "github.com/smartcity/castation/internal/delivery/http"
	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/its"
	"github.com/smartcity/castation/internal/metrics"
	"github.com/smartcity/castation/internal/repository/memory"
	"github.com/smartcity/castation/internal/service"
	"github.com/smartcity/castation/internal/transport"
)

type sink struct {
	got  []transport.Indication
	full bool
}

func (s *sink) Deliver(ind transport.Indication) error {
	if s.full {
		return errors.New("full")
	}
	s.got = append(s.got, ind)
	return nil
}

type testStation struct {
	app     *fiber.App
	ca      *service.CaService
	vehicle *service.VehicleService
	repo    *memory.Repository
	sink    *sink
}

func newTestStation(t *testing.T) *testStation {
	t.Helper()

	repo, err := memory.NewRepository(16)
	if err != nil {
		t.Fatal(err)
	}
	vehicle, err := service.NewVehicleService(1001, service.VehicleState{Latitude: 43.2389, Longitude: 76.8897, SpeedMps: 5}, its.NewClock(nil))
	if err != nil {
		t.Fatal(err)
	}
	sched, err := service.NewGenerationScheduler(service.DefaultSchedulerConfig())
	if err != nil {
		t.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	recorder := metrics.NewPrometheus(reg)
	channel := dcc.NewReactive()
	ca, err := service.NewCaService(service.CaDependencies{
		Source:    vehicle,
		DCC:       channel,
		Builder:   cam.NewBuilder(cam.DefaultBuilderConfig(), nil),
		Transport: transport.NewLoopback(1001),
		Metrics:   recorder,
		Scheduler: sched,
	})
	if err != nil {
		t.Fatal(err)
	}
	reception := service.NewReceptionHandler(nil, repo, recorder)

	s := &testStation{ca: ca, vehicle: vehicle, repo: repo, sink: &sink{}}
	s.app = fiber.New(fiber.Config{ErrorHandler: delivery.ErrorHandler})
	handler := delivery.NewHandler(ca, reception, vehicle, repo, channel, s.sink)
	delivery.SetupRoutes(s.app, handler, reg)
	return s
}

func (s *testStation) do(t *testing.T, method, path, body string, headers map[string]string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" && headers["Content-Type"] == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := s.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestHealthAndStation(t *testing.T) {
	t.Parallel()

	s := newTestStation(t)

	code, body := s.do(t, fiber.MethodGet, "/health", "", nil)
	if code != fiber.StatusOK || body["store"] != "ok" {
		t.Errorf("health: %d %v", code, body)
	}

	code, body = s.do(t, fiber.MethodGet, "/api/v1/station", "", nil)
	if code != fiber.StatusOK {
		t.Fatalf("station: %d", code)
	}
	data := body["data"].(map[string]any)
	for _, key := range []string{"generation", "reception", "kinematics", "dcc"} {
		if _, ok := data[key]; !ok {
			t.Errorf("station response lacks %q", key)
		}
	}
}

func TestVehicleUpdate(t *testing.T) {
	t.Parallel()

	s := newTestStation(t)

	code, _ := s.do(t, fiber.MethodPut, "/api/v1/vehicle", `{"lat":51.5,"lon":-0.12,"speed_mps":12,"heading_deg":180}`, nil)
	if code != fiber.StatusOK {
		t.Fatalf("update: %d", code)
	}
	if got := s.vehicle.Snapshot().Speed.MetersPerSecond(); got != 12 {
		t.Errorf("speed = %v, want 12", got)
	}

	if code, _ := s.do(t, fiber.MethodPut, "/api/v1/vehicle", `{"lat":95}`, nil); code != fiber.StatusUnprocessableEntity {
		t.Errorf("invalid latitude: %d", code)
	}
	if code, _ := s.do(t, fiber.MethodPut, "/api/v1/vehicle", `{`, nil); code != fiber.StatusBadRequest {
		t.Errorf("malformed body: %d", code)
	}

	code, _ = s.do(t, fiber.MethodPost, "/api/v1/vehicle/simulation", `{"target_speed_mps":10,"acceleration_mps2":2,"deceleration_mps2":3}`, nil)
	if code != fiber.StatusOK || !s.vehicle.Simulating() {
		t.Errorf("start simulation: %d", code)
	}
	if code, _ := s.do(t, fiber.MethodDelete, "/api/v1/vehicle/simulation", "", nil); code != fiber.StatusNoContent || s.vehicle.Simulating() {
		t.Errorf("stop simulation: %d", code)
	}
}

func TestLastCAM(t *testing.T) {
	t.Parallel()

	s := newTestStation(t)
	if code, _ := s.do(t, fiber.MethodGet, "/api/v1/station/last-cam", "", nil); code != fiber.StatusNotFound {
		t.Errorf("before first CAM: %d", code)
	}

	ctx := context.Background()
	now := time.Now()
	if err := s.ca.Trigger(ctx, now); err != nil {
		t.Fatal(err)
	}
	if err := s.ca.Trigger(ctx, now.Add(time.Second)); err != nil {
		t.Fatal(err)
	}

	code, body := s.do(t, fiber.MethodGet, "/api/v1/station/last-cam", "", nil)
	if code != fiber.StatusOK {
		t.Fatalf("last CAM: %d", code)
	}
	header := body["data"].(map[string]any)["header"].(map[string]any)
	if header["station_id"].(float64) != 1001 {
		t.Errorf("header = %v", header)
	}

	code, _ = s.do(t, fiber.MethodGet, "/metrics", "", nil)
	if code != fiber.StatusOK {
		t.Errorf("metrics: %d", code)
	}
}

func TestChannelLoad(t *testing.T) {
	t.Parallel()

	s := newTestStation(t)

	code, body := s.do(t, fiber.MethodPut, "/api/v1/dcc", `{"cbr":0.5}`, nil)
	if code != fiber.StatusOK {
		t.Fatalf("dcc: %d", code)
	}
	data := body["data"].(map[string]any)
	if data["state"] != "active3" || data["delay_ms"].(float64) != 260 {
		t.Errorf("dcc response %v", data)
	}

	if code, _ := s.do(t, fiber.MethodPut, "/api/v1/dcc", `{"cbr":2}`, nil); code != fiber.StatusUnprocessableEntity {
		t.Errorf("cbr out of range: %d", code)
	}
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	s := newTestStation(t)
	msg := domain.CAM{
		Header: domain.ItsPduHeader{ProtocolVersion: 2, MessageID: domain.MessageIDCAM, StationID: 2002},
		Basic: domain.BasicContainer{
			ReferencePosition: domain.ReferencePosition{Latitude: 432389000, Longitude: 768897000},
		},
	}
	if err := s.repo.UpdateAwareness(context.Background(), domain.NewAwarenessRecord(msg, true, time.Now())); err != nil {
		t.Fatal(err)
	}

	code, body := s.do(t, fiber.MethodGet, "/api/v1/neighbors?seconds=30", "", nil)
	if code != fiber.StatusOK || body["count"].(float64) != 1 {
		t.Fatalf("neighbors: %d %v", code, body)
	}

	code, body = s.do(t, fiber.MethodGet, "/api/v1/neighbors/2002", "", nil)
	if code != fiber.StatusOK {
		t.Fatalf("neighbor: %d", code)
	}
	kin := body["data"].(map[string]any)["kinematics"].(map[string]any)
	if lat := kin["lat"].(float64); lat < 43.2388 || lat > 43.2390 {
		t.Errorf("decoded latitude %v", lat)
	}

	if code, _ := s.do(t, fiber.MethodGet, "/api/v1/neighbors/9", "", nil); code != fiber.StatusNotFound {
		t.Errorf("unknown neighbor: %d", code)
	}
	if code, _ := s.do(t, fiber.MethodGet, "/api/v1/neighbors/abc", "", nil); code != fiber.StatusBadRequest {
		t.Errorf("bad id: %d", code)
	}
}

func TestInjectIndication(t *testing.T) {
	t.Parallel()

	s := newTestStation(t)
	octets := map[string]string{"Content-Type": "application/octet-stream"}

	headers := map[string]string{"Content-Type": "application/octet-stream", "X-Btp-Port": "2002"}
	if code, _ := s.do(t, fiber.MethodPost, "/api/v1/indications", "\x92\x01", headers); code != fiber.StatusAccepted {
		t.Fatalf("inject: %d", code)
	}
	if len(s.sink.got) != 1 || s.sink.got[0].DestinationPort != 2002 || len(s.sink.got[0].Payload) != 2 {
		t.Errorf("sink got %+v", s.sink.got)
	}

	if code, _ := s.do(t, fiber.MethodPost, "/api/v1/indications", "x", map[string]string{"X-Btp-Port": "70000"}); code != fiber.StatusBadRequest {
		t.Errorf("bad port: %d", code)
	}
	if code, _ := s.do(t, fiber.MethodPost, "/api/v1/indications", "", octets); code != fiber.StatusBadRequest {
		t.Errorf("empty payload: %d", code)
	}

	s.sink.full = true
	if code, _ := s.do(t, fiber.MethodPost, "/api/v1/indications", "x", octets); code != fiber.StatusServiceUnavailable {
		t.Errorf("full queue: %d", code)
	}
}
