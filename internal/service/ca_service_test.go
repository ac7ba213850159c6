package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/smartcity/castation/internal/cam"
	"github.com/smartcity/castation/internal/dcc"
	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/transport"
	"github.com/smartcity/castation/internal/units"
)

type fakeSource struct {
	mu sync.Mutex
	k  domain.KinematicSnapshot
}

func (f *fakeSource) Snapshot() domain.KinematicSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.k
}

func (f *fakeSource) turn(deg float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.k.Heading = (f.k.Heading + units.Degrees(deg)).Normalize()
}

type fakeRecorder struct {
	mu       sync.Mutex
	sent     []int
	received []bool
}

func (r *fakeRecorder) CamSent(bytes int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, bytes)
}

func (r *fakeRecorder) CamReceived(valid bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.received = append(r.received, valid)
}

type caFixture struct {
	svc      *CaService
	source   *fakeSource
	radio    *transport.Loopback
	recorder *fakeRecorder
}

func newCaFixture(t *testing.T, builderCfg cam.BuilderConfig) *caFixture {
	t.Helper()

	sched, err := NewGenerationScheduler(DefaultSchedulerConfig())
	if err != nil {
		t.Fatal(err)
	}
	f := &caFixture{
		source:   &fakeSource{k: stationary()},
		radio:    transport.NewLoopback(1001),
		recorder: &fakeRecorder{},
	}
	f.svc, err = NewCaService(CaDependencies{
		Source:    f.source,
		DCC:       dcc.NewStatic(100 * time.Millisecond),
		Builder:   cam.NewBuilder(builderCfg, nil),
		Transport: f.radio,
		Metrics:   f.recorder,
		Scheduler: sched,
	})
	if err != nil {
		t.Fatalf("NewCaService: %v", err)
	}
	return f
}

func TestNewCaServiceRequiresDependencies(t *testing.T) {
	t.Parallel()

	sched, _ := NewGenerationScheduler(DefaultSchedulerConfig())
	full := CaDependencies{
		Source:    &fakeSource{},
		DCC:       dcc.NewStatic(0),
		Builder:   cam.NewBuilder(cam.DefaultBuilderConfig(), nil),
		Transport: transport.NewLoopback(1),
		Metrics:   &fakeRecorder{},
		Scheduler: sched,
	}
	if _, err := NewCaService(full); err != nil {
		t.Fatalf("complete dependencies rejected: %v", err)
	}

	tests := []struct {
		name  string
		strip func(*CaDependencies)
	}{
		{"source", func(d *CaDependencies) { d.Source = nil }},
		{"dcc", func(d *CaDependencies) { d.DCC = nil }},
		{"builder", func(d *CaDependencies) { d.Builder = nil }},
		{"transport", func(d *CaDependencies) { d.Transport = nil }},
		{"metrics", func(d *CaDependencies) { d.Metrics = nil }},
		{"scheduler", func(d *CaDependencies) { d.Scheduler = nil }},
	}
	for _, tt := range tests {
		deps := full
		tt.strip(&deps)
		if _, err := NewCaService(deps); err == nil {
			t.Errorf("missing %s accepted", tt.name)
		}
	}
}

func TestCaServiceSendsWithEnvelope(t *testing.T) {
	t.Parallel()

	f := newCaFixture(t, cam.DefaultBuilderConfig())
	ctx := context.Background()

	if err := f.svc.Trigger(ctx, t0); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(f.radio.Requests()) != 0 {
		t.Fatal("seeding tick sent a CAM")
	}

	f.source.turn(10)
	if err := f.svc.Trigger(ctx, t0.Add(100*time.Millisecond)); err != nil {
		t.Fatalf("Trigger: %v", err)
	}

	reqs := f.radio.Requests()
	if len(reqs) != 1 {
		t.Fatalf("sent %d CAMs, want 1", len(reqs))
	}
	req := reqs[0]
	if req.DestinationPort != transport.PortCAM || req.SecurityProfile != transport.SecurityProfileCAM ||
		req.TransportType != transport.TransportSHB || req.TrafficClass != uint8(dcc.DP2) ||
		req.CommunicationProfile != transport.CommunicationProfileITSG5 {
		t.Errorf("unexpected envelope %v", req)
	}

	msg, err := cam.Decode(req.Payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if msg.Header.StationID != 1001 {
		t.Errorf("station id = %d", msg.Header.StationID)
	}
	if msg.LowFrequency == nil {
		t.Error("first CAM lacks the low frequency container")
	}

	if len(f.recorder.sent) != 1 || f.recorder.sent[0] != len(req.Payload) {
		t.Errorf("recorded sizes %v, want [%d]", f.recorder.sent, len(req.Payload))
	}

	st := f.svc.Status()
	if st.Sent != 1 || st.DynamicsSent != 1 || st.LastTrigger != "dynamics" {
		t.Errorf("unexpected status %+v", st)
	}
	if f.svc.LastCAM() == nil {
		t.Error("LastCAM is nil after an emission")
	}
}

func TestCaServiceSecondaryBlockCadence(t *testing.T) {
	t.Parallel()

	f := newCaFixture(t, cam.DefaultBuilderConfig())
	ctx := context.Background()
	if err := f.svc.Trigger(ctx, t0); err != nil {
		t.Fatal(err)
	}

	for _, at := range []time.Duration{100 * time.Millisecond, 300 * time.Millisecond} {
		f.source.turn(10)
		if err := f.svc.Trigger(ctx, t0.Add(at)); err != nil {
			t.Fatalf("Trigger at %v: %v", at, err)
		}
	}

	reqs := f.radio.Requests()
	if len(reqs) != 2 {
		t.Fatalf("sent %d CAMs, want 2", len(reqs))
	}
	first, err := cam.Decode(reqs[0].Payload)
	if err != nil {
		t.Fatal(err)
	}
	second, err := cam.Decode(reqs[1].Payload)
	if err != nil {
		t.Fatal(err)
	}
	if first.LowFrequency == nil {
		t.Error("first CAM lacks the low frequency container")
	}
	if second.LowFrequency != nil {
		t.Error("CAM 200ms later carries the low frequency container")
	}
	if got := f.svc.Status().State.LastSecondaryTimestamp; !got.Equal(t0.Add(100 * time.Millisecond)) {
		t.Errorf("secondary timestamp = %v", got)
	}
}

func TestCaServiceValidationFailureIsFatalForEmission(t *testing.T) {
	t.Parallel()

	cfg := cam.DefaultBuilderConfig()
	cfg.VehicleRole = 42
	f := newCaFixture(t, cfg)
	ctx := context.Background()
	if err := f.svc.Trigger(ctx, t0); err != nil {
		t.Fatal(err)
	}
	before := f.svc.Status().State

	f.source.turn(10)
	err := f.svc.Trigger(ctx, t0.Add(100*time.Millisecond))
	if !errors.Is(err, ErrInvalidCAM) {
		t.Fatalf("err = %v, want ErrInvalidCAM", err)
	}
	var verr *cam.ValidationError
	if !errors.As(err, &verr) || verr.Reason == "" {
		t.Errorf("error does not carry the validator reason: %v", err)
	}

	if n := len(f.radio.Requests()); n != 0 {
		t.Errorf("invalid CAM reached transport (%d requests)", n)
	}
	if len(f.recorder.sent) != 0 {
		t.Error("invalid CAM recorded as sent")
	}
	st := f.svc.Status()
	if st.State != before {
		t.Error("scheduler state committed for an abandoned emission")
	}
	if st.InvalidBuilds != 1 {
		t.Errorf("invalid builds = %d", st.InvalidBuilds)
	}
}

func TestCaServiceTransportErrorAfterCommit(t *testing.T) {
	t.Parallel()

	f := newCaFixture(t, cam.DefaultBuilderConfig())
	ctx := context.Background()
	if err := f.svc.Trigger(ctx, t0); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("no carrier")
	f.radio.FailWith(boom)
	f.source.turn(10)
	now := t0.Add(100 * time.Millisecond)
	if err := f.svc.Trigger(ctx, now); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}

	st := f.svc.Status()
	if !st.State.LastSentTimestamp.Equal(now) {
		t.Error("emission was not committed")
	}
	if st.SendErrors != 1 || st.Sent != 0 {
		t.Errorf("unexpected counters %+v", st)
	}
	if len(f.recorder.sent) != 0 {
		t.Error("failed send recorded as sent")
	}
}

func TestCaServiceStationaryRate(t *testing.T) {
	t.Parallel()

	f := newCaFixture(t, cam.DefaultBuilderConfig())
	ctx := context.Background()

	// 5 simulated seconds at a 50ms host tick
	for i := 0; i <= 100; i++ {
		if err := f.svc.Trigger(ctx, t0.Add(time.Duration(i)*50*time.Millisecond)); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if n := len(f.radio.Requests()); n != 5 {
		t.Errorf("stationary station sent %d CAMs in 5s, want 5", n)
	}
}
