package main

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartcity/castation/internal/cam"
	"github.com/smartcity/castation/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSampleThenDecode(t *testing.T) {
	t.Parallel()

	out, err := run(t, "sample", "--station", "77", "--speed", "-2.5", "--heading", "90", "--lf")
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	payload := strings.TrimSpace(out)

	out, err = run(t, "decode", payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var got struct {
		Message    domain.CAM           `json:"cam"`
		Kinematics domain.KinematicView `json:"kinematics"`
		Valid      bool                 `json:"valid"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output is not JSON: %v\n%s", err, out)
	}
	if !got.Valid || got.Message.Header.StationID != 77 {
		t.Errorf("decoded %+v", got)
	}
	if got.Message.LowFrequency == nil {
		t.Error("low frequency container missing")
	}
	if math.Abs(got.Kinematics.SpeedMps+2.5) > 1e-9 {
		t.Errorf("speed = %v, want -2.5", got.Kinematics.SpeedMps)
	}
	if math.Abs(got.Kinematics.HeadingDeg-90) > 1e-9 {
		t.Errorf("heading = %v, want 90", got.Kinematics.HeadingDeg)
	}
}

func TestSampleToFileThenValidate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cam.bin")
	if _, err := run(t, "sample", "--out", path); err != nil {
		t.Fatalf("sample: %v", err)
	}

	out, err := run(t, "validate", "--in", path)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "station 1001 is valid") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSampleRejectsBadLatitude(t *testing.T) {
	t.Parallel()

	if _, err := run(t, "sample", "--lat", "91"); err == nil {
		t.Error("latitude 91 accepted")
	}
}

func TestValidateReportsBrokenCAM(t *testing.T) {
	t.Parallel()

	msg := domain.CAM{
		Header: domain.ItsPduHeader{ProtocolVersion: 2, MessageID: domain.MessageIDCAM, StationID: 5},
		LowFrequency: &domain.BasicVehicleContainerLowFrequency{
			VehicleRole: 42,
		},
	}
	payload, err := cam.Encode(&msg)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "validate", hex.EncodeToString(payload)); err == nil {
		t.Error("vehicle role 42 passed validation")
	}

	out, err := run(t, "decode", hex.EncodeToString(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(out, `"valid": false`) {
		t.Errorf("decode did not flag the message:\n%s", out)
	}
}

func TestReadPayloadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"no input", nil},
		{"bad hex", []string{"zz"}},
		{"not a cam", []string{"c0"}},
	}
	for _, tt := range tests {
		if _, err := run(t, append([]string{"decode"}, tt.args...)...); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
