package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcity/castation/internal/cam"
	"github.com/smartcity/castation/internal/domain"
	"github.com/smartcity/castation/internal/its"
	"github.com/smartcity/castation/internal/service"
)

type sampleOpts struct {
	stationID   uint32
	stationType uint8
	vehicle     service.VehicleState
	lowFreq     bool
	out         string
}

// newSampleCmd creates the "camtool sample" subcommand.
func newSampleCmd() *cobra.Command {
	var opts sampleOpts

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Encode a CAM for the given vehicle state",
		Long:  "Build a CAM from plain vehicle values and print its payload as hex.\nWith --out the raw payload is written to a file instead.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := buildSample(opts)
			if err != nil {
				return fmt.Errorf("sample: %w", err)
			}
			if opts.out != "" {
				if err := os.WriteFile(opts.out, payload, 0o644); err != nil {
					return fmt.Errorf("sample: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(payload), opts.out)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(payload))
			return nil
		},
	}

	f := cmd.Flags()
	f.Uint32Var(&opts.stationID, "station", 1001, "station id")
	f.Uint8Var(&opts.stationType, "station-type", domain.StationTypePassengerCar, "station type")
	f.Float64Var(&opts.vehicle.Latitude, "lat", 43.2389, "latitude in degrees")
	f.Float64Var(&opts.vehicle.Longitude, "lon", 76.8897, "longitude in degrees")
	f.Float64Var(&opts.vehicle.SpeedMps, "speed", 0, "signed speed in m/s, negative when reversing")
	f.Float64Var(&opts.vehicle.HeadingDeg, "heading", 0, "heading in degrees from north")
	f.Float64Var(&opts.vehicle.AccelerationMps2, "accel", 0, "longitudinal acceleration in m/s^2")
	f.Float64Var(&opts.vehicle.YawRateDegS, "yaw-rate", 0, "yaw rate in deg/s")
	f.BoolVar(&opts.lowFreq, "lf", false, "attach the low frequency container")
	f.StringVarP(&opts.out, "out", "o", "", "write the raw payload to this file")
	return cmd
}

func buildSample(opts sampleOpts) ([]byte, error) {
	vehicle, err := service.NewVehicleService(opts.stationID, opts.vehicle, its.NewClock(nil))
	if err != nil {
		return nil, err
	}
	k := vehicle.Snapshot()

	cfg := cam.DefaultBuilderConfig()
	cfg.StationType = opts.stationType
	msg, err := cam.NewBuilder(cfg, nil).Build(k, its.GenerationDeltaTime(k.Timestamp), opts.lowFreq)
	if err != nil {
		return nil, err
	}
	return cam.Encode(msg)
}
