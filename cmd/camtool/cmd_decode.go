package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartcity/castation/internal/cam"
	"github.com/smartcity/castation/internal/domain"
)

// readPayload takes the payload from a hex argument or, with --in, from a file
func readPayload(args []string, in string) ([]byte, error) {
	if in != "" {
		return os.ReadFile(in)
	}
	if len(args) == 0 {
		return nil, errors.New("need a hex payload or --in")
	}
	raw := strings.TrimPrefix(strings.TrimSpace(args[0]), "0x")
	payload, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return payload, nil
}

type decoded struct {
	Message    *domain.CAM          `json:"cam"`
	Kinematics domain.KinematicView `json:"kinematics"`
	Valid      bool                 `json:"valid"`
	Problem    string               `json:"problem,omitempty"`
}

// newDecodeCmd creates the "camtool decode" subcommand.
func newDecodeCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode a CAM payload to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(args, in)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			msg, err := cam.Decode(payload)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			out := decoded{Message: msg, Kinematics: cam.ToKinematics(msg).View(), Valid: true}
			if err := cam.NewValidator().Validate(msg); err != nil {
				out.Valid = false
				out.Problem = err.Error()
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "read the raw payload from this file")
	return cmd
}

// newValidateCmd creates the "camtool validate" subcommand.
func newValidateCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "validate [hex]",
		Short: "Check a CAM payload against the message constraints",
		Long:  "Decode a payload and run the CAM validation rules on it.\nExits non-zero when the payload does not decode or breaks a rule.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(args, in)
			if err != nil {
				return fmt.Errorf("validate: %w", err)
			}
			msg, err := cam.Decode(payload)
			if err != nil {
				return fmt.Errorf("validate: %w", err)
			}
			if err := cam.NewValidator().Validate(msg); err != nil {
				return fmt.Errorf("validate: station %d: %w", msg.Header.StationID, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "CAM from station %d is valid (%d bytes)\n", msg.Header.StationID, len(payload))
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "read the raw payload from this file")
	return cmd
}
