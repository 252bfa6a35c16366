package main

import (
	"fmt"
	"math"
	"os"

	"Wavelock/cmd/beacon/config"
	"Wavelock/pkg/async"
	"Wavelock/pkg/device"
	"Wavelock/pkg/fixed"
	"Wavelock/pkg/nco"
	"Wavelock/pkg/ofdm"
)

func main() {
	filename := "config.yml"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	cfg, err := config.Load(filename)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	alloc := ofdm.DefaultAllocation(cfg.Preamble.Subcarriers)
	numNull, numPilot, numData, err := alloc.Validate()
	if err != nil {
		fmt.Printf("Error validating allocation: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Subcarrier allocation (%d null, %d pilot, %d data):\n", numNull, numPilot, numData)
	fmt.Println(alloc)

	track, err := buildTrack(cfg, alloc)
	if err != nil {
		fmt.Printf("Error building preamble: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Preamble track: %d samples at %.0f Hz\n", len(track), cfg.Device.SampleRate)

	player := device.Player{
		Track: track,
		Gap:   cfg.Preamble.GapSamples,
		Loop:  true,
	}

	dev := config.CreateDevice(cfg)
	dev.Start(func(in, out []int32) {
		player.Update(out)
	})
	defer dev.Stop()

	fmt.Println("Transmitting, press Enter to stop")
	<-async.EnterKey()
}

// buildTrack upconverts the S0/S1 training symbols to the configured
// carrier frequency and scales the result to the configured peak level.
func buildTrack(cfg *config.Config, alloc ofdm.Allocation) ([]int32, error) {
	s0, err := ofdm.ShortSequence(alloc)
	if err != nil {
		return nil, err
	}
	s1, err := ofdm.LongSequence(alloc)
	if err != nil {
		return nil, err
	}

	baseband := make([]complex128, 0, (cfg.Preamble.ShortReps+1)*cfg.Preamble.Subcarriers)
	for i := 0; i < cfg.Preamble.ShortReps; i++ {
		baseband = append(baseband, s0.Time...)
	}
	baseband = append(baseband, s1.Time...)

	osc, err := nco.New(nco.Oscillator)
	if err != nil {
		return nil, err
	}
	osc.SetFrequency(fixed.FromFloat(2 * math.Pi * cfg.Carrier.Frequency / cfg.Device.SampleRate))

	samples := make([]float64, len(baseband))
	peak := 0.0
	for i, x := range baseband {
		y := osc.MixUp(fixed.FromComplex128(x))
		osc.Step()
		samples[i] = y.Re.Float()
		if a := math.Abs(samples[i]); a > peak {
			peak = a
		}
	}

	if peak == 0 {
		peak = 1
	}
	g := cfg.Preamble.Amplitude / peak
	track := make([]int32, len(samples))
	for i, v := range samples {
		track[i] = int32(v * g * 0x7fffffff)
	}
	return track, nil
}
