package main

import (
	"flag"
	"fmt"
	"os"

	"Wavelock/pkg/ofdm"
)

func main() {
	m := flag.Int("m", 64, "number of subcarriers")
	flag.Parse()

	alloc := ofdm.DefaultAllocation(*m)

	numNull, numPilot, numData, err := alloc.Validate()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(alloc)
	fmt.Printf("null:  %4d\n", numNull)
	fmt.Printf("pilot: %4d\n", numPilot)
	fmt.Printf("data:  %4d\n", numData)

	s0, err := ofdm.ShortSequence(alloc)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	s1, err := ofdm.LongSequence(alloc)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("S0: %4d enabled subcarriers\n", s0.Enabled)
	fmt.Printf("S1: %4d enabled subcarriers\n", s1.Enabled)
}
