// Stub for Blinkt! integration to allow build on non-Raspbian platforms.
//go:build !raspbian
// +build !raspbian

package main

// Blinkt shows magnitudes on a Pimoroni Blinkt! LED bar.
type Blinkt struct {
}

// Stop turns the LED bar off.
func (b *Blinkt) Stop() {
}

// NewBlinkt returns a Blinkt displaying values.
func NewBlinkt(values []int) *Blinkt {
	return &Blinkt{}
}
