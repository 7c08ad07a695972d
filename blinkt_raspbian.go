//go:build raspbian
// +build raspbian

package main

import (
	"time"

	blinkt "github.com/alexellis/blinkt_go"
)

const blinktPixels = 8

// Blinkt shows magnitudes on a Pimoroni Blinkt! LED bar.
type Blinkt struct {
	ch chan struct{}
}

// Stop turns the LED bar off.
func (b *Blinkt) Stop() {
	b.ch <- struct{}{}
	<-b.ch
}

// NewBlinkt returns a Blinkt displaying values. Pixels light up one by one
// and then hold until Stop is called.
func NewBlinkt(values []int) *Blinkt {
	ch := make(chan struct{})
	go func() {
		brightness := 0.5
		bl := blinkt.NewBlinkt(brightness)
		bl.Setup()
		reds := levels(values, blinktPixels)
		bl.Clear()
		stopped := false
		if len(reds) > 0 {
		outerloop:
			for _, pixel := range seq(0, len(reds)-1) {
				bl.SetPixel(pixel, reds[pixel], 0, 0)
				bl.Show()
				select {
				case <-time.After(100 * time.Millisecond):
				case <-ch:
					stopped = true
					break outerloop
				}
			}
		}
		if !stopped {
			<-ch
		}
		bl.Clear()
		bl.Show()
		close(ch)
	}()
	return &Blinkt{ch}
}
