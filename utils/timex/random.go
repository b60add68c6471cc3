// File: random.go
// Title: Random Time Sampling
// Description: Uniform millisecond-resolution sampling between two times.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package timex

import (
	"math/rand/v2"
	"time"
)

// Float64Source produces floats in [0, 1). *rand.Rand satisfies it.
type Float64Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// RandomZonedUTC returns a time in UTC drawn uniformly at millisecond
// resolution from the closed range between from and to
func RandomZonedUTC(rng Float64Source, from, to time.Time) time.Time {
	begin := from.UnixMilli()
	end := to.UnixMilli()
	span := end - begin + 1
	return time.UnixMilli(begin + int64(rng.Float64()*float64(span))).UTC()
}

// RandomZonedUTCDefault is RandomZonedUTC with the global random source
func RandomZonedUTCDefault(from, to time.Time) time.Time {
	return RandomZonedUTC(globalSource{}, from, to)
}
