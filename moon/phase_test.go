// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package moon_test

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/astral/datetime"
	"cloudeng.io/astral/moon"
)

func TestPhase(t *testing.T) {
	ncd := datetime.NewCalendarDate
	for _, tc := range []struct {
		cd    datetime.CalendarDate
		phase float64
	}{
		{ncd(2015, 12, 1), 19.477889},
		{ncd(2015, 12, 2), 20.333444},
		{ncd(2015, 12, 3), 21.189},
		{ncd(2014, 12, 1), 9.0556666},
		{ncd(2014, 12, 2), 10.066777},
		{ncd(2014, 1, 1), 27.955666},
	} {
		if got, want := moon.Phase(tc.cd), tc.phase; math.Abs(got-want) > 0.001 {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
	}
}

func TestPhaseRange(t *testing.T) {
	for cd := datetime.NewCalendarDate(1900, 1, 1); cd < datetime.NewCalendarDate(2100, 1, 1); cd = cd.AddDays(3) {
		if p := moon.Phase(cd); p < 0 || p >= 28 {
			t.Fatalf("%v: phase %v out of range", cd, p)
		}
	}
}

func TestPhaseNames(t *testing.T) {
	for _, tc := range []struct {
		phase float64
		name  moon.PhaseName
	}{
		{0, moon.New},
		{6.99, moon.New},
		{7, moon.FirstQuarter},
		{13.99, moon.FirstQuarter},
		{14, moon.Full},
		{20.99, moon.Full},
		{21, moon.LastQuarter},
		{27.99, moon.LastQuarter},
	} {
		if got, want := moon.NameForPhase(tc.phase), tc.name; got != want {
			t.Errorf("%v: got %v, want %v", tc.phase, got, want)
		}
	}
	if got, want := moon.NameForPhase(moon.Phase(datetime.NewCalendarDate(2015, 12, 1))).String(), "full moon"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIllumination(t *testing.T) {
	full := time.Date(2015, 11, 25, 22, 44, 0, 0, time.UTC)
	if got := moon.Illumination(full); got < 0.98 {
		t.Errorf("full moon: got %v", got)
	}
	newMoon := time.Date(2015, 12, 11, 10, 29, 0, 0, time.UTC)
	if got := moon.Illumination(newMoon); got > 0.02 {
		t.Errorf("new moon: got %v", got)
	}
	firstQuarter := time.Date(2015, 12, 18, 15, 14, 0, 0, time.UTC)
	if got := moon.Illumination(firstQuarter); math.Abs(got-0.5) > 0.05 {
		t.Errorf("first quarter: got %v", got)
	}
}
