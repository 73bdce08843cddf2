// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloudeng.io/astral/datetime"
	"cloudeng.io/astral/location"
	"cloudeng.io/astral/sun"
)

type sunFlags struct {
	CommonFlags
	PlaceFlags
	Date string `subcmd:"date,,'date to use, defaults to today'"`
}

type sunReport struct {
	Location  location.Info     `json:"location" yaml:"location"`
	Date      string            `json:"date" yaml:"date"`
	Timezone  string            `json:"timezone" yaml:"timezone"`
	Events    []timeOrError     `json:"events" yaml:"events"`
	Intervals []intervalOrError `json:"intervals" yaml:"intervals"`
}

func (r sunReport) text(out io.Writer) error {
	fmt.Fprintf(out, "%v, %v: %v (%v)\n", r.Location.Name, r.Location.Region, r.Date, r.Timezone)
	for _, e := range r.Events {
		fmt.Fprintf(out, "%-26s %s\n", e.Name, e.text())
	}
	for _, i := range r.Intervals {
		fmt.Fprintf(out, "%-26s %s\n", i.Name, i.text())
	}
	return nil
}

func sunEvents(place *location.Location, cd datetime.CalendarDate, local bool) []timeOrError {
	dawn := sun.DawnEvent{Depression: place.SolarDepression}
	dusk := sun.DuskEvent{Depression: place.SolarDepression}
	events := []struct {
		name string
		fn   func(datetime.CalendarDate, bool) (time.Time, error)
	}{
		{dawn.Name(), place.Dawn},
		{"sunrise", place.Sunrise},
		{"noon", place.Noon},
		{"sunset", place.Sunset},
		{dusk.Name(), place.Dusk},
		{"midnight", place.Midnight},
	}
	report := make([]timeOrError, 0, len(events))
	for _, e := range events {
		t, err := e.fn(cd, local)
		report = append(report, newTimeOrError(e.name, t, err))
	}
	return report
}

func sunIntervals(place *location.Location, cd datetime.CalendarDate, local bool) []intervalOrError {
	var report []intervalOrError
	add := func(name string, i sun.Interval, err error) {
		report = append(report, newIntervalOrError(name, i, err))
	}
	i, err := place.Daylight(cd, local)
	add("daylight", i, err)
	i, err = place.Night(cd, local)
	add("night", i, err)
	for _, dir := range []sun.Direction{sun.Rising, sun.Setting} {
		i, err = place.Twilight(cd, dir, local)
		add("twilight ("+dir.String()+")", i, err)
		i, err = place.BlueHour(cd, dir, local)
		add("blue hour ("+dir.String()+")", i, err)
		i, err = place.GoldenHour(cd, dir, local)
		add("golden hour ("+dir.String()+")", i, err)
	}
	i, err = place.Rahukaalam(cd, true, local)
	add("rahukaalam", i, err)
	return report
}

func (a *app) sun(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*sunFlags)
	ctx, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	place, tz, err := fv.place(ctx)
	if err != nil {
		return err
	}
	cd, err := parseDate(fv.Date, a.now(), tz)
	if err != nil {
		return err
	}
	local := !fv.UTC
	report := sunReport{
		Location:  place.Info,
		Date:      cd.String(),
		Timezone:  tz.String(),
		Events:    sunEvents(place, cd, local),
		Intervals: sunIntervals(place, cd, local),
	}
	return write(a.out, fv.Format, report, report.text)
}
