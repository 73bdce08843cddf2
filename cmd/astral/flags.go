// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cloudeng.io/astral/datetime"
	"cloudeng.io/astral/geocoder"
	"cloudeng.io/astral/location"
	"cloudeng.io/astral/sun"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type CommonFlags struct {
	cmdutil.LoggingFlags
	Format string `subcmd:"format,text,'output format: text, json or yaml'"`
}

type PlaceFlags struct {
	Config     string  `subcmd:"config,,'yaml file containing additional named locations'"`
	Location   string  `subcmd:"location,Greenwich,'named location of the form name[,region]'"`
	Latitude   string  `subcmd:"lat,,'latitude in decimal degrees or degrees/minutes/seconds, overrides --location'"`
	Longitude  string  `subcmd:"lon,,'longitude in decimal degrees or degrees/minutes/seconds, overrides --location'"`
	Elevation  float64 `subcmd:"elevation,0,'elevation of the observer in meters'"`
	Timezone   string  `subcmd:"timezone,,'timezone to use instead of that of the location'"`
	UTC        bool    `subcmd:"utc,false,'display times in UTC'"`
	Depression string  `subcmd:"depression,civil,'depression used for dawn and dusk: civil, nautical, astronomical or a number of degrees'"`
}

// Config represents the yaml file of named locations.
type Config struct {
	Locations []location.Info `yaml:"locations"`
}

func (cf *CommonFlags) setup(ctx context.Context) (context.Context, func(), error) {
	if err := flags.OneOf(cf.Format).Validate("text", "json", "yaml"); err != nil {
		return ctx, func() {}, err
	}
	return setupLogging(ctx, &cf.LoggingFlags)
}

// setupLogging creates the logger requested by the flags and stores it
// in the returned context.
func setupLogging(ctx context.Context, lf *cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func (pf *PlaceFlags) lookup(ctx context.Context) (location.Info, error) {
	if len(pf.Config) > 0 {
		var cfg Config
		if err := cmdyaml.ParseConfigFile(ctx, pf.Config, &cfg); err != nil {
			return location.Info{}, err
		}
		db := geocoder.NewDB()
		db.Add(cfg.Locations...)
		if info, err := db.Lookup(pf.Location); err == nil {
			ctxlog.Logger(ctx).Debug("location from config", "config", pf.Config, "location", info.String())
			return info, nil
		}
	}
	return geocoder.Default().Lookup(pf.Location)
}

// place returns the location and timezone specified by the flags.
func (pf *PlaceFlags) place(ctx context.Context) (*location.Location, *time.Location, error) {
	var info location.Info
	var err error
	switch {
	case len(pf.Latitude) > 0 || len(pf.Longitude) > 0:
		if len(pf.Latitude) == 0 || len(pf.Longitude) == 0 {
			return nil, nil, fmt.Errorf("both --lat and --lon must be specified")
		}
		info, err = location.NewInfo("custom", "", "UTC", pf.Latitude, pf.Longitude)
	default:
		info, err = pf.lookup(ctx)
	}
	if err != nil {
		return nil, nil, err
	}
	if pf.Elevation != 0 {
		info.Elevation = pf.Elevation
	}
	if len(pf.Timezone) > 0 {
		info.Timezone = pf.Timezone
	}
	place := location.New(info)
	if err := place.SolarDepression.Parse(pf.Depression); err != nil {
		return nil, nil, err
	}
	tz, err := place.Zone(!pf.UTC)
	if err != nil {
		return nil, nil, err
	}
	ctxlog.Logger(ctx).Info("location", "location", info.String(), "timezone", tz.String())
	return place, tz, nil
}

func parseDate(val string, now time.Time, tz *time.Location) (datetime.CalendarDate, error) {
	if len(val) == 0 {
		return datetime.Today(now, tz), nil
	}
	return datetime.ParseCalendarDate(val)
}

func dateRange(from, to string, now time.Time, tz *time.Location) (datetime.CalendarDate, datetime.CalendarDate, error) {
	start := datetime.Today(now, tz)
	if len(from) > 0 {
		cd, err := datetime.ParseCalendarDate(from)
		if err != nil {
			return 0, 0, err
		}
		start = cd
	}
	end := start.AddDays(6)
	if len(to) > 0 {
		cd, err := datetime.ParseCalendarDate(to)
		if err != nil {
			return 0, 0, err
		}
		end = cd
	}
	if end < start {
		return 0, 0, fmt.Errorf("%v is before %v", end, start)
	}
	return start, end, nil
}

// write writes v to out in the requested format, using text for the
// text format.
func write(out io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(out)
}

// timeOrError is used to report an event that may not occur.
type timeOrError struct {
	Name  string    `json:"name" yaml:"name"`
	Time  time.Time `json:"time,omitzero" yaml:"time,omitempty"`
	Error string    `json:"error,omitempty" yaml:"error,omitempty"`
}

func newTimeOrError(name string, t time.Time, err error) timeOrError {
	if err != nil {
		return timeOrError{Name: name, Error: err.Error()}
	}
	return timeOrError{Name: name, Time: t}
}

func (t timeOrError) text() string {
	if len(t.Error) > 0 {
		return t.Error
	}
	return t.Time.Format(time.TimeOnly + " MST")
}

type intervalOrError struct {
	Name  string    `json:"name" yaml:"name"`
	Start time.Time `json:"start,omitzero" yaml:"start,omitempty"`
	End   time.Time `json:"end,omitzero" yaml:"end,omitempty"`
	Error string    `json:"error,omitempty" yaml:"error,omitempty"`
}

func newIntervalOrError(name string, i sun.Interval, err error) intervalOrError {
	if err != nil {
		return intervalOrError{Name: name, Error: err.Error()}
	}
	return intervalOrError{Name: name, Start: i.Start, End: i.End}
}

func (i intervalOrError) text() string {
	if len(i.Error) > 0 {
		return i.Error
	}
	return i.Start.Format(time.TimeOnly) + " - " + i.End.Format(time.TimeOnly+" MST")
}
