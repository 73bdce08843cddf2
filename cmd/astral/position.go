// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloudeng.io/astral/location"
	"cloudeng.io/astral/sun"
)

type positionFlags struct {
	CommonFlags
	PlaceFlags
	Time         string `subcmd:"time,,'time in RFC3339 format, defaults to now'"`
	NoRefraction bool   `subcmd:"no-refraction,false,'do not adjust the zenith for atmospheric refraction'"`
}

type positionReport struct {
	sun.Position `yaml:",inline"`

	Location location.Info `json:"location" yaml:"location"`
	Time     time.Time     `json:"time" yaml:"time"`
}

func (r positionReport) text(out io.Writer) error {
	fmt.Fprintf(out, "%v, %v: %v\n", r.Location.Name, r.Location.Region, r.Time.Format(time.RFC3339))
	fmt.Fprintf(out, "zenith     %8.4f\n", r.Zenith)
	fmt.Fprintf(out, "azimuth    %8.4f\n", r.Azimuth)
	fmt.Fprintf(out, "elevation  %8.4f\n", r.Elevation)
	return nil
}

func (a *app) position(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*positionFlags)
	ctx, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	place, tz, err := fv.place(ctx)
	if err != nil {
		return err
	}
	when := a.now()
	if len(fv.Time) > 0 {
		when, err = time.Parse(time.RFC3339, fv.Time)
		if err != nil {
			return err
		}
	}
	when = when.In(tz)
	report := positionReport{
		Location: place.Info,
		Time:     when,
		Position: place.Position(when, !fv.NoRefraction),
	}
	return write(a.out, fv.Format, report, report.text)
}
