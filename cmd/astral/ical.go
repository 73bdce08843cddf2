// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/astral/datetime"
	"cloudeng.io/astral/location"
	"cloudeng.io/astral/moon"
	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

type icalFlags struct {
	cmdutil.LoggingFlags
	PlaceFlags
	RangeFlags
	Output string `subcmd:"output,,'file to write the calendar to, defaults to stdout'"`
}

// eventUID returns a uid that is stable for the same event, date and
// location so that re-imported calendars update existing entries.
func eventUID(info location.Info, date, event string) string {
	name := fmt.Sprintf("%.6f,%.6f/%v/%v", info.Latitude, info.Longitude, date, event)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String() + "@astral.cloudeng.io"
}

func newCalendar(info location.Info, rows []rangeRow, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//cloudeng.io//astral//EN")
	where := info.Name
	if len(info.Region) > 0 {
		where += ", " + info.Region
	}
	for _, row := range rows {
		for _, e := range row.Events {
			if len(e.Error) > 0 {
				continue
			}
			ev := cal.AddEvent(eventUID(info, row.Date, e.Name))
			ev.SetDtStampTime(stamp)
			ev.SetStartAt(e.Time)
			ev.SetEndAt(e.Time)
			ev.SetSummary(e.Name)
			ev.SetLocation(where)
			if cd, err := datetime.ParseCalendarDate(row.Date); err == nil {
				ev.SetDescription(fmt.Sprintf("%v at %v, moon: %v", e.Name, info.String(), moon.NameForPhase(moon.Phase(cd))))
			}
		}
	}
	return cal
}

func (a *app) ical(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*icalFlags)
	ctx, done, err := setupLogging(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	place, tz, err := fv.place(ctx)
	if err != nil {
		return err
	}
	events, err := fv.events(place)
	if err != nil {
		return err
	}
	dates, err := fv.dates(a.now(), tz)
	if err != nil {
		return err
	}
	rows, err := evaluate(ctx, place, tz, dates, events, fv.Concurrency)
	if err != nil {
		if fv.Strict || rows == nil {
			return err
		}
		ctxlog.Logger(ctx).Warn("some events did not occur", "location", place.Name, "error", err)
	}
	cal := newCalendar(place.Info, rows, a.now().UTC())
	if len(fv.Output) == 0 {
		_, err := io.WriteString(a.out, cal.Serialize())
		return err
	}
	if err := writeFile(fv.Output, cal.Serialize()); err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("wrote calendar", "dates", len(dates), "output", fv.Output)
	return nil
}

// writeFile writes data to the named file, returning any error
// encountered when closing it.
func writeFile(name, data string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
