// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"cloudeng.io/astral/datetime"
	"cloudeng.io/astral/location"
	"cloudeng.io/astral/sun"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/teambition/rrule-go"
	"golang.org/x/sync/errgroup"
)

type RangeFlags struct {
	From        string `subcmd:"from,,'first date of the range, defaults to today'"`
	To          string `subcmd:"to,,'last date of the range, defaults to a week after the first'"`
	RRule       string `subcmd:"rrule,,'RFC 5545 recurrence rule used to select dates within the range, eg. FREQ=WEEKLY;BYDAY=SA'"`
	Events      string `subcmd:"events,,'comma separated list of events, defaults to dawn, sunrise, noon, sunset and dusk'"`
	Concurrency int    `subcmd:"concurrency,0,'number of dates to evaluate concurrently, 0 for the number of CPUs'"`
	Strict      bool   `subcmd:"strict,false,'fail if any event does not occur on any date'"`
}

type rangeFlags struct {
	CommonFlags
	PlaceFlags
	RangeFlags
}

type rangeRow struct {
	Date   string        `json:"date" yaml:"date"`
	Events []timeOrError `json:"events" yaml:"events"`
}

type rangeReport struct {
	Location location.Info `json:"location" yaml:"location"`
	Timezone string        `json:"timezone" yaml:"timezone"`
	Dates    []rangeRow    `json:"dates" yaml:"dates"`
}

func (r rangeReport) text(out io.Writer) error {
	fmt.Fprintf(out, "%v, %v (%v)\n", r.Location.Name, r.Location.Region, r.Timezone)
	for _, row := range r.Dates {
		fmt.Fprintf(out, "%v", row.Date)
		for _, e := range row.Events {
			if len(e.Error) > 0 {
				fmt.Fprintf(out, "  %v: -", e.Name)
				continue
			}
			fmt.Fprintf(out, "  %v: %v", e.Name, e.Time.Format(time.TimeOnly))
		}
		fmt.Fprintln(out)
	}
	return nil
}

func (rf *RangeFlags) events(place *location.Location) ([]sun.Event, error) {
	if len(rf.Events) > 0 {
		return sun.ParseEvents(rf.Events)
	}
	return []sun.Event{
		sun.DawnEvent{Depression: place.SolarDepression},
		sun.SunriseEvent{},
		sun.SolarNoon{},
		sun.SunsetEvent{},
		sun.DuskEvent{Depression: place.SolarDepression},
	}, nil
}

// dates returns the dates in the range, optionally filtered by the
// recurrence rule.
func (rf *RangeFlags) dates(now time.Time, tz *time.Location) (datetime.CalendarDateList, error) {
	start, end, err := dateRange(rf.From, rf.To, now, tz)
	if err != nil {
		return nil, err
	}
	if len(rf.RRule) == 0 {
		return datetime.Dates(start, end), nil
	}
	rule, err := rrule.StrToRRule(rf.RRule)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule: %q: %w", rf.RRule, err)
	}
	first := start.Time(0, time.UTC)
	rule.DTStart(first)
	var dates datetime.CalendarDateList
	for _, t := range rule.Between(first, end.Time(0, time.UTC), true) {
		dates = append(dates, datetime.CalendarDateFromTime(t))
	}
	return dates, nil
}

// evaluate evaluates the events for each of the dates concurrently. Events
// that do not occur are reported in the returned rows and errors.
func evaluate(ctx context.Context, place *location.Location, tz *time.Location, dates datetime.CalendarDateList, events []sun.Event, concurrency int) ([]rangeRow, error) {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	rows := make([]rangeRow, len(dates))
	errs := &errors.M{}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	observer := place.Observer()
	for i, cd := range dates {
		g.Go(func() error {
			row := rangeRow{Date: cd.String(), Events: make([]timeOrError, len(events))}
			for j, e := range events {
				t, err := e.Evaluate(observer, cd, tz)
				if err != nil {
					errs.Append(errors.Annotate(cd.String(), err))
				}
				row.Events[j] = newTimeOrError(e.Name(), t, err)
			}
			rows[i] = row
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, errs.Err()
}

func (a *app) rangeEvents(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*rangeFlags)
	ctx, done, err := fv.setup(ctx)
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
	report := rangeReport{
		Location: place.Info,
		Timezone: tz.String(),
		Dates:    rows,
	}
	return write(a.out, fv.Format, report, report.text)
}
