// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/astral/datetime"
	"cloudeng.io/astral/moon"
)

type moonFlags struct {
	CommonFlags
	Date string `subcmd:"date,,'date to use, defaults to today'"`
	Days int    `subcmd:"days,1,'number of days to display'"`
}

type moonPhase struct {
	Date         string  `json:"date" yaml:"date"`
	Phase        float64 `json:"phase" yaml:"phase"`
	Name         string  `json:"name" yaml:"name"`
	Illumination float64 `json:"illumination" yaml:"illumination"`
}

type moonReport []moonPhase

func (r moonReport) text(out io.Writer) error {
	for _, p := range r {
		fmt.Fprintf(out, "%v  %6.3f  %-14s %5.1f%%\n", p.Date, p.Phase, p.Name, p.Illumination*100)
	}
	return nil
}

func newMoonPhase(cd datetime.CalendarDate) moonPhase {
	phase := moon.Phase(cd)
	return moonPhase{
		Date:         cd.String(),
		Phase:        phase,
		Name:         moon.NameForPhase(phase).String(),
		Illumination: moon.Illumination(cd.Time(datetime.NewTimeOfDay(12, 0, 0), nil)),
	}
}

func (a *app) moon(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*moonFlags)
	_, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	cd, err := parseDate(fv.Date, a.now(), nil)
	if err != nil {
		return err
	}
	if fv.Days < 1 {
		return fmt.Errorf("--days must be at least 1: %v", fv.Days)
	}
	report := make(moonReport, fv.Days)
	for i := range report {
		report[i] = newMoonPhase(cd.AddDays(i))
	}
	return write(a.out, fv.Format, report, report.text)
}
