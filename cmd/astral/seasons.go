// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/astral/astronomy"
)

type seasonsFlags struct {
	CommonFlags
	Years int `subcmd:"years,1,'number of years to display'"`
}

type season struct {
	Year  int    `json:"year" yaml:"year"`
	Event string `json:"event" yaml:"event"`
	Date  string `json:"date" yaml:"date"`
}

type seasonsReport []season

func (r seasonsReport) text(out io.Writer) error {
	for _, s := range r {
		fmt.Fprintf(out, "%v  %-20s %v\n", s.Year, s.Event, s.Date)
	}
	return nil
}

func (a *app) seasons(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*seasonsFlags)
	_, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	year := a.now().Year()
	if len(args) == 1 {
		year, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year: %q: %w", args[0], err)
		}
	}
	if fv.Years < 1 {
		return fmt.Errorf("--years must be at least 1: %v", fv.Years)
	}
	var report seasonsReport
	for y := year; y < year+fv.Years; y++ {
		for _, s := range astronomy.Seasons(y) {
			report = append(report, season{Year: y, Event: s.Name, Date: s.Date.String()})
		}
	}
	return write(a.out, fv.Format, report, report.text)
}
