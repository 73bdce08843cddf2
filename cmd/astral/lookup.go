// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/astral/geocoder"
	"cloudeng.io/astral/location"
	"cloudeng.io/errors"
)

type lookupFlags struct {
	CommonFlags
	Group bool `subcmd:"group,false,'treat the arguments as group names, eg. Europe, and list their locations'"`
}

type lookupReport []location.Info

func (r lookupReport) text(out io.Writer) error {
	for _, l := range r {
		fmt.Fprintf(out, "%-20s %-22s %-32s %9.4f %9.4f %6.0f\n",
			l.Name, l.Region, l.Timezone, l.Latitude, l.Longitude, l.Elevation)
	}
	return nil
}

func (a *app) lookup(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*lookupFlags)
	_, done, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer done()
	db := geocoder.Default()
	var report lookupReport
	errs := &errors.M{}
	for _, arg := range args {
		if fv.Group {
			g, err := db.Group(arg)
			if err != nil {
				errs.Append(err)
				continue
			}
			report = append(report, g.Locations()...)
			continue
		}
		l, err := db.Lookup(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		report = append(report, l)
	}
	if err := write(a.out, fv.Format, report, report.text); err != nil {
		return err
	}
	return errs.Err()
}
