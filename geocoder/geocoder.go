// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package geocoder provides a database of named locations, organised
// into groups by the first component of their timezone name (eg. Europe,
// Asia). A small database of capital and major cities is embedded.
package geocoder

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"cloudeng.io/astral/location"
	"cloudeng.io/errors"
)

//go:embed locations.csv
var locationsCSV []byte

// ErrNotFound is returned when a location or group cannot be found.
var ErrNotFound = errors.New("location not found")

// Group is a named collection of locations.
type Group struct {
	Name      string
	locations []location.Info
}

// Locations returns the locations in the group in the order they
// were added.
func (g *Group) Locations() []location.Info {
	return slices.Clone(g.locations)
}

// Lookup returns the first location in the group with the specified
// name and, if region is non-empty, region. Comparisons are case
// insensitive. If no location matches both name and region, the first
// location matching name alone is returned.
func (g *Group) Lookup(name, region string) (location.Info, bool) {
	if l, ok := g.lookup(name, region); ok {
		return l, true
	}
	return g.lookup(name, "")
}

func (g *Group) lookup(name, region string) (location.Info, bool) {
	for _, l := range g.locations {
		if strings.EqualFold(l.Name, name) &&
			(len(region) == 0 || strings.EqualFold(l.Region, region)) {
			return l, true
		}
	}
	return location.Info{}, false
}

// DB is a database of locations.
type DB struct {
	groups map[string]*Group
}

func NewDB() *DB {
	return &DB{groups: make(map[string]*Group)}
}

type Option func(o *options)

// WithGroups restricts Load to locations in the specified groups.
func WithGroups(groups ...string) Option {
	return func(o *options) {
		o.groups = append(o.groups, groups...)
	}
}

type options struct {
	groups []string
}

// Add adds the supplied locations to the database.
func (db *DB) Add(locations ...location.Info) {
	for _, l := range locations {
		key := strings.ToLower(l.TimezoneGroup())
		g, ok := db.groups[key]
		if !ok {
			g = &Group{Name: l.TimezoneGroup()}
			db.groups[key] = g
		}
		g.locations = append(g.locations, l)
	}
}

// Load reads locations, one per line, of the form:
//
//	name,region,timezone,latitude,longitude[,elevation]
//
// where latitude and longitude are in any of the forms accepted by
// location.ParseDMS. Blank lines and lines starting with # are ignored.
func (db *DB) Load(data []byte, opts ...Option) error {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Split(text, ",")
		if len(parts) != 5 && len(parts) != 6 {
			return fmt.Errorf("line %v: invalid line, wrong number of fields: (%v not 5 or 6) %v", line, len(parts), text)
		}
		info, err := location.NewInfo(parts[0], parts[1], parts[2], parts[3], parts[4])
		if err != nil {
			return fmt.Errorf("line %v: %w", line, err)
		}
		if len(parts) == 6 {
			info.Elevation, err = strconv.ParseFloat(parts[5], 64)
			if err != nil {
				return fmt.Errorf("line %v: invalid elevation: %v: %w", line, parts[5], err)
			}
		}
		if len(o.groups) > 0 && !slices.ContainsFunc(o.groups, func(g string) bool {
			return strings.EqualFold(g, info.TimezoneGroup())
		}) {
			continue
		}
		db.Add(info)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read data: %w", err)
	}
	return nil
}

// Groups returns the names of all groups in the database in
// alphabetical order.
func (db *DB) Groups() []string {
	names := make([]string, 0, len(db.groups))
	for _, g := range db.groups {
		names = append(names, g.Name)
	}
	slices.Sort(names)
	return names
}

// Group returns the named group, the comparison is case insensitive.
func (db *DB) Group(name string) (*Group, error) {
	g, ok := db.groups[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("group %q: %w", name, ErrNotFound)
	}
	return g, nil
}

// Lookup returns the location named by query, which is of the form
// name[,region]. Groups are searched in alphabetical order, first for a
// location matching both name and region in any group and then for the
// first location matching name alone.
func (db *DB) Lookup(query string) (location.Info, error) {
	name, region, _ := strings.Cut(query, ",")
	name, region = strings.TrimSpace(name), strings.TrimSpace(region)
	groups := db.Groups()
	if len(region) > 0 {
		for _, gn := range groups {
			if l, ok := db.groups[strings.ToLower(gn)].lookup(name, region); ok {
				return l, nil
			}
		}
	}
	for _, gn := range groups {
		if l, ok := db.groups[strings.ToLower(gn)].lookup(name, ""); ok {
			return l, nil
		}
	}
	return location.Info{}, fmt.Errorf("%q: %w", query, ErrNotFound)
}

var defaultDB = sync.OnceValues(func() (*DB, error) {
	db := NewDB()
	return db, db.Load(locationsCSV)
})

// Default returns a database loaded from the embedded list of locations.
func Default() *DB {
	db, err := defaultDB()
	if err != nil {
		panic(fmt.Sprintf("embedded locations: %v", err))
	}
	return db
}
