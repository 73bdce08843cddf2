// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package location

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var dmsRe = regexp.MustCompile(`(?i)^(\d{1,3})°(?:(\d{1,2})[′'])?(?:(\d{1,2}(?:\.\d+)?)[″"])?([NSEW])?$`)

// ParseDMS parses an angle expressed either as a decimal number of
// degrees or in degrees, minutes and seconds form, eg. 24°28'N or
// 10°30'30"W. Minutes and seconds are optional, as is the direction
// which defaults to E. S and W yield negative values. The result is
// clamped to +/- limit.
func ParseDMS(val string, limit float64) (float64, error) {
	val = strings.TrimSpace(val)
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		return clamp(f, limit), nil
	}
	m := dmsRe.FindStringSubmatch(val)
	if m == nil {
		return 0, fmt.Errorf("invalid degrees/minutes/seconds value: %q", val)
	}
	deg, _ := strconv.ParseFloat(m[1], 64)
	if len(m[2]) > 0 {
		mins, _ := strconv.ParseFloat(m[2], 64)
		deg += mins / 60
	}
	if len(m[3]) > 0 {
		secs, _ := strconv.ParseFloat(m[3], 64)
		deg += secs / 3600
	}
	switch strings.ToUpper(m[4]) {
	case "S", "W":
		deg = -deg
	}
	return clamp(deg, limit), nil
}

// ParseLatitude parses a latitude using ParseDMS with a limit of 90.
func ParseLatitude(val string) (float64, error) {
	return ParseDMS(val, 90)
}

// ParseLongitude parses a longitude using ParseDMS with a limit of 180.
func ParseLongitude(val string) (float64, error) {
	return ParseDMS(val, 180)
}

func clamp(v, limit float64) float64 {
	return max(-limit, min(limit, v))
}
