package main

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

// parseInterval accepts Go durations ("750ms") and bare milliseconds ("750").
func parseInterval(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		ms, aerr := strconv.Atoi(s)
		if aerr != nil {
			return 0, errors.Wrapf(err, "bad interval %q", s)
		}
		d = time.Duration(ms) * time.Millisecond
	}
	if d <= 0 {
		return 0, errors.Newf("interval must be positive, got %s", d)
	}
	return d, nil
}
