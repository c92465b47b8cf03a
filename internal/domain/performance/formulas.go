// Package performance holds the fixed formulas used to maintain vendor metrics.
//
// Every formula is an incremental mean update: given the previous average and
// the number of samples after including the new one, the prior sum is
// recovered as old*(n-1), adjusted by the sample and divided by n. Counts are
// always passed in by the caller so the functions stay pure.
package performance

import (
	"errors"
	"time"
)

// ErrUnreachable is returned when a formula is asked to divide by a zero count
// although its caller guarantees at least one sample exists.
var ErrUnreachable = errors.New("unreachable: zero sample count")

// ResponseTimeHours converts an acknowledgment delay into fractional hours.
func ResponseTimeHours(d time.Duration) float64 {
	return d.Hours()
}

// AverageResponseTime folds one response-time sample into the running average.
// acknowledged is the number of acknowledged orders including the new one.
func AverageResponseTime(oldAvg, sampleHours float64, acknowledged int64) (float64, error) {
	if acknowledged < 1 {
		return oldAvg, ErrUnreachable
	}
	n := float64(acknowledged)
	return (oldAvg*(n-1) + sampleHours) / n, nil
}

// FulfillmentRate is the direct ratio of completed orders to all orders.
// A vendor reaching this formula owns at least the triggering order, so
// total == 0 is reported as ErrUnreachable.
func FulfillmentRate(completed, total int64) (float64, error) {
	if total == 0 {
		return 0, ErrUnreachable
	}
	return float64(completed) / float64(total), nil
}

// OnTimeDeliveryRate folds one completed delivery into the on-time rate.
//
// Only on-time deliveries (delivered <= expected) move the rate; a late
// delivery leaves it untouched. completed is the number of completed orders
// of the vendor including this one.
func OnTimeDeliveryRate(oldRate float64, delivered, expected time.Time, completed int64) (float64, error) {
	if delivered.After(expected) {
		return oldRate, nil
	}
	if completed < 1 {
		return oldRate, ErrUnreachable
	}
	n := float64(completed)
	return (oldRate*(n-1) + 1) / n, nil
}

// QualityRatingAverage folds a quality rating into the running average.
//
//   - no new rating, or the same rating again: average unchanged
//   - first rating of the order: (new + old*(n-1)) / n
//   - correction of an already rated order: (new + old*n - previous) / n
//
// rated is the number of the vendor's orders carrying a rating, the current
// order included.
func QualityRatingAverage(oldAvg float64, newRating, previousRating *float64, rated int64) (float64, error) {
	if newRating == nil {
		return oldAvg, nil
	}
	if previousRating != nil && *newRating == *previousRating {
		return oldAvg, nil
	}
	if rated < 1 {
		return oldAvg, ErrUnreachable
	}
	n := float64(rated)
	if previousRating == nil {
		return (*newRating + oldAvg*(n-1)) / n, nil
	}
	return (*newRating + oldAvg*n - *previousRating) / n, nil
}
