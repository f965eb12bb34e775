package pantry

import (
	"fmt"
	"time"
)

// DefaultExpiryHorizonDays is the window used by the expiring-soon views
// when the caller does not pass one.
const DefaultExpiryHorizonDays = 7

// ExpiryStatus is an item annotated with its freshness information. The
// item's fields serialize at the top level alongside the annotations.
type ExpiryStatus struct {
	Item
	DaysUntilExpiry int    `json:"days_until_expiry"`
	Label           string `json:"label"`
	Urgency         string `json:"urgency"`
}

// ExpiryReport holds the two buckets the dashboard and the expiring-soon
// suggestion filter consume.
type ExpiryReport struct {
	Expired  []ExpiryStatus `json:"expired_items"`
	Expiring []ExpiryStatus `json:"expiring_items"`
}

// LowStock returns the items at or below their alert threshold.
// A threshold of zero disables the alert for that item. Quantity and
// threshold are assumed to share the item's unit; no conversion happens.
func LowStock(items []Item) []Item {
	var low []Item
	for _, item := range items {
		if item.MinThreshold > 0 && item.Quantity <= item.MinThreshold {
			low = append(low, item)
		}
	}
	return low
}

// ExpiryBuckets classifies items by days until expiry against today.
// Items without an expiry date, or expiring beyond the horizon, appear in
// neither bucket. A zero horizon reports only items expiring today (and
// the already-expired); a negative one falls back to the default window.
func ExpiryBuckets(items []Item, horizonDays int) ExpiryReport {
	return expiryBucketsAt(items, horizonDays, time.Now())
}

func expiryBucketsAt(items []Item, horizonDays int, now time.Time) ExpiryReport {
	if horizonDays < 0 {
		horizonDays = DefaultExpiryHorizonDays
	}

	var report ExpiryReport
	for _, item := range items {
		if item.ExpiryDate == nil {
			continue
		}

		days := daysBetween(now, *item.ExpiryDate)
		if days > horizonDays {
			continue
		}
		status := ExpiryStatus{Item: item, DaysUntilExpiry: days}

		switch {
		case days < 0:
			status.Label = expiredLabel(days)
			status.Urgency = "expired"
			report.Expired = append(report.Expired, status)
		case days == 0:
			status.Label = "Today"
			status.Urgency = "today"
			report.Expiring = append(report.Expiring, status)
		case days == 1:
			status.Label = "Tomorrow"
			status.Urgency = "tomorrow"
			report.Expiring = append(report.Expiring, status)
		case days <= 3:
			status.Label = fmt.Sprintf("In %d days", days)
			status.Urgency = "urgent"
			report.Expiring = append(report.Expiring, status)
		default:
			status.Label = fmt.Sprintf("In %d days", days)
			status.Urgency = "warning"
			report.Expiring = append(report.Expiring, status)
		}
	}
	return report
}

// daysBetween compares calendar days, ignoring time of day.
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

func expiredLabel(days int) string {
	if days == -1 {
		return "Expired yesterday"
	}
	return fmt.Sprintf("Expired %d days ago", -days)
}
