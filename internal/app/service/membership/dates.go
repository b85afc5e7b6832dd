package membership

import "time"

// AddMonths advances t by whole calendar months, clamping the day at month
// end the way plain calendar arithmetic does: Jan 31 + 1 month is Feb 28 (or
// 29), not Mar 2. time.AddDate would overflow into the next month, which is
// why this exists.
func AddMonths(t time.Time, months int, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, loc)
	if last := daysIn(firstOfTarget.Year(), firstOfTarget.Month(), loc); d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, loc)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
