package trends

import "time"

// dateLayout is the canonical week-key and boundary-date format.
const dateLayout = "2006-01-02"

// WeekStart returns the Monday date (at midnight UTC) that starts the ISO
// week containing ts. Bucketing uses the timestamp's own calendar date
// components: the next Monday at or after the date, minus seven days. A
// Monday's next Monday is a week out, so Mondays map to themselves.
func WeekStart(ts time.Time, useLocaltime bool) time.Time {
	if useLocaltime {
		ts = ts.In(time.Local)
	} else {
		ts = ts.UTC()
	}

	y, m, d := ts.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	// ISO weekday numbering, Monday = 1 through Sunday = 7.
	iso := int(day.Weekday())
	if iso == 0 {
		iso = 7
	}

	nextMonday := day.AddDate(0, 0, 8-iso)
	return nextMonday.AddDate(0, 0, -7)
}

// WeekKey formats the week bucket of ts as YYYY-MM-DD.
func WeekKey(ts time.Time, useLocaltime bool) string {
	return WeekStart(ts, useLocaltime).Format(dateLayout)
}

// AlignDate aligns a caller-supplied YYYY-MM-DD boundary date to its own
// week's Monday using the same rule as event bucketing, so generated week
// lists always use consistent keys.
func AlignDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, err
	}
	return WeekStart(t, false), nil
}
