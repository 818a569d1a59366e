package trends

import (
	"fmt"
	"time"

	"github.com/sid-c23/cs6440-project/internal/models"
)

// Densify fills the gaps between the earliest and latest observed week (or
// the aligned caller-supplied bounds, whichever extend further) so that every
// week in range appears exactly once, spaced exactly seven days apart.
//
// "Which weeks exist" is decided independently of "what data they hold": the
// full key sequence is generated from the range alone and each key is looked
// up in the sparse rows, defaulting to a zero row (zero sums and counts, nil
// averages). With no observed weeks at all the result is empty; a calendar
// is never synthesized without underlying data.
func Densify(sparse []models.WeeklySummary, startDate, endDate string) ([]models.WeeklySummary, error) {
	if len(sparse) == 0 {
		return []models.WeeklySummary{}, nil
	}

	byWeek := make(map[string]models.WeeklySummary, len(sparse))
	var first, last time.Time
	for _, row := range sparse {
		byWeek[row.Week] = row
		wk, err := time.Parse(dateLayout, row.Week)
		if err != nil {
			return nil, fmt.Errorf("malformed week key %q: %w", row.Week, err)
		}
		if first.IsZero() || wk.Before(first) {
			first = wk
		}
		if last.IsZero() || wk.After(last) {
			last = wk
		}
	}

	if startDate != "" {
		aligned, err := AlignDate(startDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date: %w", err)
		}
		if aligned.Before(first) {
			first = aligned
		}
	}
	if endDate != "" {
		aligned, err := AlignDate(endDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date: %w", err)
		}
		if aligned.After(last) {
			last = aligned
		}
	}

	dense := make([]models.WeeklySummary, 0, int(last.Sub(first).Hours()/(24*7))+1)
	for cur := first; !cur.After(last); cur = cur.AddDate(0, 0, 7) {
		key := cur.Format(dateLayout)
		if row, ok := byWeek[key]; ok {
			dense = append(dense, row)
		} else {
			dense = append(dense, models.WeeklySummary{Week: key})
		}
	}

	return dense, nil
}
