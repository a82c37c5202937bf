package domain

import "time"

// Day-first layouts accepted for event and movement dates. The source files
// are zero-padded ("05/03/2018" = 5 March 2018) but single digits occur too.
var dayFirstLayouts = []string{"02/01/2006", "2/1/2006"}

// ParseDayFirstDate parses day-first date text into a calendar date (UTC
// midnight, no time-of-day component).
func ParseDayFirstDate(text string) (time.Time, bool) {
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
