package timeline

import "time"

// QuoteOfDay picks a quote deterministically from the ordered catalog, keyed
// by day of year. The cycle restarts identically every year; there is no
// persisted state.
func QuoteOfDay(now time.Time, quotes []string) string {
	if len(quotes) == 0 {
		return ""
	}
	return quotes[now.YearDay()%len(quotes)]
}
