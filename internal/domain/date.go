package domain

import "time"

// Placeholder stands in for absent values in rendered output.
const Placeholder = "—"

// DateLayout is the display format of push dates.
const DateLayout = time.DateOnly

// FormatDate renders an ISO-8601 timestamp as DateLayout in UTC.
// Empty and unparsable timestamps both render as Placeholder.
func FormatDate(iso string) string {
	if iso == "" {
		return Placeholder
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return Placeholder
	}
	return t.UTC().Format(DateLayout)
}
