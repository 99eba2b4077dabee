package render

import (
	"strings"
	"time"
)

const (
	rangeSeparator = " – "
	presentLabel   = "Present"
)

var monthLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02", "2006-01"}

// FormatDate renders a stored date as "Mon YYYY", a bare year as "YYYY",
// and anything unrecognised verbatim.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if _, err := time.Parse("2006", s); err == nil {
		return s
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return s
}

// FormatRange renders "{start} – {end}". An ongoing range, or a start with
// no end, ends in "Present" whatever end date is stored. No start and no
// end yields an empty string rather than a lone dash.
func FormatRange(start string, end *string, current bool) string {
	from := FormatDate(start)
	to := ""
	if end != nil {
		to = FormatDate(*end)
	}

	switch {
	case current && from == "":
		return presentLabel
	case current:
		return from + rangeSeparator + presentLabel
	case from == "" && to == "":
		return ""
	case from == "":
		return to
	case to == "":
		return from + rangeSeparator + presentLabel
	default:
		return from + rangeSeparator + to
	}
}
