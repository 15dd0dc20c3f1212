package factura

import (
	"strings"
	"time"
)

// The backend emits invoice timestamps in two shapes: a machine ISO-8601
// timestamp ("2025-07-22T23:50:00.000000Z") and a localized Spanish string
// ("22/07/2025 11:05:15 p. m."). The localized format is believed to be
// legacy; keep both parsers here until the backend confirms it is gone.

var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
}

// MatchesDay reports whether the raw invoice timestamp falls on the same
// calendar day as dia, evaluated in loc. Comparing UTC days instead would
// misclassify timestamps near local midnight. Unparseable input never
// matches.
func MatchesDay(fechaRaw string, dia time.Time, loc *time.Location) bool {
	t, ok := parseFecha(fechaRaw, loc)
	if !ok {
		return false
	}
	t = t.In(loc)
	y1, m1, d1 := t.Date()
	y2, m2, d2 := dia.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func parseFecha(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if strings.Contains(raw, "T") {
		for _, layout := range isoLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, true
			}
		}
		// Naive ISO timestamp without offset; the backend means local time
		if t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, loc); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	if strings.Contains(raw, "/") {
		return parseLocalizada(raw, loc)
	}

	return time.Time{}, false
}

// parseLocalizada handles "DD/MM/YYYY HH:MM:SS a. m." and its variants:
// "a.m.", "AM", with or without the inner spaces.
func parseLocalizada(raw string, loc *time.Location) (time.Time, bool) {
	normalizado := strings.ToUpper(raw)
	normalizado = strings.ReplaceAll(normalizado, ".", "")
	normalizado = strings.Join(strings.Fields(normalizado), " ")

	meridiano := ""
	switch {
	case strings.HasSuffix(normalizado, " A M"):
		normalizado = strings.TrimSuffix(normalizado, " A M")
		meridiano = "AM"
	case strings.HasSuffix(normalizado, " P M"):
		normalizado = strings.TrimSuffix(normalizado, " P M")
		meridiano = "PM"
	case strings.HasSuffix(normalizado, " AM"):
		normalizado = strings.TrimSuffix(normalizado, " AM")
		meridiano = "AM"
	case strings.HasSuffix(normalizado, " PM"):
		normalizado = strings.TrimSuffix(normalizado, " PM")
		meridiano = "PM"
	}

	layout := "02/01/2006 15:04:05"
	if meridiano != "" {
		normalizado = normalizado + " " + meridiano
		layout = "02/01/2006 03:04:05 PM"
	}

	t, err := time.ParseInLocation(layout, normalizado, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
