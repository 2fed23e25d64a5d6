package servertime

import (
	"fmt"
	"strings"
	"time"
)

// Template selects how a DateTime is rendered.
type Template string

const (
	Template12h Template = "12h" // Nov 6th 2025, 1:00 PM
	Template24h Template = "24h" // 2025-11-06 13:00
)

var monthAbbrev = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ParseTemplate accepts "12h" or "24h" in any case.
func ParseTemplate(s string) (Template, error) {
	switch Template(strings.ToLower(strings.TrimSpace(s))) {
	case Template12h:
		return Template12h, nil
	case Template24h:
		return Template24h, nil
	default:
		return "", fmt.Errorf("unknown time template %q (want 12h or 24h)", s)
	}
}

// Render formats dt. Unknown templates render as 24h.
func (tpl Template) Render(dt DateTime) string {
	if tpl == Template12h {
		hour := dt.Hour % 12
		if hour == 0 {
			hour = 12
		}
		meridiem := "AM"
		if dt.Hour >= 12 {
			meridiem = "PM"
		}
		return fmt.Sprintf("%s %s %d, %d:%02d %s",
			monthAbbrev[dt.Month-1], Ordinal(dt.Day), dt.Year, hour, dt.Minute, meridiem)
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute)
}

// Format renders t as server time at offsetHours.
func Format(t time.Time, offsetHours int, tpl Template) string {
	return tpl.Render(Convert(t, offsetHours))
}

// Ordinal renders a day of month as 1st, 2nd, 3rd, 4th, ...
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// Countdown renders d as HH:MM:SS, truncated to whole seconds. Hours are not capped.
func Countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}

// OffsetLabel renders an hour offset as UTC+1, UTC-8 or UTC.
func OffsetLabel(offsetHours int) string {
	switch {
	case offsetHours > 0:
		return fmt.Sprintf("UTC+%d", offsetHours)
	case offsetHours < 0:
		return fmt.Sprintf("UTC%d", offsetHours)
	default:
		return "UTC"
	}
}

// FormatterFunc adapts a function such as Format to an interface with a Format method.
type FormatterFunc func(t time.Time, offsetHours int, tpl Template) string

func (f FormatterFunc) Format(t time.Time, offsetHours int, tpl Template) string {
	return f(t, offsetHours, tpl)
}
