package videosearch

import (
	"fmt"
	"regexp"
	"strconv"
)

var durationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatDuration converts an ISO 8601 duration (PT1H2M3S) into a readable
// H:MM:SS or M:SS string. Unparseable input yields "0:00". Day-only inputs
// like "P1D" carry no PT segment and also format as "0:00".
func FormatDuration(duration string) string {
	if duration == "" {
		return "0:00"
	}
	m := durationRe.FindStringSubmatch(duration)
	if m == nil {
		return "0:00"
	}

	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatViewCount renders a raw count as "1.5M views", "2.5K views", or
// "42 views".
func FormatViewCount(viewCount string) string {
	if viewCount == "" {
		return "0 views"
	}
	count, err := strconv.ParseInt(viewCount, 10, 64)
	if err != nil {
		return "0 views"
	}

	switch {
	case count >= 1000000:
		return fmt.Sprintf("%.1fM views", float64(count)/1000000)
	case count >= 1000:
		return fmt.Sprintf("%.1fK views", float64(count)/1000)
	default:
		return fmt.Sprintf("%d views", count)
	}
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
