package utils

import "fmt"

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatDistance renders kilometers compactly for display.
// Example: 5541 -> "5.5k km", 742 -> "742 km"
func FormatDistance(km int) string {
	if km >= 1000 {
		return fmt.Sprintf("%.1fk km", float64(km)/1000)
	}

	return fmt.Sprintf("%d km", km)
}
