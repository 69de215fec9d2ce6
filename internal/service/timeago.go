package service

import "fmt"

// FormatTimeAgo renders a minute count as a coarse human age. Buckets are
// integer-floored: 90 minutes is "1h ago", 25 hours is "1d ago".
func FormatTimeAgo(minutes int64) string {
	switch {
	case minutes <= 0:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case minutes < 1440:
		return fmt.Sprintf("%dh ago", minutes/60)
	default:
		return fmt.Sprintf("%dd ago", minutes/1440)
	}
}
