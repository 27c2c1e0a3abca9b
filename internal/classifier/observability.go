package classifier

import "strings"

const maxErrorChars = 200

// truncateError caps error text surfaced in outcomes so a pathological
// artifact error cannot bloat responses or logs.
func truncateError(msg string) string {
	if len(msg) <= maxErrorChars {
		return msg
	}
	return msg[:maxErrorChars] + "..."
}

// classifyErrorType categorizes a model failure message for dashboard
// filtering and the fallback counter.
func classifyErrorType(errMsg string) string {
	lower := strings.ToLower(errMsg)
	switch {
	case strings.Contains(lower, "dimension"):
		return "dimension_mismatch"
	case strings.Contains(lower, "vocabulary"):
		return "vocabulary"
	case strings.Contains(lower, "centroid"):
		return "centroids"
	case strings.Contains(lower, "out-of-range cluster"):
		return "cluster_range"
	default:
		return "unknown"
	}
}
