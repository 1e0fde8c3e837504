package panels

import "strings"

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
