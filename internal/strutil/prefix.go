// Package strutil holds small string helpers shared with the UI layer.
package strutil

// LongestCommonPrefix returns the longest string that is a leading substring
// of every input, comparing bytes case-sensitively. An empty input slice or a
// disjoint set yields "".
func LongestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	prefix := strs[0]
	for _, s := range strs[1:] {
		for len(prefix) > 0 {
			if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
				break
			}
			prefix = prefix[:len(prefix)-1]
		}
		if prefix == "" {
			return ""
		}
	}
	return prefix
}
