package strutil

import "testing"

func TestLongestCommonPrefix(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want string
	}{
		{"shared prefix", []string{"flower", "flow", "flight"}, "fl"},
		{"no common prefix", []string{"dog", "racecar", "car"}, ""},
		{"empty input", nil, ""},
		{"single string", []string{"alone"}, "alone"},
		{"identical strings", []string{"same", "same"}, "same"},
		{"case sensitive", []string{"Go", "go"}, ""},
		{"empty string member", []string{"abc", ""}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LongestCommonPrefix(tc.in); got != tc.want {
				t.Fatalf("LongestCommonPrefix(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
