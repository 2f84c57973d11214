package common

import "testing"

func TestBlank(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"Seoul", false},
		{"  서울  ", false},
		{"首尔", false},
	}
	for _, c := range cases {
		if got := Blank(c.in); got != c.want {
			t.Errorf("Blank(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "", "b", "c"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
