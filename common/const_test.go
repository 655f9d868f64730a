package common

import "testing"

func TestKindOf(t *testing.T) {
	cases := []struct {
		status string
		want   StatusKind
	}{
		{StatusComplete, KindSuccess},
		{StatusCompleteZh, KindSuccess},
		{StatusFailed, KindFailure},
		{StatusFailedZh, KindFailure},
		{StatusCancelled, KindNeutral},
		{"Paused", KindNeutral},
		{"", KindNeutral},
	}
	for _, c := range cases {
		if got := KindOf(c.status); got != c.want {
			t.Errorf("KindOf(%q) = %q, want %q", c.status, got, c.want)
		}
	}
}
