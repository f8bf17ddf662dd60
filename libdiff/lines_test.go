package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	got := Lines("a\nb\nc\n", "a\nB\nc\nd\n")
	want := []Line{
		{Equal, "a"},
		{Delete, "b"},
		{Insert, "B"},
		{Equal, "c"},
		{Insert, "d"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnified(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		ctx      int
		want     string
	}{
		{
			name: "equal",
			from: "x\n",
			to:   "x\n",
			want: "",
		},
		{
			name: "replace",
			from: "x\ny\nz\n",
			to:   "x\nY\nz\n",
			ctx:  3,
			want: "--- a\n+++ b\n@@ -1,3 +1,3 @@\n x\n-y\n+Y\n z\n",
		},
		{
			name: "two hunks",
			from: "1\n2\n3\n4\n5\n6\n7\n8\n",
			to:   "0\n1\n2\n3\n4\n5\n6\n7\n",
			ctx:  1,
			want: "--- a\n+++ b\n@@ -1,1 +1,2 @@\n+0\n 1\n@@ -7,2 +8,1 @@\n 7\n-8\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Unified("a", "b", tc.from, tc.to, tc.ctx)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnifiedLarge(t *testing.T) {
	from := strings.Repeat("same\n", 100)
	to := from + "new\n"
	got := Unified("a", "b", from, to, 3)
	if !strings.HasSuffix(got, "+new\n") || strings.Count(got, "\n") != 7 {
		t.Errorf("got:\n%s", got)
	}
}
