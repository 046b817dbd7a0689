package sanitize_test

import (
	"strings"
	"testing"

	"github.com/Kamu2000/Job-Hunter/internal/sanitize"
)

func TestClean_StripsTags(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<p>Build APIs in Go</p>", "Build APIs in Go"},
		{"<div><strong>Senior</strong> role</div>", "Senior role"},
		{"plain text untouched", "plain text untouched"},
		{"<br/><br/>", ""},
		{"broken <a href='x' fragment", "broken"},
	}
	for _, c := range cases {
		if got := sanitize.Clean(c.in); got != c.want {
			t.Errorf("Clean(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestClean_DecodesEntities(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"R&amp;D engineer", "R&D engineer"},
		{"salary &gt; market &lt; dreams", "salary > market < dreams"},
		{"&quot;remote first&quot;", `"remote first"`},
		{"we&#39;re hiring", "we're hiring"},
		{"a&nbsp;b", "a b"},
	}
	for _, c := range cases {
		if got := sanitize.Clean(c.in); got != c.want {
			t.Errorf("Clean(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestClean_CollapsesWhitespace(t *testing.T) {
	got := sanitize.Clean("  lots \t of \n\n space  ")
	want := "lots of space"
	if got != want {
		t.Errorf("Clean = %q, want %q", got, want)
	}
}

func TestClean_TruncatesLongText(t *testing.T) {
	in := strings.Repeat("a", 500)
	got := sanitize.Clean(in)
	if len(got) != sanitize.MaxLength+len(sanitize.Ellipsis) {
		t.Errorf("truncated length = %d, want %d", len(got), sanitize.MaxLength+len(sanitize.Ellipsis))
	}
	if !strings.HasSuffix(got, sanitize.Ellipsis) {
		t.Errorf("truncated output %q does not end with %q", got[290:], sanitize.Ellipsis)
	}
}

func TestClean_ExactLimitIsNotTruncated(t *testing.T) {
	in := strings.Repeat("b", sanitize.MaxLength)
	got := sanitize.Clean(in)
	if got != in {
		t.Errorf("input of exactly %d chars should pass through unchanged", sanitize.MaxLength)
	}
}

func TestClean_ShortTextUnchanged(t *testing.T) {
	in := "short description"
	if got := sanitize.Clean(in); got != in {
		t.Errorf("Clean(%q) = %q, want unchanged", in, got)
	}
	if strings.Contains(sanitize.Clean(in), sanitize.Ellipsis) {
		t.Error("short text must not carry an ellipsis")
	}
}

func TestClean_EmptyInput(t *testing.T) {
	if got := sanitize.Clean(""); got != "" {
		t.Errorf("Clean(\"\") = %q, want \"\"", got)
	}
}
