package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func testStyle() StyleParameters {
	return StyleParameters{
		Title:        "My Site",
		Ethos:        EthosMinimalistDark,
		AccentColor:  "#112233",
		Instructions: "Make it feel like a Silicon Valley startup",
	}
}

func TestBuildIncludesResumeAndStyleVerbatim(t *testing.T) {
	resume := "Jane Doe, Software Engineer at {Acme}. Go, Kubernetes."
	style := testStyle()

	got := Build(resume, style)

	for _, want := range []string{resume, style.Title, style.Ethos, style.AccentColor, style.Instructions} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected prompt to contain %q", want)
		}
	}
}

func TestBuildStatesOutputContract(t *testing.T) {
	got := Build("resume", testStyle())
	for _, want := range []string{`"html"`, `"css"`, `"js"`, "Tailwind CSS", "Lucide Icons", "Experience Timeline", "Provide ONLY the JSON object."} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected prompt to contain %q", want)
		}
	}
}

func TestBuildTruncatesLongResume(t *testing.T) {
	head := strings.Repeat("a", MaxResumeChars)
	resume := head + "TAIL-MARKER"

	got := Build(resume, testStyle())
	if !strings.Contains(got, head) {
		t.Fatalf("expected first %d characters in prompt", MaxResumeChars)
	}
	if strings.Contains(got, "TAIL-MARKER") {
		t.Fatalf("expected characters past the bound to be dropped")
	}
}

func TestBuildWithLimit(t *testing.T) {
	got := BuildWithLimit("abcdefghij", testStyle(), 4)
	if !strings.Contains(got, "RESUME DATA:\nabcd\n") {
		t.Fatalf("expected 4 resume characters, got:\n%s", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 2, "he"},
		{"hello", 0, ""},
		{"héllo wörld", 4, "héll"},
		{"日本語テキスト", 3, "日本語"},
	}
	for _, tc := range cases {
		got := Truncate(tc.in, tc.n)
		if got != tc.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Fatalf("Truncate produced invalid utf8: %q", got)
		}
	}
}

func TestNormalizeDefaults(t *testing.T) {
	got, err := StyleParameters{}.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Title != DefaultTitle || got.Ethos != EthosFuturisticGlass || got.AccentColor != DefaultAccentColor {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	if _, err := (StyleParameters{Ethos: "Brutalist"}).Normalize(); err != ErrUnknownEthos {
		t.Fatalf("expected ErrUnknownEthos, got %v", err)
	}
	if _, err := (StyleParameters{AccentColor: "pink"}).Normalize(); err != ErrAccentColor {
		t.Fatalf("expected ErrAccentColor, got %v", err)
	}
}
