package sanitize

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Notes", "Notes"},
		{"spaces and punctuation", "My Note: draft!", "My_Note__draft_"},
		{"accents folded", "Ação é nóis", "Acao_e_nois"},
		{"non ascii dropped", "漢字notes", "notes"},
		{"digits kept", "plan 2024", "plan_2024"},
		{"empty", "", ""},
		{"truncated to fifteen", "abcdefghijklmnopqrstuvwxyz", "abcdefghijklmno"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeTruncatesAfterSubstitution(t *testing.T) {
	// Substitution happens before the cap, so a long accented prefix
	// still yields a full fifteen character slug.
	got := Sanitize("ééééééééééééééééééé!")
	if len(got) != 15 {
		t.Fatalf("expected 15 characters, got %d (%q)", len(got), got)
	}
}
