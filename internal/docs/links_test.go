package docs

import "testing"

func TestParseDocPath(t *testing.T) {
	tests := []struct {
		path                      string
		wantTab, wantCat, wantSub string
	}{
		{"classes/Player/Kick", "classes", "Player", "Kick"},
		{"classes/Player", "classes", "Player", ""},
		{"/classes/Player/", "classes", "Player", ""},
		{"classes", "classes", "", ""},
		{"a/b/c/d", "a", "b", "c/d"},
		{"", "", "", ""},
	}

	for _, tt := range tests {
		tab, cat, sub := ParseDocPath(tt.path)
		if tab != tt.wantTab || cat != tt.wantCat || sub != tt.wantSub {
			t.Errorf("ParseDocPath(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.path, tab, cat, sub, tt.wantTab, tt.wantCat, tt.wantSub)
		}
	}
}

func TestDocURL(t *testing.T) {
	tests := []struct {
		tab, cat, sub string
		want          string
	}{
		{"classes", "Player", "Kick", "/docs/classes/Player/Kick"},
		{"classes", "Player", "", "/docs/classes/Player"},
		{"classes", "", "", "/docs/classes"},
		{"", "", "", "/docs"},
		{"hooks", "GM hooks", "", "/docs/hooks/GM%20hooks"},
		{"classes", "", "Kick", "/docs/classes"},
	}

	for _, tt := range tests {
		if got := DocURL(tt.tab, tt.cat, tt.sub); got != tt.want {
			t.Errorf("DocURL(%q, %q, %q) = %q, want %q", tt.tab, tt.cat, tt.sub, got, tt.want)
		}
	}
}

func TestReferenceURL(t *testing.T) {
	if got := ReferenceURL("classes/Player/Kick"); got != "/docs/classes/Player/Kick" {
		t.Errorf("got %q", got)
	}
}

func TestIsDocPath(t *testing.T) {
	tests := []struct {
		dest string
		want bool
	}{
		{"classes/Player", true},
		{"globals/print", true},
		{"https://example.com", false},
		{"mailto:someone@example.com", false},
		{"/docs/classes", false},
		{"#examples", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsDocPath(tt.dest); got != tt.want {
			t.Errorf("IsDocPath(%q) = %v, want %v", tt.dest, got, tt.want)
		}
	}
}
