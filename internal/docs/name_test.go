package docs

import "testing"

func TestResolveName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw        string
		wantName   string
		wantMethod bool
	}{
		{"Players:GetPlayers", "GetPlayers", true},
		{"Entity:GetPos", "GetPos", true},
		{"net.Receive:Handle", "Handle", true},
		{"a:b:c", "b:c", true},
		{"Owner:", "", true},
		{"print", "print", false},
		{"math.floor", "math.floor", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, method := ResolveName(tt.raw)
			if name != tt.wantName || method != tt.wantMethod {
				t.Errorf("ResolveName(%q) = (%q, %v), want (%q, %v)", tt.raw, name, method, tt.wantName, tt.wantMethod)
			}
		})
	}
}

func TestParseName_Owner(t *testing.T) {
	t.Parallel()

	n := ParseName("Players:GetPlayers")
	if n.Owner != "Players" || n.Member != "GetPlayers" || !n.Method {
		t.Errorf("got %+v", n)
	}
	n = ParseName("print")
	if n.Owner != "" || n.Member != "print" || n.Method {
		t.Errorf("got %+v", n)
	}
}

func TestItemTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		item     *Item
		category string
		want     string
	}{
		{"method_with_category", &Item{Name: "Players:GetPlayers"}, "Players", "Players:GetPlayers"},
		{"method_category_wins", &Item{Name: "Player:Kick"}, "LocalPlayer", "LocalPlayer:Kick"},
		{"method_owner_fallback", &Item{Name: "Player:Kick"}, "", "Player:Kick"},
		{"function", &Item{Name: "print"}, "globals", "print"},
		{"empty", &Item{}, "globals", ""},
		{"nil_item", nil, "globals", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Title(tt.category); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestItemDisplayName_Nil(t *testing.T) {
	t.Parallel()

	var it *Item
	if it.DisplayName() != "" || it.IsMethod() {
		t.Error("nil item should resolve to empty, non-method")
	}
}
