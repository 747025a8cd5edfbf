package docs

import "testing"

func testProject() Project {
	return Project{
		"classes": {
			Subcategories: map[string]*Node{
				"Player": {
					Item: Item{Name: "Player", Description: "A connected player."},
					Subcategories: map[string]*Node{
						"Kick": {Item: Item{
							Name:       "Player:Kick",
							Parameters: []Parameter{{Name: "reason", Type: Named("string")}},
						}},
						"Nick": {Item: Item{
							Name:    "Player:Nick",
							Returns: []ReturnType{{Type: Named("string")}},
						}},
					},
				},
				"Players": {
					Subcategories: map[string]*Node{
						"GetPlayers": {Item: Item{
							Name:       "Players:GetPlayers",
							Parameters: []Parameter{{Name: "recursive", Type: Named("bool")}},
							Returns:    []ReturnType{{Type: ArrayOf(TypeExpr{Name: "Player", Path: "classes/Player"})}},
							References: []Reference{{Path: "classes/Player/Kick", Name: "Player:Kick"}},
						}},
					},
				},
			},
		},
		"globals": {
			Subcategories: map[string]*Node{
				"print": {Item: Item{Name: "print", References: []Reference{{Path: "globals/missing", Name: "missing"}}}},
			},
		},
		"empty": nil,
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	p := testProject()

	tests := []struct {
		name               string
		tab, category, sub string
		wantName           string
		wantOK             bool
	}{
		{"leaf", "classes", "Player", "Kick", "Player:Kick", true},
		{"category", "classes", "Player", "", "Player", true},
		{"top_level", "globals", "print", "", "print", true},
		{"missing_sub", "classes", "Player", "missing", "", false},
		{"missing_category", "classes", "Nope", "", "", false},
		{"missing_tab", "nope", "Player", "", "", false},
		{"nil_tab", "empty", "x", "", "", false},
		{"sub_on_leaf", "globals", "print", "x", "", false},
		{"no_tab", "", "", "", "", false},
		{"no_category", "classes", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, ok := p.Select(tt.tab, tt.category, tt.sub)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if it != nil {
					t.Errorf("expected nil item on miss, got %+v", it)
				}
				return
			}
			if it.Name != tt.wantName {
				t.Errorf("name = %q, want %q", it.Name, tt.wantName)
			}
		})
	}
}

func TestSelect_NestedSubcategory(t *testing.T) {
	t.Parallel()

	item := Item{Name: "ITEM"}
	p := Project{"tabX": {Subcategories: map[string]*Node{
		"catY": {Subcategories: map[string]*Node{"subZ": {Item: item}}},
	}}}

	got, ok := p.Select("tabX", "catY", "subZ")
	if !ok || got.Name != "ITEM" {
		t.Errorf("got (%+v, %v)", got, ok)
	}
	if _, ok := p.Select("tabX", "catY", "missing"); ok {
		t.Error("expected miss for unknown subcategory")
	}
}

func TestSelect_NilProject(t *testing.T) {
	t.Parallel()

	var p Project
	if _, ok := p.Select("a", "b", "c"); ok {
		t.Error("nil project should never resolve")
	}
}

func TestWalk_Order(t *testing.T) {
	t.Parallel()

	var paths []string
	testProject().Walk(func(e Entry) bool {
		paths = append(paths, e.Path())
		return true
	})

	want := []string{
		"classes/Player",
		"classes/Player/Kick",
		"classes/Player/Nick",
		"classes/Players/GetPlayers",
		"globals/print",
	}
	if len(paths) != len(want) {
		t.Fatalf("got %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestWalk_Stop(t *testing.T) {
	t.Parallel()

	count := 0
	testProject().Walk(func(Entry) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("walk visited %d entries after stop, want 2", count)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	r := Check(testProject())
	if r.Items != 5 {
		t.Errorf("items = %d, want 5", r.Items)
	}
	if r.Methods != 3 {
		t.Errorf("methods = %d, want 3", r.Methods)
	}
	if len(r.Broken) != 1 {
		t.Fatalf("broken = %v, want one entry", r.Broken)
	}
	if r.Broken[0].From != "globals/print" || r.Broken[0].Path != "globals/missing" {
		t.Errorf("broken[0] = %+v", r.Broken[0])
	}
	if len(r.Untyped) != 0 {
		t.Errorf("untyped = %v, want none", r.Untyped)
	}
}

func TestCheck_Untyped(t *testing.T) {
	t.Parallel()

	p := Project{
		"globals": {
			Subcategories: map[string]*Node{
				"run": {Item: Item{
					Name:       "run",
					Parameters: []Parameter{{Name: "code", Type: Named("string")}, {Name: "env"}},
					Returns:    []ReturnType{{Name: "ok"}},
				}},
			},
		},
	}

	r := Check(p)
	want := []Untyped{
		{From: "globals/run", Label: "argument 2"},
		{From: "globals/run", Label: "return 1"},
	}
	if len(r.Untyped) != len(want) {
		t.Fatalf("untyped = %v, want %v", r.Untyped, want)
	}
	for i := range want {
		if r.Untyped[i] != want[i] {
			t.Errorf("untyped[%d] = %+v, want %+v", i, r.Untyped[i], want[i])
		}
	}
}

func TestTabs(t *testing.T) {
	t.Parallel()

	tabs := testProject().Tabs()
	if len(tabs) != 3 || tabs[0] != "classes" || tabs[1] != "empty" || tabs[2] != "globals" {
		t.Errorf("got %v", tabs)
	}
}
