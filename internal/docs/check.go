package docs

import "fmt"

// BrokenRef is a reference or type path that does not resolve to an item.
type BrokenRef struct {
	From string // path of the item holding the reference
	Path string
}

// Untyped names a parameter or return value that carries no type.
type Untyped struct {
	From  string
	Label string // "argument 2", "return 1"
}

// Report summarises a loaded project.
type Report struct {
	Items   int
	Methods int
	Broken  []BrokenRef
	Untyped []Untyped
}

// Check walks the project and reports item counts, every reference or
// linked type whose path does not resolve through Select, and every
// parameter or return value with an empty type.
func Check(p Project) Report {
	var r Report
	p.Walk(func(e Entry) bool {
		r.Items++
		if e.Item.IsMethod() {
			r.Methods++
		}

		for i, param := range e.Item.Parameters {
			if param.Type.IsZero() {
				r.Untyped = append(r.Untyped, Untyped{From: e.Path(), Label: fmt.Sprintf("argument %d", i+1)})
			}
		}
		for i, ret := range e.Item.Returns {
			if ret.Type.IsZero() {
				r.Untyped = append(r.Untyped, Untyped{From: e.Path(), Label: fmt.Sprintf("return %d", i+1)})
			}
		}

		var paths []string
		for _, ref := range e.Item.References {
			paths = append(paths, ref.Path)
		}
		for _, param := range e.Item.Parameters {
			paths = append(paths, typePaths(param.Type)...)
		}
		for _, ret := range e.Item.Returns {
			paths = append(paths, typePaths(ret.Type)...)
		}

		for _, path := range paths {
			if _, ok := p.Select(ParseDocPath(path)); !ok {
				r.Broken = append(r.Broken, BrokenRef{From: e.Path(), Path: path})
			}
		}
		return true
	})
	return r
}
