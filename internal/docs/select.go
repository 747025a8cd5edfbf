package docs

import "sort"

// Select resolves the item addressed by the navigation keys:
// tab → subcategories[category], then → subcategories[subcategory] when a
// subcategory is given. Any missing key yields (nil, false).
func (p Project) Select(tab, category, subcategory string) (*Item, bool) {
	node, ok := p.SelectNode(tab, category, subcategory)
	if !ok {
		return nil, false
	}
	return &node.Item, true
}

// SelectNode is Select returning the tree node, so callers can inspect its
// subcategories.
func (p Project) SelectNode(tab, category, subcategory string) (*Node, bool) {
	if tab == "" || category == "" {
		return nil, false
	}
	root, ok := p[tab]
	if !ok || root == nil {
		return nil, false
	}
	node, ok := root.Subcategories[category]
	if !ok || node == nil {
		return nil, false
	}
	if subcategory == "" {
		return node, true
	}
	leaf, ok := node.Subcategories[subcategory]
	if !ok || leaf == nil {
		return nil, false
	}
	return leaf, true
}

// Tabs returns the tab names in sorted order.
func (p Project) Tabs() []string {
	return sortedKeys(p)
}

// Entry is an item reached while walking the tree, with its navigation keys.
type Entry struct {
	Tab         string
	Category    string
	Subcategory string
	Item        *Item
}

// Path returns the reference path of the entry, e.g. "classes/Player/Kick".
func (e Entry) Path() string {
	p := e.Tab + "/" + e.Category
	if e.Subcategory != "" {
		p += "/" + e.Subcategory
	}
	return p
}

// Walk visits every addressable item in sorted key order. Categories that
// only group subcategories and carry no name are skipped, their children are
// still visited. Returning false from fn stops the walk.
func (p Project) Walk(fn func(Entry) bool) {
	for _, tab := range sortedKeys(p) {
		root := p[tab]
		if root == nil {
			continue
		}
		for _, cat := range sortedKeys(root.Subcategories) {
			node := root.Subcategories[cat]
			if node == nil {
				continue
			}
			if node.Name != "" {
				if !fn(Entry{Tab: tab, Category: cat, Item: &node.Item}) {
					return
				}
			}
			for _, sub := range sortedKeys(node.Subcategories) {
				leaf := node.Subcategories[sub]
				if leaf == nil {
					continue
				}
				if !fn(Entry{Tab: tab, Category: cat, Subcategory: sub, Item: &leaf.Item}) {
					return
				}
			}
		}
	}
}

func sortedKeys(m map[string]*Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
