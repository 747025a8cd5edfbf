package docs

import "strings"

// MethodSeparator splits an owner from a member name, as in "Players:GetPlayers".
const MethodSeparator = ":"

// Name is a raw item name split into its parts.
type Name struct {
	Owner  string // empty unless Method
	Member string
	Method bool
}

// ParseName splits raw at the first MethodSeparator. Names without a
// separator are returned whole as the member.
func ParseName(raw string) Name {
	owner, member, found := strings.Cut(raw, MethodSeparator)
	if !found {
		return Name{Member: raw}
	}
	return Name{Owner: owner, Member: member, Method: true}
}

// ResolveName returns the display name of raw and whether it names a method.
// An empty name resolves to ("", false).
func ResolveName(raw string) (string, bool) {
	n := ParseName(raw)
	return n.Member, n.Method
}

// Title is the heading shown for the item. Methods are qualified with the
// category they were reached through, or with their owner when no category
// is known.
func (it *Item) Title(category string) string {
	if it == nil {
		return ""
	}
	n := ParseName(it.Name)
	if !n.Method {
		return n.Member
	}
	qualifier := category
	if qualifier == "" {
		qualifier = n.Owner
	}
	return qualifier + MethodSeparator + n.Member
}

// DisplayName is the bare member name of the item.
func (it *Item) DisplayName() string {
	if it == nil {
		return ""
	}
	name, _ := ResolveName(it.Name)
	return name
}

// IsMethod reports whether the item's name encodes a method.
func (it *Item) IsMethod() bool {
	if it == nil {
		return false
	}
	_, method := ResolveName(it.Name)
	return method
}
