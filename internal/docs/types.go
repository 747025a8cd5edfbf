package docs

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Project is the top level of the documentation tree, keyed by tab name.
// It is loaded once and treated as read-only afterwards.
type Project map[string]*Node

// Node is one entry of the tree. Categories that group further entries
// carry Subcategories; leaves carry only the documented item.
type Node struct {
	Item          `yaml:",inline"`
	Subcategories map[string]*Node `json:"subcategories,omitempty" yaml:"subcategories,omitempty"`
}

// Item is a single documented API member: a function, method or property.
type Item struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Examples    []string     `json:"examples,omitempty" yaml:"examples,omitempty"`
	References  []Reference  `json:"references,omitempty" yaml:"references,omitempty"`
	Warnings    []string     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Parameters  []Parameter  `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Returns     []ReturnType `json:"returns,omitempty" yaml:"returns,omitempty"`
	Fields      []FieldInfo  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Realm       string       `json:"realm,omitempty" yaml:"realm,omitempty"`
	Internal    bool         `json:"internal,omitempty" yaml:"internal,omitempty"`
}

// Parameter is one argument of a function or method.
type Parameter struct {
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`
	Type TypeExpr `json:"type" yaml:"type"`
}

// ReturnType is one return value of a function or method.
type ReturnType struct {
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`
	Type TypeExpr `json:"type" yaml:"type"`
}

// Reference is a "see also" link to another documented item.
type Reference struct {
	Path string `json:"path" yaml:"path"`
	Name string `json:"name" yaml:"name"`
}

// FieldInfo describes one property of a structured value.
type FieldInfo struct {
	Type        string `json:"type" yaml:"type"`
	Key         string `json:"key" yaml:"key"`
	Description string `json:"description" yaml:"description"`
}

// TypeExpr is a structured type expression. Exactly one of Name, Array or
// Union is set on a well-formed expression.
//
// Accepted encodings:
//
//	"bool"                                   named/primitive
//	{"name": "Player", "path": "classes/Player"}
//	{"array": <expr>}
//	{"union": [<expr>, ...]}  or  [<expr>, ...]
type TypeExpr struct {
	Name  string     `json:"name,omitempty" yaml:"name,omitempty"`
	Path  string     `json:"path,omitempty" yaml:"path,omitempty"`
	Array *TypeExpr  `json:"array,omitempty" yaml:"array,omitempty"`
	Union []TypeExpr `json:"union,omitempty" yaml:"union,omitempty"`
}

// Named returns a named type expression.
func Named(name string) TypeExpr { return TypeExpr{Name: name} }

// ArrayOf returns an array of elem.
func ArrayOf(elem TypeExpr) TypeExpr { return TypeExpr{Array: &elem} }

// UnionOf returns a union of the given members.
func UnionOf(members ...TypeExpr) TypeExpr { return TypeExpr{Union: members} }

// IsZero reports whether the expression carries no type at all.
func (t TypeExpr) IsZero() bool {
	return t.Name == "" && t.Array == nil && len(t.Union) == 0
}

// typeExprFields avoids recursing into UnmarshalJSON/UnmarshalYAML.
type typeExprFields TypeExpr

func (t *TypeExpr) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*t = TypeExpr{Name: name}
		return nil
	}

	var members []TypeExpr
	if err := json.Unmarshal(data, &members); err == nil {
		*t = TypeExpr{Union: members}
		return nil
	}

	var f typeExprFields
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decoding type expression: %w", err)
	}
	*t = TypeExpr(f)
	return nil
}

func (t *TypeExpr) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*t = TypeExpr{Name: value.Value}
		return nil
	case yaml.SequenceNode:
		var members []TypeExpr
		if err := value.Decode(&members); err != nil {
			return fmt.Errorf("decoding union members: %w", err)
		}
		*t = TypeExpr{Union: members}
		return nil
	case yaml.MappingNode:
		var f typeExprFields
		if err := value.Decode(&f); err != nil {
			return fmt.Errorf("decoding type expression: %w", err)
		}
		*t = TypeExpr(f)
		return nil
	default:
		return fmt.Errorf("unexpected YAML node kind %d for type expression", value.Kind)
	}
}
