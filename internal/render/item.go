package render

import (
	"html/template"
	"strings"

	"github.com/jcdickinson/apidocs/internal/docs"
)

// ItemView is the rendered form of a single item. Every section is guarded
// on its own data so an empty view renders nothing but the frame.
type ItemView struct {
	Title    string
	IsMethod bool
	Realm    string
	Params   []SigPart
	Returns  []SigPart

	Description template.HTML
	References  []RefLink

	ShowWarnings    bool
	Internal        bool
	InternalWarning string
	Warnings        []string

	Arguments []Argument
	Fields    []Field
	Examples  template.HTML
}

// SigPart is one fragment of a rendered signature.
type SigPart struct {
	Text  string
	Href  string
	Class string
	Space bool // preceded by a single space
}

type RefLink struct {
	Name string
	URL  string
}

type Argument struct {
	Type    string
	TypeURL string
	Name    string
}

type Field struct {
	Type        string
	Key         string
	Description string
}

func (r *Renderer) itemView(it *docs.Item, category string) *ItemView {
	v := &ItemView{
		Title:    it.Title(category),
		IsMethod: it.IsMethod(),
		Realm:    it.Realm,
		Params:   sigParts(docs.ParamSignature(it.Parameters)),
		Returns:  sigParts(docs.ReturnSignature(it.Returns)),
	}

	if strings.TrimSpace(it.Description) != "" {
		v.Description = r.HTML(it.Description)
		for _, ref := range it.References {
			v.References = append(v.References, RefLink{Name: ref.Name, URL: docs.ReferenceURL(ref.Path)})
		}
	}

	if docs.ShowWarnings(it) {
		v.ShowWarnings = true
		v.Internal = it.Internal
		if it.Internal {
			v.InternalWarning = docs.InternalWarning
		}
		v.Warnings = append(v.Warnings, it.Warnings...)
	}

	for _, p := range it.Parameters {
		v.Arguments = append(v.Arguments, Argument{
			Type:    docs.FormatType(p.Type),
			TypeURL: docs.TypeLink(p.Type),
			Name:    p.Name,
		})
	}

	for _, f := range it.Fields {
		v.Fields = append(v.Fields, Field{
			Type:        strings.ToUpper(f.Type),
			Key:         f.Key,
			Description: f.Description,
		})
	}

	if len(it.Examples) > 0 {
		v.Examples = r.HTML(docs.JoinExamples(it.Examples))
	}
	return v
}

func sigParts(tokens []docs.Token) []SigPart {
	parts := make([]SigPart, 0, len(tokens))
	for i, tok := range tokens {
		p := SigPart{Text: tok.Text, Href: tok.Href}
		switch tok.Kind {
		case docs.TokenType:
			p.Class = "type"
		case docs.TokenName:
			p.Class = "name"
			p.Space = i > 0 && tokens[i-1].Kind == docs.TokenType
		case docs.TokenSep:
			p.Class = "sep"
		}
		parts = append(parts, p)
	}
	return parts
}
