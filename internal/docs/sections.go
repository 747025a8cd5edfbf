package docs

import (
	"fmt"
	"strings"
)

const (
	SecDescription = "description"
	SecWarnings    = "warnings"
	SecArguments   = "arguments"
	SecReturns     = "returns"
	SecFields      = "fields"
	SecExamples    = "examples"
)

// InternalWarning is shown for items flagged as internal.
const InternalWarning = "This is used internally - although you're able to use it you probably shouldn't"

// Section is a named block of markdown generated from an item.
type Section struct {
	Name    string
	Content string
}

// Sections builds the markdown sections of an item. Each section is only
// produced when the item carries data for it.
func Sections(it *Item) []Section {
	if it == nil {
		return nil
	}

	var sections []Section
	if s := descriptionSection(it); s != nil {
		sections = append(sections, *s)
	}
	if s := warningsSection(it); s != nil {
		sections = append(sections, *s)
	}
	if s := argumentsSection(it); s != nil {
		sections = append(sections, *s)
	}
	if s := returnsSection(it); s != nil {
		sections = append(sections, *s)
	}
	if s := fieldsSection(it); s != nil {
		sections = append(sections, *s)
	}
	if s := examplesSection(it); s != nil {
		sections = append(sections, *s)
	}
	return sections
}

// Markdown renders the whole item page as markdown: title, signature for
// methods, then every non-empty section.
func Markdown(it *Item, category string) string {
	if it == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s\n\n", it.Title(category)))
	if it.IsMethod() {
		b.WriteString(fmt.Sprintf("```lua\n%s\n```\n\n", FuncSignature(it, category)))
	}
	for _, s := range Sections(it) {
		b.WriteString(s.Content)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// JoinExamples joins example snippets with blank lines, the form in which
// they are rendered as one markdown block.
func JoinExamples(examples []string) string {
	return strings.Join(examples, "\n\n")
}

// ShowWarnings reports whether the warnings section has anything to show.
func ShowWarnings(it *Item) bool {
	return it != nil && (it.Internal || len(it.Warnings) > 0)
}

func descriptionSection(it *Item) *Section {
	if strings.TrimSpace(it.Description) == "" {
		return nil
	}
	var b strings.Builder
	b.WriteString("## Description\n\n")
	b.WriteString(strings.TrimSpace(it.Description))
	b.WriteString("\n\n")
	for _, ref := range it.References {
		b.WriteString(fmt.Sprintf("See also: [%s](%s)\n\n", ref.Name, ReferenceURL(ref.Path)))
	}
	return &Section{Name: SecDescription, Content: b.String()}
}

func warningsSection(it *Item) *Section {
	if !ShowWarnings(it) {
		return nil
	}
	var b strings.Builder
	b.WriteString("## Warnings\n\n")
	if it.Internal {
		b.WriteString("> " + InternalWarning + "\n\n")
	}
	for _, w := range it.Warnings {
		b.WriteString("> ⚠️ " + w + "\n\n")
	}
	return &Section{Name: SecWarnings, Content: b.String()}
}

func argumentsSection(it *Item) *Section {
	if len(it.Parameters) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("## Arguments\n\n")
	for i, p := range it.Parameters {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i+1)
		}
		b.WriteString(fmt.Sprintf("%d. `%s` **%s**\n", i+1, FormatType(p.Type), name))
	}
	b.WriteString("\n")
	return &Section{Name: SecArguments, Content: b.String()}
}

func returnsSection(it *Item) *Section {
	if len(it.Returns) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("## Returns\n\n")
	for i, r := range it.Returns {
		b.WriteString(fmt.Sprintf("%d. `%s`", i+1, FormatType(r.Type)))
		if r.Name != "" {
			b.WriteString(" " + r.Name)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return &Section{Name: SecReturns, Content: b.String()}
}

func fieldsSection(it *Item) *Section {
	if len(it.Fields) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("## Fields\n\n")
	b.WriteString("| Type | Name | Description |\n")
	b.WriteString("|------|------|-------------|\n")
	for _, f := range it.Fields {
		b.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
			escapeCell(strings.ToUpper(f.Type)), escapeCell(f.Key), escapeCell(f.Description)))
	}
	b.WriteString("\n")
	return &Section{Name: SecFields, Content: b.String()}
}

func examplesSection(it *Item) *Section {
	if len(it.Examples) == 0 {
		return nil
	}
	return &Section{
		Name:    SecExamples,
		Content: "## Examples\n\n" + JoinExamples(it.Examples) + "\n\n",
	}
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
