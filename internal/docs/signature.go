package docs

import "strings"

// TokenKind classifies a piece of a rendered signature.
type TokenKind int

const (
	TokenType TokenKind = iota
	TokenName
	TokenSep
)

// SignatureSeparator sits between consecutive parameters or returns.
const SignatureSeparator = ", "

// Token is one display fragment of a signature. Href is set on type tokens
// that link to another documented item.
type Token struct {
	Kind TokenKind
	Text string
	Href string
}

// ParamSignature renders parameters in order as "type name" pairs joined by
// SignatureSeparator. Unnamed parameters render their type only.
func ParamSignature(params []Parameter) []Token {
	var tokens []Token
	for i, p := range params {
		if i > 0 {
			tokens = append(tokens, Token{Kind: TokenSep, Text: SignatureSeparator})
		}
		tokens = append(tokens, typeToken(p.Type))
		if p.Name != "" {
			tokens = append(tokens, Token{Kind: TokenName, Text: p.Name})
		}
	}
	return tokens
}

// ReturnSignature renders return types in order joined by SignatureSeparator.
func ReturnSignature(returns []ReturnType) []Token {
	var tokens []Token
	for i, r := range returns {
		if i > 0 {
			tokens = append(tokens, Token{Kind: TokenSep, Text: SignatureSeparator})
		}
		tokens = append(tokens, typeToken(r.Type))
	}
	return tokens
}

// PlainSignature flattens tokens to text. A type followed by a name is
// joined with a single space.
func PlainSignature(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if tok.Kind == TokenName && i > 0 && tokens[i-1].Kind == TokenType {
			b.WriteString(" ")
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// FuncSignature renders a one-line signature such as
// "Players:GetPlayers(bool recursive) → Array".
func FuncSignature(it *Item, category string) string {
	if it == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(it.Title(category))
	b.WriteString("(")
	b.WriteString(PlainSignature(ParamSignature(it.Parameters)))
	b.WriteString(")")
	if rets := PlainSignature(ReturnSignature(it.Returns)); rets != "" {
		b.WriteString(" → ")
		b.WriteString(rets)
	}
	return b.String()
}

func typeToken(t TypeExpr) Token {
	return Token{Kind: TokenType, Text: FormatType(t), Href: TypeLink(t)}
}
