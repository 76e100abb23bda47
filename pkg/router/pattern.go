package router

import (
	"fmt"
	"strings"
)

// TokenKind classifies one URL pattern token.
type TokenKind int

const (
	// TokenLiteral matches exactly one identical path segment.
	TokenLiteral TokenKind = iota

	// TokenDynamic consumes exactly one path segment: ":name"
	TokenDynamic

	// TokenCatchAll consumes one or more trailing segments: "name+"
	TokenCatchAll

	// TokenOptionalCatchAll consumes zero or more trailing segments: "name*"
	TokenOptionalCatchAll
)

// Token is one element of a URL pattern. Text holds the literal text for
// literal tokens and the parameter name for the dynamic kinds.
type Token struct {
	Kind TokenKind `json:"kind"`
	Text string    `json:"text"`
}

// String renders the token in the engine's internal notation.
func (t Token) String() string {
	switch t.Kind {
	case TokenDynamic:
		return ":" + t.Text
	case TokenCatchAll:
		return t.Text + "+"
	case TokenOptionalCatchAll:
		return t.Text + "*"
	}
	return t.Text
}

// Pattern is a route's URL shape: an ordered token list plus the parameter
// names collected left to right.
type Pattern struct {
	Tokens  []Token  `json:"tokens"`
	Params  []string `json:"params,omitempty"`
	Dynamic bool     `json:"dynamic,omitempty"`
}

// String renders the pattern, "/" for the root.
func (p Pattern) String() string {
	if len(p.Tokens) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, t := range p.Tokens {
		b.WriteByte('/')
		b.WriteString(t.String())
	}
	return b.String()
}

// IsRoot reports whether the pattern is the bare root pattern.
func (p Pattern) IsRoot() bool { return len(p.Tokens) == 0 }

// segmentToken converts a classified segment into its URL token.
// Group, slot and interception segments contribute no token.
func segmentToken(seg Segment) (Token, bool) {
	switch seg.Kind {
	case SegmentStatic:
		return Token{Kind: TokenLiteral, Text: seg.Raw}, true
	case SegmentDynamic:
		return Token{Kind: TokenDynamic, Text: seg.Name}, true
	case SegmentCatchAll:
		return Token{Kind: TokenCatchAll, Text: seg.Name}, true
	case SegmentOptionalCatchAll:
		return Token{Kind: TokenOptionalCatchAll, Text: seg.Name}, true
	}
	return Token{}, false
}

// urlTokens folds classified segments into their URL tokens, dropping the
// transparent kinds.
func urlTokens(segs []Segment) []Token {
	var tokens []Token
	for _, seg := range segs {
		if tok, ok := segmentToken(seg); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// newPattern assembles a pattern from tokens, collecting parameter names
// left to right. A duplicate parameter name is an ambiguous route and
// fails loudly rather than silently shadowing.
func newPattern(tokens []Token) (Pattern, error) {
	p := Pattern{Tokens: tokens}
	seen := map[string]bool{}
	for _, tok := range tokens {
		if tok.Kind == TokenLiteral {
			continue
		}
		p.Dynamic = true
		if seen[tok.Text] {
			return Pattern{}, &ValidationError{
				Type:    ErrorDuplicateParam,
				Message: fmt.Sprintf("duplicate parameter %q in pattern %s", tok.Text, p.String()),
				Path:    p.String(),
			}
		}
		seen[tok.Text] = true
		p.Params = append(p.Params, tok.Text)
	}
	return p, nil
}

// buildPattern folds a root-to-leaf segment sequence into a pattern.
func buildPattern(segs []Segment) (Pattern, error) {
	return newPattern(urlTokens(segs))
}

// append extends a pattern with further tokens, revalidating parameters.
func (p Pattern) append(tokens []Token) (Pattern, error) {
	combined := make([]Token, 0, len(p.Tokens)+len(tokens))
	combined = append(combined, p.Tokens...)
	combined = append(combined, tokens...)
	return newPattern(combined)
}

// Score is the precedence score of the pattern: lower sorts earlier and
// matches first. Static tokens are free, dynamic tokens cost 100 plus
// their position, catch-alls 10000 plus position, optional catch-alls
// 20000 plus position. The sum guarantees static routes outrank dynamic
// ones and catch-alls outrank optional catch-alls; ties between distinct
// patterns are broken lexicographically by the caller.
func (p Pattern) Score() int {
	score := 0
	for i, tok := range p.Tokens {
		switch tok.Kind {
		case TokenDynamic:
			score += 100 + i
		case TokenCatchAll:
			score += 10000 + i
		case TokenOptionalCatchAll:
			score += 20000 + i
		}
	}
	return score
}

// BracketString renders the pattern in the filesystem bracket convention
// directly from its tokens. Unlike ToBracketNotation it never re-parses
// rendered text, so a literal segment whose name ends in '+' or '*' is
// kept literal.
func (p Pattern) BracketString() string {
	if len(p.Tokens) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, t := range p.Tokens {
		b.WriteByte('/')
		switch t.Kind {
		case TokenDynamic:
			b.WriteString("[" + t.Text + "]")
		case TokenCatchAll:
			b.WriteString("[..." + t.Text + "]")
		case TokenOptionalCatchAll:
			b.WriteString("[[..." + t.Text + "]]")
		default:
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

// ToBracketNotation converts a pattern string from the engine's internal
// token notation to the filesystem bracket convention:
//
//	/blog/:slug  → /blog/[slug]
//	/docs/rest+  → /docs/[...rest]
//	/docs/rest*  → /docs/[[...rest]]
//
// The conversion is the inverse of FromBracketNotation. The rendered
// token notation is ambiguous for literal segments ending in '+' or '*'
// ("c++" reads as a catch-all named "c+"); callers holding a typed
// Pattern should use BracketString, which has no such ambiguity.
func ToBracketNotation(pattern string) string {
	if pattern == "/" || pattern == "" {
		return "/"
	}
	parts := strings.Split(strings.TrimPrefix(pattern, "/"), "/")
	for i, part := range parts {
		switch {
		case strings.HasPrefix(part, ":"):
			parts[i] = "[" + part[1:] + "]"
		case strings.HasSuffix(part, "+") && len(part) > 1:
			parts[i] = "[..." + part[:len(part)-1] + "]"
		case strings.HasSuffix(part, "*") && len(part) > 1:
			parts[i] = "[[..." + part[:len(part)-1] + "]]"
		}
	}
	return "/" + strings.Join(parts, "/")
}

// FromBracketNotation converts a path in the filesystem bracket convention
// back to the engine's internal token notation. It is the inverse of
// ToBracketNotation.
func FromBracketNotation(path string) string {
	if path == "/" || path == "" {
		return "/"
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		seg := ClassifySegment(part)
		if tok, ok := segmentToken(seg); ok {
			parts[i] = tok.String()
		}
	}
	return "/" + strings.Join(parts, "/")
}
