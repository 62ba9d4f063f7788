package quantity

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokenIdent tokenKind = iota
	tokenNumber
	tokenPower
	tokenMul
	tokenDiv
	tokenOpen
	tokenClose
)

type unitToken struct {
	kind tokenKind
	text string
}

var superscriptDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

// formatUnit renders a unit expression in compact notation: identifiers
// become display symbols, "**" exponents become superscripts, "*" becomes
// an interpunct. Tokens with no display form fail so callers can fall back
// to the raw expression.
func formatUnit(unit string) (string, error) {
	trimmed := strings.TrimSpace(unit)
	if trimmed == "" {
		return "", fmt.Errorf("quantity: cannot format empty unit")
	}
	tokens, err := tokenizeUnit(trimmed)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		switch token.kind {
		case tokenIdent:
			symbol, err := unitSymbol(token.text)
			if err != nil {
				return "", err
			}
			out.WriteString(symbol)
		case tokenNumber:
			out.WriteString(token.text)
		case tokenPower:
			i++
			if i >= len(tokens) || tokens[i].kind != tokenNumber {
				return "", fmt.Errorf("quantity: exponent expected after ** in %q", unit)
			}
			superscript, err := superscriptNumber(tokens[i].text)
			if err != nil {
				return "", err
			}
			out.WriteString(superscript)
		case tokenMul:
			out.WriteString("·")
		case tokenDiv:
			out.WriteString("/")
		case tokenOpen:
			out.WriteString("(")
		case tokenClose:
			out.WriteString(")")
		}
	}
	return out.String(), nil
}

func unitSymbol(name string) (string, error) {
	if def, ok := linearUnits[name]; ok {
		return def.symbol, nil
	}
	if af, ok := affineUnits[name]; ok {
		return af.symbol, nil
	}
	return "", fmt.Errorf("quantity: no display symbol for %q", name)
}

func superscriptNumber(number string) (string, error) {
	var out strings.Builder
	for _, r := range number {
		sup, ok := superscriptDigits[r]
		if !ok {
			return "", fmt.Errorf("quantity: cannot superscript exponent %q", number)
		}
		out.WriteRune(sup)
	}
	return out.String(), nil
}

func tokenizeUnit(expression string) ([]unitToken, error) {
	var tokens []unitToken
	runes := []rune(expression)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t':
			i++
		case r == '(':
			tokens = append(tokens, unitToken{kind: tokenOpen, text: "("})
			i++
		case r == ')':
			tokens = append(tokens, unitToken{kind: tokenClose, text: ")"})
			i++
		case r == '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				tokens = append(tokens, unitToken{kind: tokenPower, text: "**"})
				i += 2
			} else {
				tokens = append(tokens, unitToken{kind: tokenMul, text: "*"})
				i++
			}
		case r == '/':
			tokens = append(tokens, unitToken{kind: tokenDiv, text: "/"})
			i++
		case r >= '0' && r <= '9':
			start := i
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				i++
			}
			tokens = append(tokens, unitToken{kind: tokenNumber, text: string(runes[start:i])})
		case isIdentRune(r):
			start := i
			for i < len(runes) && (isIdentRune(runes[i]) || runes[i] >= '0' && runes[i] <= '9') {
				i++
			}
			tokens = append(tokens, unitToken{kind: tokenIdent, text: string(runes[start:i])})
		default:
			return nil, fmt.Errorf("quantity: unexpected character %q in %q", r, expression)
		}
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("quantity: cannot format empty unit")
	}
	return tokens, nil
}

func isIdentRune(r rune) bool {
	return r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
