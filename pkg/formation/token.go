package formation

import (
	"strings"
)

type TokenKind int

const (
	TokenUnknown TokenKind = iota
	TokenSector
	TokenFictitiousWagon
	TokenBracketOpen
	TokenBracketClose
	TokenParenOpen
	TokenParenClose
	TokenComma
	TokenBackslash
	TokenVehicle
)

func (k TokenKind) String() string {
	switch k {
	case TokenSector:
		return "Sector"
	case TokenFictitiousWagon:
		return "FictitiousWagon"
	case TokenBracketOpen:
		return "BracketOpen"
	case TokenBracketClose:
		return "BracketClose"
	case TokenParenOpen:
		return "ParenOpen"
	case TokenParenClose:
		return "ParenClose"
	case TokenComma:
		return "Comma"
	case TokenBackslash:
		return "Backslash"
	case TokenVehicle:
		return "Vehicle"
	default:
		return "Unknown"
	}
}

type Token struct {
	Kind     TokenKind
	Value    string
	Position int
}

// charAction is the lexer decision for a single input byte.
type charAction int

const (
	actionBuffer charAction = iota
	actionStructural
	actionSector
	actionFictitious
)

// decideAction is the whole lexer decision table. Every ambiguous character is settled here and
// nowhere else: '@' is a sector only when an uppercase letter follows, 'F' is a fictitious wagon only
// when it stands alone between separators.
func decideAction(input string, i int, bufferEmpty bool) charAction {
	c := input[i]

	if _, ok := structuralKind(c); ok {
		return actionStructural
	}

	switch c {
	case '@':
		if i+1 < len(input) && isUpper(input[i+1]) {
			return actionSector
		}
	case 'F':
		if bufferEmpty && (i+1 == len(input) || isStructural(input[i+1])) {
			return actionFictitious
		}
	}

	return actionBuffer
}

func structuralKind(c byte) (TokenKind, bool) {
	switch c {
	case '[':
		return TokenBracketOpen, true
	case ']':
		return TokenBracketClose, true
	case '(':
		return TokenParenOpen, true
	case ')':
		return TokenParenClose, true
	case ',':
		return TokenComma, true
	case '\\':
		return TokenBackslash, true
	}

	return TokenUnknown, false
}

func isStructural(c byte) bool {
	_, ok := structuralKind(c)
	return ok
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

type tokenizer struct {
	input  string
	tokens []Token

	buffer      strings.Builder
	bufferStart int
}

// Tokenize splits a formation string into typed tokens. It never fails; text it cannot place
// becomes a TokenUnknown which later stages ignore.
func Tokenize(formation string) []Token {
	t := &tokenizer{input: formation}

	for i := 0; i < len(formation); i++ {
		switch decideAction(formation, i, t.buffer.Len() == 0) {
		case actionStructural:
			t.flush()
			kind, _ := structuralKind(formation[i])
			t.emit(kind, formation[i:i+1], i)
		case actionSector:
			t.flush()
			t.emit(TokenSector, formation[i:i+2], i)
			i++
		case actionFictitious:
			t.emit(TokenFictitiousWagon, "F", i)
		default:
			if t.buffer.Len() == 0 {
				t.bufferStart = i
			}
			t.buffer.WriteByte(formation[i])
		}
	}
	t.flush()

	return t.tokens
}

func (t *tokenizer) emit(kind TokenKind, value string, position int) {
	t.tokens = append(t.tokens, Token{Kind: kind, Value: value, Position: position})
}

func (t *tokenizer) flush() {
	if t.buffer.Len() == 0 {
		return
	}

	run := t.buffer.String()
	t.buffer.Reset()

	trimmed := strings.TrimSpace(run)
	if trimmed == "" {
		return
	}

	t.emit(classifyRun(trimmed), trimmed, t.bufferStart+strings.Index(run, trimmed))
}

func classifyRun(run string) TokenKind {
	switch {
	case strings.HasPrefix(run, "@") && len(run) > 1:
		return TokenSector
	case run == "F":
		return TokenFictitiousWagon
	case IsPotentialWagon(run):
		return TokenVehicle
	default:
		return TokenUnknown
	}
}

// IsPotentialWagon reports whether a token looks like it describes a wagon: it either starts with a
// status character or contains one of the known wagon type codes.
func IsPotentialWagon(token string) bool {
	if token == "" {
		return false
	}
	if strings.ContainsRune(statusChars, rune(token[0])) {
		return true
	}

	for _, code := range typeCodes {
		if strings.Contains(token, code.Code) {
			return true
		}
	}

	return false
}
