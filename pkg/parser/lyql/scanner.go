package lyql

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/lyqlplay/pkg/ast"
)

// ScanErrorKind classifies a scan failure.
type ScanErrorKind uint8

// Scan failure kinds.
const (
	UnexpectedCharacter ScanErrorKind = iota
	UnterminatedString
	MalformedNumber
)

func (k ScanErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case UnterminatedString:
		return "unterminated string"
	case MalformedNumber:
		return "malformed number literal"
	default:
		return "scan error"
	}
}

// ScanError reports where and why scanning stopped.
type ScanError struct {
	Kind ScanErrorKind
	Span ast.Span
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s at %d..%d", e.Kind, e.Span.Start, e.Span.End)
}

// scanner walks the source byte by byte; offsets are byte offsets.
type scanner struct {
	src    string
	pos    int
	tokens []Token
}

// Scan splits src into tokens. The final token is always KindEOF.
func Scan(src string) ([]Token, error) {
	s := &scanner{src: src}
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.tokens, nil
}

func (s *scanner) run() error {
	for s.pos < len(s.src) {
		start := s.pos
		c := s.src[s.pos]

		switch {
		case c == ' ' || c == '\r' || c == '\t' || c == '\n':
			s.pos++
		case c == '"' || c == '\'' || c == '`':
			if err := s.scanString(start, c); err != nil {
				return err
			}
		case isDigit(c):
			if err := s.scanNumber(start); err != nil {
				return err
			}
		case isWordStart(c):
			s.scanWord(start)
		case c == '/':
			s.scanSlash(start)
		case c == '!' || c == '=' || c == '<' || c == '>' || c == '|' || c == '&' || c == ':':
			if err := s.scanCompound(start, c); err != nil {
				return err
			}
		case singleSymbols[c]:
			s.pos++
			s.emit(KindSymbol, start, s.src[start:s.pos])
		default:
			_, width := utf8.DecodeRuneInString(s.src[s.pos:])
			return &ScanError{Kind: UnexpectedCharacter, Span: ast.Span{Start: start, End: start + width}}
		}
	}

	s.tokens = append(s.tokens, Token{Kind: KindEOF, Span: ast.Span{Start: len(s.src), End: len(s.src)}})
	return nil
}

func (s *scanner) emit(kind Kind, start int, lexeme string) {
	s.tokens = append(s.tokens, Token{
		Kind:   kind,
		Lexeme: lexeme,
		Span:   ast.Span{Start: start, End: s.pos},
	})
}

func (s *scanner) peek(offset int) byte {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

func (s *scanner) scanString(start int, quote byte) error {
	s.pos++ // opening quote
	for s.pos < len(s.src) && s.src[s.pos] != quote {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return &ScanError{Kind: UnterminatedString, Span: ast.Span{Start: start, End: s.pos}}
	}
	s.pos++ // closing quote
	s.emit(KindString, start, s.src[start+1:s.pos-1])
	return nil
}

func (s *scanner) scanNumber(start int) error {
	s.skipDigits()

	if s.peek(0) == '.' && isDigit(s.peek(1)) {
		s.pos++
		s.skipDigits()
	}

	if c := s.peek(0); c == 'e' || c == 'E' {
		s.pos++
		if c := s.peek(0); c == '-' || c == '+' {
			s.pos++
		}
		if !isDigit(s.peek(0)) {
			return &ScanError{Kind: MalformedNumber, Span: ast.Span{Start: start, End: s.pos}}
		}
		s.skipDigits()
	}

	s.emit(KindNumber, start, s.src[start:s.pos])
	return nil
}

func (s *scanner) skipDigits() {
	for isDigit(s.peek(0)) {
		s.pos++
	}
}

func (s *scanner) scanWord(start int) {
	for s.pos < len(s.src) {
		r, width := utf8.DecodeRuneInString(s.src[s.pos:])
		if !isWordRune(r) {
			break
		}
		s.pos += width
	}

	word := s.src[start:s.pos]
	escaped := word[0] == '\\'
	afterDot := false
	if n := len(s.tokens); n > 0 {
		prev := s.tokens[n-1]
		afterDot = prev.Kind == KindSymbol && prev.Lexeme == "."
	}

	kind := KindIdentifier
	if !escaped && !afterDot {
		kind = keywordKind(word)
	}

	lexeme := word
	if escaped {
		lexeme = word[1:]
	}
	s.emit(kind, start, lexeme)
	if kind == KindIdentifier && len(lexeme) > 0 && lexeme[0] == '$' {
		s.tokens[len(s.tokens)-1].Dollar = true
	}
}

// scanSlash handles '/' and '//' line comments. Comments produce no token.
func (s *scanner) scanSlash(start int) {
	s.pos++
	if s.peek(0) != '/' {
		s.emit(KindSymbol, start, "/")
		return
	}
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

// scanCompound handles symbols that may pair with the next character:
// ::, &&, ||, !=, ==, <=, >= and their single-character forms.
func (s *scanner) scanCompound(start int, c byte) error {
	s.pos++
	next := s.peek(0)

	switch {
	case c == ':' && next == ':',
		c == '&' && next == '&',
		c == '|' && next == '|',
		(c == '!' || c == '=' || c == '<' || c == '>') && next == '=':
		s.pos++
	case c == '&' || c == '|':
		return &ScanError{Kind: UnexpectedCharacter, Span: ast.Span{Start: start, End: s.pos}}
	}

	s.emit(KindSymbol, start, s.src[start:s.pos])
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$' || c == '\\'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' || r == '\\'
}
