// Package lyql tokenizes LyQL, the LykiaDB query language that mixes a
// script syntax with SQL keywords, and exposes the token stream as a flat
// syntax tree for the playground.
package lyql

import (
	"strings"

	"github.com/yaklabco/lyqlplay/pkg/ast"
)

// Kind classifies a token.
type Kind uint8

// Token kinds.
const (
	KindEOF Kind = iota
	KindString
	KindNumber
	KindUndefined
	KindFalse
	KindTrue
	KindIdentifier
	KindSymbol
	KindKeyword
	KindSQLKeyword
)

// Tag returns the syntax tree tag used for tokens of this kind.
func (k Kind) Tag() string {
	switch k {
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindUndefined:
		return "Undefined"
	case KindFalse, KindTrue:
		return "Boolean"
	case KindIdentifier:
		return "Identifier"
	case KindSymbol:
		return "Symbol"
	case KindKeyword:
		return "Keyword"
	case KindSQLKeyword:
		return "SqlKeyword"
	case KindEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Token is one lexical token.
type Token struct {
	Kind Kind

	// Lexeme is the token text. For strings it excludes the quotes; for
	// escaped identifiers it excludes the leading backslash.
	Lexeme string

	// Span covers the full token in the source, quotes included.
	Span ast.Span

	// Dollar is set on identifiers that start with '$'.
	Dollar bool
}

// singleSymbols are symbols that never combine with a following character.
//
//nolint:gochecknoglobals // Read-only lookup table.
var singleSymbols = map[byte]bool{
	'(': true, ')': true, '{': true, '}': true, '[': true, ']': true,
	',': true, '.': true, '-': true, '+': true, ';': true, '*': true,
}

// genericKeywords are the case-sensitive script keywords and literals.
//
//nolint:gochecknoglobals // Read-only lookup table.
var genericKeywords = map[string]Kind{
	"class":     KindKeyword,
	"else":      KindKeyword,
	"for":       KindKeyword,
	"function":  KindKeyword,
	"if":        KindKeyword,
	"break":     KindKeyword,
	"continue":  KindKeyword,
	"return":    KindKeyword,
	"super":     KindKeyword,
	"this":      KindKeyword,
	"var":       KindKeyword,
	"while":     KindKeyword,
	"loop":      KindKeyword,
	"undefined": KindUndefined,
	"false":     KindFalse,
	"true":      KindTrue,
}

// sqlKeywords are matched case-insensitively.
//
//nolint:gochecknoglobals // Read-only lookup table.
var sqlKeywords = map[string]bool{
	"ALL": true, "DISTINCT": true, "UNION": true, "INTERSECT": true, "EXCEPT": true,
	"BEGIN": true, "TRANSACTION": true, "ROLLBACK": true, "COMMIT": true,
	"WHERE": true, "HAVING": true, "ASC": true, "DESC": true, "ORDER": true, "BY": true,
	"AND": true, "OR": true, "EXPLAIN": true, "IS": true, "NOT": true, "LIKE": true,
	"IN": true, "BETWEEN": true, "OFFSET": true, "LIMIT": true,
	"JOIN": true, "INNER": true, "RIGHT": true, "LEFT": true, "ON": true,
	"CREATE": true, "INSERT": true, "UPDATE": true, "DELETE": true, "DROP": true,
	"INTO": true, "VALUES": true, "INDEX": true, "COLLECTION": true,
	"SELECT": true, "FROM": true, "AS": true,
	"CROSS": true, "DEFAULT": true, "GROUP": true, "KEY": true, "OF": true, "ONLY": true,
	"PRIMARY": true, "REFERENCES": true, "SET": true, "SYSTEM": true, "UNIQUE": true,
	"READ": true, "WRITE": true,
}

// keywordKind classifies a bare word. Unknown words are identifiers.
func keywordKind(word string) Kind {
	if kind, ok := genericKeywords[word]; ok {
		return kind
	}
	if sqlKeywords[strings.ToUpper(word)] {
		return KindSQLKeyword
	}
	return KindIdentifier
}
