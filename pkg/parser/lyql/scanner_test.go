package lyql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lyqlplay/pkg/ast"
)

type tok struct {
	kind   Kind
	lexeme string
}

func scanKinds(t *testing.T, src string) []tok {
	t.Helper()

	tokens, err := Scan(src)
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	require.Equal(t, KindEOF, tokens[len(tokens)-1].Kind)

	out := make([]tok, 0, len(tokens)-1)
	for _, token := range tokens[:len(tokens)-1] {
		out = append(out, tok{token.Kind, token.Lexeme})
	}
	return out
}

func TestScan_Select(t *testing.T) {
	t.Parallel()

	got := scanKinds(t, "SELECT * FROM users WHERE age >= 18;")
	assert.Equal(t, []tok{
		{KindSQLKeyword, "SELECT"},
		{KindSymbol, "*"},
		{KindSQLKeyword, "FROM"},
		{KindIdentifier, "users"},
		{KindSQLKeyword, "WHERE"},
		{KindIdentifier, "age"},
		{KindSymbol, ">="},
		{KindNumber, "18"},
		{KindSymbol, ";"},
	}, got)
}

func TestScan_Spans(t *testing.T) {
	t.Parallel()

	tokens, err := Scan(`var $x = "hi";`)
	require.NoError(t, err)

	spans := make([]ast.Span, 0, len(tokens))
	for _, token := range tokens {
		spans = append(spans, token.Span)
	}
	assert.Equal(t, []ast.Span{
		{Start: 0, End: 3},
		{Start: 4, End: 6},
		{Start: 7, End: 8},
		{Start: 9, End: 13},
		{Start: 13, End: 14},
		{Start: 14, End: 14},
	}, spans)
	assert.True(t, tokens[1].Dollar)
	assert.Equal(t, "hi", tokens[3].Lexeme)
}

func TestScan_Keywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		kind Kind
	}{
		{"function", KindKeyword},
		{"loop", KindKeyword},
		{"true", KindTrue},
		{"false", KindFalse},
		{"undefined", KindUndefined},
		{"select", KindSQLKeyword},
		{"Collection", KindSQLKeyword},
		{"True", KindIdentifier},
		{"users", KindIdentifier},
		{`\select`, KindIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			got := scanKinds(t, tt.src)
			require.Len(t, got, 1)
			assert.Equal(t, tt.kind, got[0].kind)
		})
	}
}

func TestScan_EscapedAndMemberIdentifiers(t *testing.T) {
	t.Parallel()

	got := scanKinds(t, `\from.select`)
	assert.Equal(t, []tok{
		{KindIdentifier, "from"},
		{KindSymbol, "."},
		{KindIdentifier, "select"},
	}, got)
}

func TestScan_Numbers(t *testing.T) {
	t.Parallel()

	got := scanKinds(t, "1 2.5 3e10 4.2E-3 5.")
	assert.Equal(t, []tok{
		{KindNumber, "1"},
		{KindNumber, "2.5"},
		{KindNumber, "3e10"},
		{KindNumber, "4.2E-3"},
		{KindNumber, "5"},
		{KindSymbol, "."},
	}, got)
}

func TestScan_Symbols(t *testing.T) {
	t.Parallel()

	got := scanKinds(t, ":: && || != == <= >= ! = < > : / ( ) { } [ ] , - +")
	lexemes := make([]string, 0, len(got))
	for _, token := range got {
		assert.Equal(t, KindSymbol, token.kind, token.lexeme)
		lexemes = append(lexemes, token.lexeme)
	}
	assert.Equal(t, []string{
		"::", "&&", "||", "!=", "==", "<=", ">=", "!", "=", "<", ">", ":", "/",
		"(", ")", "{", "}", "[", "]", ",", "-", "+",
	}, lexemes)
}

func TestScan_Comments(t *testing.T) {
	t.Parallel()

	got := scanKinds(t, "1 // trailing comment\n2")
	assert.Equal(t, []tok{{KindNumber, "1"}, {KindNumber, "2"}}, got)
}

func TestScan_Strings(t *testing.T) {
	t.Parallel()

	got := scanKinds(t, "\"double\" 'single' `back`")
	assert.Equal(t, []tok{
		{KindString, "double"},
		{KindString, "single"},
		{KindString, "back"},
	}, got)
}

func TestScan_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		kind ScanErrorKind
		span ast.Span
	}{
		{"unterminated string", `SELECT "abc`, UnterminatedString, ast.Span{Start: 7, End: 11}},
		{"malformed exponent", "1e+", MalformedNumber, ast.Span{Start: 0, End: 3}},
		{"unexpected character", "SELECT #", UnexpectedCharacter, ast.Span{Start: 7, End: 8}},
		{"lone ampersand", "a & b", UnexpectedCharacter, ast.Span{Start: 2, End: 3}},
		{"multibyte character", "a ü", UnexpectedCharacter, ast.Span{Start: 2, End: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Scan(tt.src)
			var scanErr *ScanError
			require.True(t, errors.As(err, &scanErr), "expected ScanError, got %v", err)
			assert.Equal(t, tt.kind, scanErr.Kind)
			assert.Equal(t, tt.span, scanErr.Span)
			assert.Contains(t, scanErr.Error(), tt.kind.String())
		})
	}
}

func TestScan_Empty(t *testing.T) {
	t.Parallel()

	tokens, err := Scan("")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindEOF, tokens[0].Kind)
}

func TestTokenizer_Parse(t *testing.T) {
	t.Parallel()

	root, err := NewTokenizer().Parse(context.Background(), "SELECT 'a', true;")
	require.NoError(t, err)

	assert.Equal(t, ProgramTag, root.Tag)
	assert.Equal(t, &ast.Span{Start: 0, End: 17}, root.Span)

	tags := make([]string, 0, len(root.Children))
	for _, child := range root.Children {
		require.NotNil(t, child.Span)
		assert.True(t, root.Span.Contains(*child.Span))
		tags = append(tags, child.Tag)
	}
	assert.Equal(t, []string{"SqlKeyword", "String", "Symbol", "Boolean", "Symbol"}, tags)
}

func TestTokenizer_ParseError(t *testing.T) {
	t.Parallel()

	_, err := NewTokenizer().Parse(context.Background(), `SELECT "`)
	var scanErr *ScanError
	assert.ErrorAs(t, err, &scanErr)
}

func TestTokenizer_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTokenizer().Parse(ctx, "SELECT 1")
	assert.ErrorIs(t, err, context.Canceled)
}
