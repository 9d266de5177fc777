package zlox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := NewScanner([]byte(source)).Scan()
	require.NoError(t, err)
	return tokens
}

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanner_TokenTypes(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []TokenType
	}{
		{
			name:   "declaration",
			source: `var x = 1.5;`,
			expected: []TokenType{
				TokenVar, TokenIdentifier, TokenEqual, TokenNumber,
				TokenSemicolon, TokenEOF,
			},
		},
		{
			name:   "print with string",
			source: `print "hi";`,
			expected: []TokenType{
				TokenPrint, TokenString, TokenSemicolon, TokenEOF,
			},
		},
		{
			name:   "operators",
			source: `- + * / < > = ==`,
			expected: []TokenType{
				TokenMinus, TokenPlus, TokenStar, TokenSlash, TokenLess,
				TokenGreater, TokenEqual, TokenEqualEqual, TokenEOF,
			},
		},
		{
			name:   "braces and keywords",
			source: `{ true false nil }`,
			expected: []TokenType{
				TokenLeftBrace, TokenTrue, TokenFalse, TokenNil,
				TokenRightBrace, TokenEOF,
			},
		},
		{
			name:     "unknown byte",
			source:   `@`,
			expected: []TokenType{TokenUnknown, TokenEOF},
		},
		{
			name:     "line comment skipped",
			source:   "// nothing to see\n1;",
			expected: []TokenType{TokenNumber, TokenSemicolon, TokenEOF},
		},
		{
			name:     "empty input",
			source:   "",
			expected: []TokenType{TokenEOF},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, tokenTypes(scan(t, test.source)))
		})
	}
}

func TestScanner_Lexemes(t *testing.T) {
	t.Run("string span keeps its quotes", func(t *testing.T) {
		source := `print "foo";`
		tokens := scan(t, source)
		assert.Equal(t, `"foo"`, tokens[1].Lexeme([]byte(source)))
	})

	t.Run("number with fraction", func(t *testing.T) {
		source := `12.75;`
		tokens := scan(t, source)
		assert.Equal(t, "12.75", tokens[0].Lexeme([]byte(source)))
	})

	t.Run("trailing dot stays a separate token", func(t *testing.T) {
		source := `12.`
		tokens := scan(t, source)
		assert.Equal(t, []TokenType{TokenNumber, TokenUnknown, TokenEOF}, tokenTypes(tokens))
		assert.Equal(t, "12", tokens[0].Lexeme([]byte(source)))
	})
}

func TestScanner_Lines(t *testing.T) {
	tokens := scan(t, "1;\n2;\n\n3;")
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[2].Line)
	assert.Equal(t, 4, tokens[4].Line)
}

func TestScanner_UnterminatedString(t *testing.T) {
	_, err := NewScanner([]byte(`print "oops`)).Scan()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminatedString)
}
