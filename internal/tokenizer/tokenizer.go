package tokenizer

import (
	"unicode"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for a single request line.
// Two matchers cover every rune of the input:
// 1. Whitespace runs (separators, collapsed into one token)
// 2. Text (everything up to the next whitespace rune)
//
// The default whitespace skipper is not used because separators are
// reported as tokens; Fields drops them.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		WhitespaceMatcher(),
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates a request-line tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// Fields splits line on runs of whitespace and returns the non-empty
// text tokens in order. Leading and trailing whitespace produce no fields.
func Fields(line string) []string {
	tok := NewTokenizer()
	tok.Initialize(line)

	tokens, _ := tok.Tokenize()

	fields := make([]string, 0, 3)
	for _, t := range tokens {
		if t.Kind() == TokenText {
			fields = append(fields, t.ValueString())
		}
	}
	return fields
}

// WhitespaceMatcher matches a run of whitespace runes.
func WhitespaceMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || !unicode.IsSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenWhitespace, value)
	}
}

// TextMatcher matches any sequence of runes until whitespace or EOS.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || unicode.IsSpace(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenText, value)
	}
}
