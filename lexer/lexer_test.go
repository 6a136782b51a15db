// SPDX-License-Identifier: MIT
package lexer

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/sirupsen/logrus"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty",
			input: "",
			want:  []Token{},
		},
		{
			name:  "flat mapping",
			input: "a: 1\nb: 2",
			want: []Token{
				Scalar("a"), Colon, Scalar("1"), Newline,
				Scalar("b"), Colon, Scalar("2"), Newline,
			},
		},
		{
			name:  "nested mapping",
			input: "a:\n  b: c",
			want: []Token{
				Scalar("a"), Colon, Newline,
				Indent, Scalar("b"), Colon, Scalar("c"), Newline,
				Dedent,
			},
		},
		{
			name:  "sequence",
			input: "- x\n- y",
			want:  []Token{Dash, Scalar("x"), Newline, Dash, Scalar("y"), Newline},
		},
		{
			name:  "tab is not indentation",
			input: "a:\n\tb: c",
			want: []Token{
				Scalar("a"), Colon, Newline,
				Scalar("b"), Colon, Scalar("c"), Newline,
			},
		},
		{
			name:  "blank & whitespace-only lines",
			input: "a\n\n  \nb",
			want: []Token{
				Scalar("a"), Newline,
				Newline,
				Indent, Newline,
				Dedent, Scalar("b"), Newline,
			},
		},
		{
			name:  "trailing line ending",
			input: "a\n",
			want:  []Token{Scalar("a"), Newline},
		},
		{
			name:  "carriage returns are trimmed",
			input: "a: 1\r\nb: 2\r\n",
			want: []Token{
				Scalar("a"), Colon, Scalar("1"), Newline,
				Scalar("b"), Colon, Scalar("2"), Newline,
			},
		},
		{
			name:  "split at the first colon",
			input: "at: 12:30\n12:30",
			want: []Token{
				Scalar("at"), Colon, Scalar("12:30"), Newline,
				Scalar("12"), Colon, Scalar("30"), Newline,
			},
		},
		{
			name:  "dash takes precedence over colon",
			input: "- a: b",
			want:  []Token{Dash, Scalar("a: b"), Newline},
		},
		{
			name:  "dash remainder is trimmed",
			input: "-   x  ",
			want:  []Token{Dash, Scalar("x"), Newline},
		},
		{
			name:  "lone dash is a scalar",
			input: "-",
			want:  []Token{Scalar("-"), Newline},
		},
		{
			name:  "empty key",
			input: ": v",
			want:  []Token{Scalar(""), Colon, Scalar("v"), Newline},
		},
		{
			name:  "multi-level dedent",
			input: "a:\n  b:\n    c: d\ne: f",
			want: []Token{
				Scalar("a"), Colon, Newline,
				Indent, Scalar("b"), Colon, Newline,
				Indent, Scalar("c"), Colon, Scalar("d"), Newline,
				Dedent, Dedent, Scalar("e"), Colon, Scalar("f"), Newline,
			},
		},
		{
			name:  "unterminated indentation is flushed",
			input: "a:\n  b:\n    c",
			want: []Token{
				Scalar("a"), Colon, Newline,
				Indent, Scalar("b"), Colon, Newline,
				Indent, Scalar("c"), Newline,
				Dedent, Dedent,
			},
		},
		{
			name:  "partial dedent keeps the outer block open",
			input: "a:\n    b\n  c",
			want: []Token{
				Scalar("a"), Colon, Newline,
				Indent, Scalar("b"), Newline,
				Scalar("c"), Newline,
				Dedent,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScan(t *testing.T) {
	want := []Item{
		{Token: Scalar("a"), Line: 1, Col: 1},
		{Token: Colon, Line: 1, Col: 2},
		{Token: Scalar("1"), Line: 1, Col: 4},
		{Token: Newline, Line: 1, Col: 5},
		{Token: Indent, Line: 2, Col: 1},
		{Token: Dash, Line: 2, Col: 3},
		{Token: Scalar("x"), Line: 2, Col: 5},
		{Token: Newline, Line: 2, Col: 6},
		{Token: Dedent, Line: 2, Col: 1},
	}

	got := Scan("a: 1\n  - x")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}

	if tokens := Tokens(got); !reflect.DeepEqual(tokens, Tokenize("a: 1\n  - x")) {
		t.Errorf("Tokens() = %v, want the Tokenize() output", tokens)
	}
}

func TestLexer_Items(t *testing.T) {
	logger := logrus.New()
	src := "root:\n  key: value\n  list:\n\n- item\n"

	l := New(WithLogger(logger), WithDebug(true), WithSource(strings.NewReader(src)))
	got, err := l.Items(context.Background())
	if err != nil {
		t.Fatalf("Lexer.Items() error = %v", err)
	}

	if want := Scan(src); !reflect.DeepEqual(got, want) {
		t.Errorf("Lexer.Items() = %v, want %v", got, want)
	}
}

func TestLexer_ItemsErrors(t *testing.T) {
	errRead := errors.New("read failure")

	t.Run("read error", func(t *testing.T) {
		l := New(WithSource(iotest.ErrReader(errRead)))
		if _, err := l.Items(context.Background()); !errors.Is(err, errRead) {
			t.Errorf("Lexer.Items() error = %v, want %v", err, errRead)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		l := New(WithSource(strings.NewReader("a: 1")))
		if _, err := l.Items(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("Lexer.Items() error = %v, want %v", err, context.Canceled)
		}
	})
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		token Token
		want  string
	}{
		{Scalar("v"), `Scalar("v")`},
		{Dash, "Dash"},
		{Dedent, "Dedent"},
		{Token{ID: 42}, "TokenID(42)"},
	}

	for _, tt := range tests {
		if got := tt.token.String(); got != tt.want {
			t.Errorf("Token.String() = %v, want %v", got, tt.want)
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	src := strings.Repeat("key: value\nlist:\n  - a\n  - b\nnested:\n  inner: x\n", 64)

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_ = Tokenize(src)
	}
}

func BenchmarkLexer_Lex(b *testing.B) {
	src := strings.Repeat("key: value\nlist:\n  - a\n  - b\n", 64)

	logger := logrus.New()
	ctx := context.Background()

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		b.StopTimer()
		l := New(WithLogger(logger), WithSource(strings.NewReader(src)))
		b.StartTimer()

		go l.Lex(ctx)

		for {
			if _, proceed := l.Item(); !proceed {
				break
			}
		}
	}
}
