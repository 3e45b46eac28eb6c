package nanolisp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var macros map[rune]func(r io.RuneScanner) (Sexp, error)

func init() {
	macros = map[rune]func(r io.RuneScanner) (Sexp, error){
		'(': listReader,
		')': unmatchedDelimiterReader,
	}
}

func isWhitespace(ch rune) bool {
	return unicode.IsSpace(ch)
}

func isAlpha(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isMacro(ch rune) bool {
	_, ismacro := macros[ch]
	return ismacro
}

// Read reads one form from r. It returns io.EOF if only whitespace is left.
func Read(r io.RuneScanner) (Sexp, error) {
	ch, err := skipWhitespace(r)
	if err != nil {
		return nil, err
	}

	if macroFn, isMacro := macros[ch]; isMacro {
		return macroFn(r)
	}

	if isDigit(ch) {
		return readNumber(r, ch)
	}

	if ch == '+' || ch == '-' {
		ch2, _, err := r.ReadRune()
		if err == nil {
			r.UnreadRune()
			if isDigit(ch2) {
				return readNumber(r, ch)
			}
		}
		return nil, fmt.Errorf("%w: sign without digits", ErrSyntax)
	}

	if isAlpha(ch) {
		return readSymbol(r, ch)
	}

	return nil, fmt.Errorf("%w: unexpected character %q", ErrSyntax, ch)
}

// ReadSexp reads the first form of text along with the whitespace around it
// and returns the unread remainder.
func ReadSexp(text string) (string, Sexp, error) {
	r := strings.NewReader(text)
	s, err := Read(r)
	if err == io.EOF {
		return text, nil, fmt.Errorf("%w: no form in input", ErrSyntax)
	}
	if err != nil {
		return text, nil, err
	}
	if _, err := skipWhitespace(r); err == nil {
		r.UnreadRune()
	}
	return text[len(text)-r.Len():], s, nil
}

// ReadProgram reads every top-level form of text. The whole input must be
// well formed; nothing is returned on failure.
func ReadProgram(text string) ([]Sexp, error) {
	r := strings.NewReader(text)
	var forms []Sexp
	for {
		s, err := Read(r)
		if err == io.EOF {
			return forms, nil
		}
		if err != nil {
			return nil, err
		}
		forms = append(forms, s)
	}
}

func skipWhitespace(r io.RuneScanner) (rune, error) {
	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return 0, err
		}
		if !isWhitespace(ch) {
			return ch, nil
		}
	}
}

// readToken collects the rest of an atom. An atom must end at whitespace, a
// delimiter or the end of input; anything else is glued onto it and rejected
// by the caller.
func readToken(r io.RuneScanner, initch rune) string {
	var sb strings.Builder
	sb.WriteRune(initch)

	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return sb.String()
		}
		if isWhitespace(ch) || isMacro(ch) {
			r.UnreadRune()
			return sb.String()
		}
		sb.WriteRune(ch)
	}
}

func readNumber(r io.RuneScanner, initch rune) (Sexp, error) {
	token := readToken(r, initch)
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid number: %s", ErrSyntax, token)
	}
	return NumberAtom(n), nil
}

func readSymbol(r io.RuneScanner, initch rune) (Sexp, error) {
	token := readToken(r, initch)
	for _, ch := range token {
		if !isAlpha(ch) && !isDigit(ch) {
			return nil, fmt.Errorf("%w: invalid symbol: %s", ErrSyntax, token)
		}
	}
	return Sym(token), nil
}

func listReader(r io.RuneScanner) (Sexp, error) {
	l := SexpList{}
	for {
		ch, err := skipWhitespace(r)
		if err == io.EOF {
			return nil, ErrUnterminated
		}
		if err != nil {
			return nil, err
		}
		if ch == ')' {
			return l, nil
		}

		r.UnreadRune()
		item, err := Read(r)
		if err != nil {
			return nil, err
		}
		l = append(l, item)
	}
}

func unmatchedDelimiterReader(r io.RuneScanner) (Sexp, error) {
	return nil, fmt.Errorf("%w: unmatched delimiter", ErrSyntax)
}
