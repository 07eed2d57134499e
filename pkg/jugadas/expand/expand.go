// Package expand implements the domain shorthand expansions: Volteo,
// Rango, Decena, Terminal, ParesRelativos, CentenasTodas, Repeticion. Each
// function is a pure value-mode transformation: given parsed arguments,
// it returns the explicit number list the shorthand stands for. Text-mode
// (rewriting matches in place within a string) is layered on top in
// text.go, used by the preprocessor for callers that want flattened text
// without the bet recognizer's pattern-type attribution.
package expand

import (
	"fmt"
	"strconv"

	"github.com/jugadas/parser/pkg/jugadas/jerr"
)

// DefaultCap bounds the number of values a Rango, CentenasTodas or
// Repeticion token may expand into, guarding against a pathological token
// (e.g. a huge range) blowing up the output. ParesRelativos has its own
// cap of 100 and does not consult DefaultCap.
const DefaultCap = 1000

// pad2 renders n as a zero-padded 2-digit string, wrapping mod 100.
func pad2(n int) string {
	n = ((n % 100) + 100) % 100
	return fmt.Sprintf("%02d", n)
}

// pad3 renders n as a zero-padded 3-digit string, wrapping mod 1000.
func pad3(n int) string {
	n = ((n % 1000) + 1000) % 1000
	return fmt.Sprintf("%03d", n)
}

func parseTwoDigit(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func reverseDigits(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// Volteo returns [NN_padded, reverse(NN_padded)].
func Volteo(token string) ([]string, error) {
	n, err := parseTwoDigit(token)
	if err != nil {
		return nil, &jerr.ExpansionError{Token: token, Reason: "non-numeric volteo base"}
	}
	padded := pad2(n)
	return []string{padded, reverseDigits(padded)}, nil
}

// Rango returns [A, A+1, ..., B] as 2-digit padded strings, swapping A and
// B first if A > B. Fails if either bound is non-numeric.
func Rango(aTok, bTok string) ([]string, error) {
	a, errA := parseTwoDigit(aTok)
	b, errB := parseTwoDigit(bTok)
	if errA != nil || errB != nil {
		return nil, &jerr.ExpansionError{Token: aTok + " al " + bTok, Reason: "non-numeric range bound"}
	}
	if a > b {
		a, b = b, a
	}
	count := b - a + 1
	if count > DefaultCap {
		return nil, &jerr.ExpansionError{Token: aTok + " al " + bTok, Reason: "range exceeds expansion cap"}
	}
	out := make([]string, 0, count)
	for i := a; i <= b; i++ {
		out = append(out, pad2(i))
	}
	return out, nil
}

// Decena returns the ten numbers ending in digit X: 0X, 1X, ..., 9X.
func Decena(xTok string) ([]string, error) {
	x, err := parseTwoDigit(xTok)
	if err != nil {
		return nil, &jerr.ExpansionError{Token: xTok, Reason: "non-numeric decena digit"}
	}
	digit := ((x % 10) + 10) % 10
	out := make([]string, 0, 10)
	for d := 0; d < 10; d++ {
		out = append(out, pad2(d*10+digit))
	}
	return out, nil
}

// Terminal returns the ten numbers starting with digit X: X0, X1, ..., X9.
func Terminal(xTok string) ([]string, error) {
	x, err := parseTwoDigit(xTok)
	if err != nil {
		return nil, &jerr.ExpansionError{Token: xTok, Reason: "non-numeric terminal digit"}
	}
	digit := ((x % 10) + 10) % 10
	out := make([]string, 0, 10)
	for u := 0; u < 10; u++ {
		out = append(out, pad2(digit*10+u))
	}
	return out, nil
}

// ParesRelativos returns NN_padded + i_padded2 for i in 1..min(K,100), as
// 4-digit strings. The number extractor downstream is responsible for
// splitting each into two 2-digit canonical numbers (see DESIGN.md's
// resolution of the ambiguity this construct raises).
func ParesRelativos(nnTok string, k int) ([]string, error) {
	nn, err := parseTwoDigit(nnTok)
	if err != nil {
		return nil, &jerr.ExpansionError{Token: nnTok, Reason: "non-numeric pares-relativos base"}
	}
	if k > 100 {
		k = 100
	}
	if k < 1 {
		return nil, &jerr.ExpansionError{Token: nnTok, Reason: "pares-relativos count must be >= 1"}
	}
	base := pad2(nn)
	out := make([]string, 0, k)
	for i := 1; i <= k; i++ {
		out = append(out, base+pad2(i))
	}
	return out, nil
}

// CentenasTodas expands each 2-digit number into the ten 3-digit strings
// sharing that suffix: 0NN, 1NN, ..., 9NN.
func CentenasTodas(numbers []string) ([]string, error) {
	if len(numbers)*10 > DefaultCap {
		return nil, &jerr.ExpansionError{Token: "centenas todas", Reason: "expansion exceeds cap"}
	}
	out := make([]string, 0, len(numbers)*10)
	for _, tok := range numbers {
		nn, err := parseTwoDigit(tok)
		if err != nil {
			return nil, &jerr.ExpansionError{Token: tok, Reason: "non-numeric centenas-todas base"}
		}
		suffix := pad2(nn)
		for c := 0; c < 10; c++ {
			out = append(out, pad3(c*100+atoiSafe(suffix)))
		}
	}
	return out, nil
}

func atoiSafe(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// Repeticion emits NN repeated K times.
func Repeticion(k int, nnTok string) ([]string, error) {
	if k < 1 {
		return nil, &jerr.ExpansionError{Token: nnTok, Reason: "repeticion count must be >= 1"}
	}
	if k > DefaultCap {
		return nil, &jerr.ExpansionError{Token: nnTok, Reason: "repeticion exceeds expansion cap"}
	}
	nn, err := parseTwoDigit(nnTok)
	if err != nil {
		return nil, &jerr.ExpansionError{Token: nnTok, Reason: "non-numeric repeticion base"}
	}
	padded := pad2(nn)
	out := make([]string, k)
	for i := range out {
		out[i] = padded
	}
	return out, nil
}

// SplitFourDigit splits a 4-digit canonical string into two 2-digit
// canonical numbers. A 4-digit literal in the input is always split into
// two 2-digit numbers at extraction time; canonical numbers in a
// DetalleApuesta are never 4 digits long.
func SplitFourDigit(s string) (string, string, bool) {
	if len(s) != 4 {
		return "", "", false
	}
	return s[:2], s[2:], true
}
