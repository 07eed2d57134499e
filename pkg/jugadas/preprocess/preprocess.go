// Package preprocess normalizes raw ticket text into the canonical form
// the Block Segmenter and Bet Recognizer Dispatcher expect. Following the
// teacher-adjacent RefineryV1Spanish pattern in the retrieval pack, the
// work is a named, ordered []Step pipeline over a Config, so each of the
// eight normalization steps is independently testable and swappable.
package preprocess

import (
	"regexp"
	"strings"

	"github.com/jugadas/parser/pkg/jugadas/expand"
	"github.com/jugadas/parser/pkg/jugadas/patterns"
)

// Config carries the subset of ParserConfig the preprocessor consults.
// Kept as its own small struct (this package does not import model) and
// constructed by callers from model.ParserConfig.
type Config struct {
	AutoExpand       bool
	DecimalSeparator string
}

// Step is one pure text-to-text transformation.
type Step func(string, Config) string

// Result is the preprocessor's output: the canonicalized text plus the
// expansion notes recorded during step 6 (pattern pre-expansion).
type Result struct {
	Text    string
	Notes   []expand.Note
}

var pipeline = []Step{
	normalizeLineEndings,
	normalizeWhitespace,
	normalizeOperatorSpacing,
	normalizeConfusables,
	foldCase,
	// step 6 (pattern pre-expansion) runs out-of-band below since it needs
	// to return notes, not just text.
	normalizeMonetary,
	finalCleanup,
}

// Process runs the full 8-step pipeline and returns the canonicalized text
// along with any pattern-expansion notes recorded along the way. Process
// is idempotent: Process(Process(x).Text, cfg) == Process(x, cfg) for the
// same cfg.
func Process(text string, cfg Config) Result {
	var notes []expand.Note

	for i, step := range pipeline {
		text = step(text, cfg)
		if i == 4 && cfg.AutoExpand { // after foldCase, before monetary normalization
			text, notes = expand.ExpandText(text)
		}
	}

	return Result{Text: text, Notes: notes}
}

var reCRLF = regexp.MustCompile(`\r\n?`)
var reMultiNewline = regexp.MustCompile(`\n{3,}`)

// Step 1: line-ending normalization.
func normalizeLineEndings(text string, _ Config) string {
	text = reCRLF.ReplaceAllString(text, "\n")
	return reMultiNewline.ReplaceAllString(text, "\n\n")
}

var reSpaceRun = regexp.MustCompile(`[ \t\x{00A0}\x{2009}]+`)

// Step 2: whitespace normalization.
func normalizeWhitespace(text string, _ Config) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", " ")
		line = reSpaceRun.ReplaceAllString(line, " ")
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

var reOperatorSpacing = regexp.MustCompile(`\s*([*x×\-+.])\s*`)

// Step 3: operator spacing — strip whitespace around * x × - + ., and
// normalize × to x.
func normalizeOperatorSpacing(text string, _ Config) string {
	text = reOperatorSpacing.ReplaceAllString(text, "$1")
	return strings.ReplaceAll(text, "×", "x")
}

var confusableReplacer = strings.NewReplacer(
	"o", "0", "O", "0", "ø", "0", "Ø", "0", "ο", "0", "Ο", "0",
	"l", "1", "I", "1", "|", "1",
)

var quoteStripper = strings.NewReplacer("'", "", "\"", "", "`", "", "´", "")

var (
	reToken            = regexp.MustCompile(`\S+`)
	reConfusableNumber = regexp.MustCompile(`^[0-9oOøØοΟlI|]*[0-9][0-9oOøØοΟlI|]*$`)
)

// Step 4: confusable normalization — quote marks are stripped everywhere;
// o/O/ø/Ø/ο/Ο fold to 0 and l/I/| fold to 1 only inside tokens made of
// digits and those characters (e.g. "1o" -> "10"). Words such as "con",
// "total" or a player's name keep their letters.
func normalizeConfusables(text string, _ Config) string {
	text = quoteStripper.Replace(text)
	return reToken.ReplaceAllStringFunc(text, func(tok string) string {
		if reConfusableNumber.MatchString(tok) {
			return confusableReplacer.Replace(tok)
		}
		return tok
	})
}

// Step 5: case folding — lowercase every line except the first, if that
// first line passes the name-line heuristic at the preprocessor's 0.7
// ratio (preserving proper-noun casing for display).
func foldCase(text string, _ Config) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == 0 && patterns.IsNameLine(line, 0.7) {
			continue
		}
		lines[i] = strings.ToLower(line)
	}
	return strings.Join(lines, "\n")
}

var (
	reDecimalComma = regexp.MustCompile(`(\d),(\d)`)
	reConDigit     = regexp.MustCompile(`(?i)\bcon(\d)`)
	reYDigit       = regexp.MustCompile(`(\d)y(\d)`)
	reCurrency     = regexp.MustCompile(`[$€£]`)
	reTrailingUnit = regexp.MustCompile(`(?i)(\d)\s*(pesos|bss?|bs)\b`)
)

// Step 7: monetary normalization.
func normalizeMonetary(text string, cfg Config) string {
	sep := cfg.DecimalSeparator
	if sep == "" {
		sep = "."
	}
	text = reDecimalComma.ReplaceAllString(text, "$1"+sep+"$2")
	text = reConDigit.ReplaceAllString(text, "con $1")
	text = reYDigit.ReplaceAllString(text, "$1 y $2")
	text = reCurrency.ReplaceAllString(text, "")
	text = reTrailingUnit.ReplaceAllString(text, "$1")
	return text
}

// Step 8 allow-list: digits, letters (including accented), whitespace,
// and the punctuation/keyword-letter set a bet line or name line can
// legitimately contain. This is deliberately conservative — see
// DESIGN.md's resolution of the open question on this exact filter.
var reFinalCleanup = regexp.MustCompile(`[^\p{L}\p{N}\s.,\-*xconypdealtprv]`)

// Step 8: final cleanup.
func finalCleanup(text string, _ Config) string {
	text = reFinalCleanup.ReplaceAllString(text, "")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// MaxExpansionFactor reports the configured cap used by step 6 (pattern
// pre-expansion), exposed for callers that want to reason about the
// O(input × max_expansion_factor) bound on processed output length.
func MaxExpansionFactor() int {
	return expand.DefaultCap
}
