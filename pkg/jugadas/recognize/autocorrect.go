package recognize

import "regexp"

var (
	reHyphenBetweenDigits = regexp.MustCompile(`(\d)-(\d)`)
	rePesosTail           = regexp.MustCompile(`(?i)\s*pesos\s*$`)
	reYMedia              = regexp.MustCompile(`(?i)\by\s*media\b`)
	reParleColon          = regexp.MustCompile(`(?i)\bparle\s*:\s*`)
)

// newAutoCorrect builds priority-100's AutoCorrect recognizer: it always
// "claims" in the sense that it always runs, but it never produces
// details — it only rewrites the line for every recognizer that follows.
func newAutoCorrect() Recognizer {
	return Recognizer{
		Name:     "AutoCorrect",
		Priority: 100,
		CanClaim: func(string, *BlockContext) bool { return true },
		Process: func(line string, _ *BlockContext) (Outcome, error) {
			line = reHyphenBetweenDigits.ReplaceAllString(line, "$1 $2")
			line = rePesosTail.ReplaceAllString(line, "")
			line = reYMedia.ReplaceAllString(line, ".5")
			line = reParleColon.ReplaceAllString(line, "parle con ")
			return Outcome{RewrittenLine: line}, nil
		},
	}
}
