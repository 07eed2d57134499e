// Package segment implements the Block Segmenter: partitioning
// preprocessed text into per-player blocks, bounded by max_jugadores.
// Mirrors the staged-pipeline shape of the teacher's ingest.Pipeline.Process
// (classify -> group -> validate), just applied to lines instead of tokens.
package segment

import (
	"strings"

	"github.com/jugadas/parser/pkg/jugadas/jerr"
	"github.com/jugadas/parser/pkg/jugadas/model"
	"github.com/jugadas/parser/pkg/jugadas/patterns"
)

// nameLineRatio is the Block Segmenter's own threshold (0.6), distinct
// from the Preprocessor's 0.7 (which favors preserving casing over
// segmenting aggressively).
const nameLineRatio = 0.6

// classifiedLine pairs a raw line with its LineKind.
type classifiedLine struct {
	text string
	kind model.LineKind
}

func classify(lines []string) []classifiedLine {
	out := make([]classifiedLine, len(lines))
	for i, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			out[i] = classifiedLine{line, model.LineBlank}
		case patterns.IsTotalLine(line):
			out[i] = classifiedLine{line, model.LineTotal}
		case patterns.IsNameLine(line, nameLineRatio):
			out[i] = classifiedLine{line, model.LineName}
		default:
			out[i] = classifiedLine{line, model.LineBet}
		}
	}
	return out
}

// Segment partitions preprocessed text into blocks. A block begins at a
// name-line and continues until the next name-line or a blank-line
// separator following non-empty content; blocks with no content are
// dropped. If no name-line appears anywhere, all content forms a single
// block under the player "Desconocido". Returns a fatal *jerr.ParserError
// if the block count would exceed maxJugadores.
func Segment(text string, maxJugadores int) ([]model.BlockInfo, error) {
	rawLines := strings.Split(text, "\n")
	classified := classify(rawLines)

	hasName := false
	for _, c := range classified {
		if c.kind == model.LineName {
			hasName = true
			break
		}
	}

	var blocks []model.BlockInfo
	if !hasName {
		blocks = singleUnnamedBlock(classified)
	} else {
		blocks = groupByName(classified)
		if len(blocks) == 0 {
			// Every block dropped for lack of content (e.g. the input is
			// nothing but a lone name-line): the boundary case still
			// produces one empty Jugada rather than none.
			blocks = []model.BlockInfo{soleNameBlock(classified)}
		}
	}

	if maxJugadores > 0 && len(blocks) > maxJugadores {
		return nil, &jerr.ParserError{Context: "segment", Err: &jerr.ExpansionError{
			Token:  "block count",
			Reason: "number of players exceeds max_jugadores",
		}}
	}

	return blocks, nil
}

func singleUnnamedBlock(classified []classifiedLine) []model.BlockInfo {
	block := model.BlockInfo{PlayerName: "Desconocido", StartLine: 0}
	for i, c := range classified {
		if c.kind == model.LineBlank {
			continue
		}
		if c.kind == model.LineTotal {
			if amt, ok := parseTotal(c.text); ok {
				block.DeclaredTotal = &amt
			}
			continue
		}
		block.Lines = append(block.Lines, c.text)
		block.EndLine = i
	}
	if len(block.Lines) == 0 && block.DeclaredTotal == nil {
		return nil
	}
	return []model.BlockInfo{block}
}

// soleNameBlock returns a BlockInfo for the first name-line found, with
// no bet lines — the "input with only a name" boundary case.
func soleNameBlock(classified []classifiedLine) model.BlockInfo {
	for i, c := range classified {
		if c.kind == model.LineName {
			return model.BlockInfo{PlayerName: strings.TrimSpace(c.text), StartLine: i, EndLine: i}
		}
	}
	return model.BlockInfo{PlayerName: "Desconocido"}
}

func groupByName(classified []classifiedLine) []model.BlockInfo {
	var blocks []model.BlockInfo
	var current *model.BlockInfo
	blankRun := false

	flush := func() {
		if current != nil && (len(current.Lines) > 0 || current.DeclaredTotal != nil) {
			blocks = append(blocks, *current)
		}
		current = nil
	}

	for i, c := range classified {
		switch c.kind {
		case model.LineName:
			flush()
			current = &model.BlockInfo{PlayerName: strings.TrimSpace(c.text), StartLine: i, EndLine: i}
			blankRun = false
		case model.LineBlank:
			if current != nil && len(current.Lines) > 0 {
				blankRun = true
			}
		case model.LineTotal:
			if current == nil {
				current = &model.BlockInfo{PlayerName: "Desconocido", StartLine: i, EndLine: i}
			}
			if blankRun {
				flush()
				current = &model.BlockInfo{PlayerName: "Desconocido", StartLine: i, EndLine: i}
				blankRun = false
			}
			if amt, ok := parseTotal(c.text); ok {
				current.DeclaredTotal = &amt
			}
			current.EndLine = i
		default: // bet line
			if current == nil {
				current = &model.BlockInfo{PlayerName: "Desconocido", StartLine: i, EndLine: i}
			}
			if blankRun {
				flush()
				current = &model.BlockInfo{PlayerName: "Desconocido", StartLine: i, EndLine: i}
				blankRun = false
			}
			current.Lines = append(current.Lines, c.text)
			current.EndLine = i
		}
	}
	flush()
	return blocks
}
