package quiz

import (
	"fmt"
	"regexp"
	"strings"
)

// The provider is instructed to emit a fixed line format per question:
//
//	QUESTION: <text>
//	A) <option>  ... D) <option>
//	CORRECT: <letter>
//	EXPLANATION: <text>
//
// Parsing never fails the synthesis: each block parses to a blockResult,
// and malformed blocks are discarded by keeping only the ok results.

const questionMarker = "QUESTION:"

var (
	optionRe  = regexp.MustCompile(`^([A-D])[).:]\s*(\S.*)$`)
	correctRe = regexp.MustCompile(`^CORRECT:\s*([A-D])\b`)
	explainRe = regexp.MustCompile(`^EXPLANATION:\s*(\S.*)$`)
)

// blockResult is the outcome of parsing one question block. Exactly one of
// question/err is meaningful: err == nil tags the result as accepted.
type blockResult struct {
	question Question
	err      error
}

// parseBlocks splits the raw response on question markers and parses each
// block independently.
func parseBlocks(raw string) []blockResult {
	var blocks [][]string
	var current []string
	inBlock := false

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, questionMarker); ok {
			if inBlock {
				blocks = append(blocks, current)
			}
			inBlock = true
			current = []string{strings.TrimSpace(rest)}
			continue
		}
		if inBlock {
			current = append(current, line)
		}
	}
	if inBlock {
		blocks = append(blocks, current)
	}

	results := make([]blockResult, len(blocks))
	for i, lines := range blocks {
		results[i] = parseBlock(lines)
	}
	return results
}

// parseBlock parses the lines of one block. The first line is the text
// following the QUESTION: marker.
func parseBlock(lines []string) blockResult {
	fail := func(format string, args ...any) blockResult {
		return blockResult{err: fmt.Errorf(format, args...)}
	}

	text := ""
	options := map[string]string{}
	correct := -1
	explanation := ""

	for _, line := range lines {
		if line == "" {
			continue
		}
		if m := optionRe.FindStringSubmatch(line); m != nil {
			if _, dup := options[m[1]]; dup {
				return fail("duplicate option %s", m[1])
			}
			options[m[1]] = strings.TrimSpace(m[2])
			continue
		}
		if m := correctRe.FindStringSubmatch(line); m != nil {
			correct = int(m[1][0] - 'A')
			continue
		}
		if m := explainRe.FindStringSubmatch(line); m != nil {
			explanation = strings.TrimSpace(m[1])
			continue
		}
		if text == "" {
			text = line
		}
	}

	if text == "" {
		return fail("empty question text")
	}
	if len(options) != OptionCount {
		return fail("expected %d options, got %d", OptionCount, len(options))
	}
	if correct < 0 || correct >= OptionCount {
		return fail("missing or invalid CORRECT line")
	}
	if explanation == "" {
		return fail("missing explanation")
	}

	opts := make([]string, OptionCount)
	for letter, opt := range options {
		opts[int(letter[0]-'A')] = opt
	}

	return blockResult{question: Question{
		Text:        text,
		Options:     opts,
		Correct:     correct,
		Explanation: explanation,
	}}
}

// accepted keeps the questions of the ok results, in order.
func accepted(results []blockResult) []Question {
	var out []Question
	for _, r := range results {
		if r.err == nil {
			out = append(out, r.question)
		}
	}
	return out
}
