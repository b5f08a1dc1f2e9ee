package parser

import (
	"regexp"
	"strings"
)

// Text normalization for statute bodies. Inputs are typically copy-pasted
// from PDFs, which breaks lines mid-sentence and mixes half-width and
// full-width punctuation.

// halfToFull maps half-width punctuation to the full-width forms used in
// Chinese legal text.
var halfToFull = map[string]string{
	",": "，",
	".": "。",
	";": "；",
	":": "：",
	"?": "？",
	"!": "！",
	"(": "（",
	")": "）",
	"[": "［",
	"]": "］",
	"<": "《",
	">": "》",
}

var (
	// 数字编号 "1。 " restored to "1. " after blanket replacement
	numberedDotRe = regexp.MustCompile(`(\d+)。(\s)`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	// enumeration item marker like （一） or (2)
	enumItemRe = regexp.MustCompile(`^[（(][一二三四五六七八九十百千万零0-9]+[）)]`)
	// trailing punctuation that terminates a statement
	terminalPunctRe = regexp.MustCompile(`[。，；：！？、.;:!?]$`)
)

// NormalizePunctuation converts half-width punctuation to full-width and
// collapses stray whitespace inside the text.
func NormalizePunctuation(text string) string {
	if text == "" {
		return text
	}

	for half, full := range halfToFull {
		text = strings.ReplaceAll(text, half, full)
	}
	text = numberedDotRe.ReplaceAllString(text, "$1. $2")

	// CJK text carries no meaningful inner spaces; drop them per line.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = whitespaceRe.ReplaceAllString(strings.TrimSpace(line), "")
	}
	return strings.Join(lines, "\n")
}

// RepairLineBreaks merges lines that were split mid-sentence by PDF
// copy-paste, keeping structural markers and enumeration items on their
// own lines.
func RepairLineBreaks(text string) string {
	if text == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	var fixed []string

	i := 0
	for i < len(lines) {
		current := strings.TrimSpace(lines[i])
		if current == "" {
			i++
			continue
		}

		for i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next == "" || !shouldMergeLines(current, next) {
				break
			}
			current += next
			i++
		}

		fixed = append(fixed, current)
		i++
	}

	return strings.Join(fixed, "\n")
}

// shouldMergeLines decides whether next is a continuation of current.
func shouldMergeLines(current, next string) bool {
	// Sentence already terminated
	if strings.HasSuffix(current, "。") || strings.HasSuffix(current, "；") ||
		strings.HasSuffix(current, "：") || strings.HasSuffix(current, "！") ||
		strings.HasSuffix(current, "？") || strings.HasSuffix(current, ".") ||
		strings.HasSuffix(current, ";") || strings.HasSuffix(current, ":") {
		return false
	}

	// Next line opens a new structural unit
	if strings.HasPrefix(next, "第") || strings.HasPrefix(next, "（") ||
		strings.HasPrefix(next, "(") || enumItemRe.MatchString(next) {
		return false
	}

	// Dangling comma or enumeration separator
	if strings.HasSuffix(current, "，") || strings.HasSuffix(current, "、") ||
		strings.HasSuffix(current, ",") {
		return true
	}

	// No terminal punctuation at all: broken mid-sentence
	return !terminalPunctRe.MatchString(current)
}

// CleanBody normalizes one clause body: repairs line breaks, normalizes
// punctuation, and keeps enumeration items on separate lines.
func CleanBody(text string) string {
	if text == "" {
		return text
	}

	text = RepairLineBreaks(text)
	text = NormalizePunctuation(text)

	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(out) > 0 && !enumItemRe.MatchString(line) && !enumItemRe.MatchString(out[len(out)-1]) &&
			!terminalPunctRe.MatchString(out[len(out)-1]) {
			out[len(out)-1] += line
			continue
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
