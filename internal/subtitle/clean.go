// Package subtitle turns raw WebVTT caption files into plain transcript
// text. Auto-generated captions repeat lines across overlapping cues, so
// cleaning deduplicates globally, not just between neighbours.
package subtitle

import (
	"regexp"
	"strings"
)

// tagRe matches inline markup tags: styling like <c>...</c> as well as
// word-level timing tags like <00:01:02.345>.
var tagRe = regexp.MustCompile(`<[^>]+>`)

// headerPrefixes mark lines that carry VTT metadata rather than dialogue.
var headerPrefixes = []string{"WEBVTT", "Kind:", "Language:", "NOTE"}

// Clean converts raw VTT content to a single line of deduplicated
// transcript text. Headers, timing lines, cue numbers, and markup tags
// are dropped; each distinct dialogue line is kept once, in order of
// first appearance. Any input, including empty, produces a result;
// emptiness is the caller's problem.
func Clean(raw string) string {
	seen := make(map[string]struct{})
	var kept []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isHeader(line) || strings.Contains(line, "-->") || isDigits(line) {
			continue
		}

		line = strings.TrimSpace(tagRe.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}

		seen[line] = struct{}{}
		kept = append(kept, line)
	}

	return strings.Join(kept, " ")
}

func isHeader(line string) bool {
	for _, p := range headerPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// isDigits reports whether the line is a bare cue sequence number.
func isDigits(line string) bool {
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
