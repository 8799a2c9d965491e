package contact

import (
	"fmt"
	"strings"
)

// spamKeywords mirrors the fixed list used for basic spam detection.
var spamKeywords = []string{
	"viagra", "cialis", "casino", "lottery", "winner", "congratulations",
	"click here", "free money", "make money fast", "work from home",
}

const (
	maxLinkMentions = 3
	maxCharRun      = 10
)

// classifySpam runs the fixed heuristic over the lowercased concatenation of
// name, subject and message. It returns whether the submission is spam and a
// human-readable reason. The result is advisory metadata, never a rejection.
func classifySpam(name, subject, message string) (bool, string) {
	content := strings.ToLower(name + " " + subject + " " + message)

	for _, keyword := range spamKeywords {
		if strings.Contains(content, keyword) {
			return true, fmt.Sprintf("contains spam keyword %q", keyword)
		}
	}

	if n := strings.Count(content, "http"); n > maxLinkMentions {
		return true, fmt.Sprintf("excessive links (%d)", n)
	}

	if run, ok := longestCharRun(content); ok {
		return true, fmt.Sprintf("repeated character run (%q)", run)
	}

	return false, ""
}

// longestCharRun reports the first run of more than maxCharRun identical
// consecutive characters, if any.
func longestCharRun(s string) (rune, bool) {
	var prev rune
	count := 0
	for _, r := range s {
		if r == prev {
			count++
			if count > maxCharRun {
				return r, true
			}
		} else {
			prev = r
			count = 1
		}
	}
	return 0, false
}
