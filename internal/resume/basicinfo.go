package resume

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`\S+@\S+`)

// phoneRes are tried in order; the first match wins.
var phoneRes = []*regexp.Regexp{
	regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\b\d{10}\b`),
	regexp.MustCompile(`\+\d{2}\s?\d{10}`),
}

var resumeWordRe = regexp.MustCompile(`(?i)\b(resume|cv|curriculum)\b`)

// ExtractBasicInfo pulls name, email and phone from the text. Email and phone
// are independent regex passes over the whole document; the name is the first
// of the top five lines that looks like a person's name and is not the email,
// phone or a "Resume"/"CV" title line.
func ExtractBasicInfo(text string) BasicInfo {
	var info BasicInfo

	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			info.Phone = strings.TrimSpace(m)
			break
		}
	}

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		if info.Email != "" && strings.Contains(line, info.Email) {
			continue
		}
		if info.Phone != "" && strings.Contains(line, info.Phone) {
			continue
		}
		if resumeWordRe.MatchString(line) {
			continue
		}
		if looksLikeName(line) {
			info.Name = line
			break
		}
	}
	return info
}

// looksLikeName accepts two-to-four alphabetic words (periods allowed, as in
// initials) or a single alphabetic word longer than two characters.
func looksLikeName(line string) bool {
	words := strings.Fields(line)
	switch {
	case len(words) >= 2 && len(words) <= 4:
		for _, w := range words {
			if !isAlpha(strings.ReplaceAll(w, ".", "")) {
				return false
			}
		}
		return true
	case len(words) == 1:
		return isAlpha(words[0]) && len(words[0]) > 2
	default:
		return false
	}
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
