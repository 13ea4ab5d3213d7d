package gazetteer

import (
	"regexp"
	"strings"
)

// Norm strips trailing annotations from a title and turns commas and colons
// into dashes: "A: B (Live) [HD]" becomes "A- B ".
func Norm(title string) string {
	for _, cut := range []string{"(", "[", "//"} {
		title, _, _ = strings.Cut(title, cut)
	}
	return strings.NewReplacer(",", "-", ":", "-").Replace(title)
}

// Split guesses artist and song fragments from a track title. The known
// artist is removed case-insensitively first. If a dash remains the left
// side is an artist candidate and the right side a song candidate.
// Otherwise the remainder is a song candidate unless it is the artist
// itself. Empty returns mean no candidate.
func Split(title, artist string) (artistName, songName string) {
	t := Norm(title)
	if a := strings.TrimSpace(artist); a != "" {
		t = regexp.MustCompile("(?i)"+regexp.QuoteMeta(a)).ReplaceAllString(t, "")
	}

	if left, right, ok := strings.Cut(t, "-"); ok {
		right, _, _ = strings.Cut(right, "-")
		return strings.TrimSpace(left), strings.TrimSpace(right)
	}
	if !strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(artist)) {
		return "", strings.TrimSpace(t)
	}
	return "", ""
}
