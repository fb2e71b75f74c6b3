package hosts

import (
	"regexp"
	"strings"
)

// SwapMarker tags a managed line as a swap target.
const SwapMarker = "#SWAP"

var favoritePattern = regexp.MustCompile(`#FAV\[([a-zA-Z0-9]*)\]`)

// Tag is the classification of a single line.
type Tag int

const (
	TagUnmanaged Tag = iota
	TagRegionStart
	TagRegionEnd
	TagBlank
	TagSwap
	TagFavorite
	TagPlain

	// TagManaged is only used between the region scanner and Classify.
	TagManaged
)

var tagNames = map[Tag]string{
	TagUnmanaged:   "unmanaged",
	TagRegionStart: "region-start",
	TagRegionEnd:   "region-end",
	TagBlank:       "blank",
	TagSwap:        "swap",
	TagFavorite:    "favorite",
	TagPlain:       "plain",
	TagManaged:     "managed",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "unknown"
}

// Rewritable reports whether a policy may change lines with this tag.
func (t Tag) Rewritable() bool {
	return t == TagSwap || t == TagFavorite || t == TagPlain
}

// ClassifiedLine is a line plus everything derived from it.
type ClassifiedLine struct {
	Text      string
	Tag       Tag
	Favorite  string
	Commented bool
}

// Classify tags a line known to be inside the managed region.
// A favorite tag wins over a swap tag on the same line.
func Classify(line string) ClassifiedLine {
	cl := ClassifiedLine{Text: line, Commented: IsCommented(line)}
	if strings.TrimSpace(line) == "" {
		cl.Tag = TagBlank
		return cl
	}
	if m := favoritePattern.FindStringSubmatch(line); m != nil {
		cl.Tag = TagFavorite
		cl.Favorite = m[1]
		return cl
	}
	if strings.Contains(line, SwapMarker) {
		cl.Tag = TagSwap
		return cl
	}
	cl.Tag = TagPlain
	return cl
}

// IsCommented reports whether the first non-blank character is a '#'
// acting as a comment marker. A '#' that opens a tag marker does not
// count, so "#FAV[a] 10.0.0.1 a" is active and "##FAV[a] ..." is not.
func IsCommented(line string) bool {
	body := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(body, "#") {
		return false
	}
	return !startsWithTag(body)
}

func startsWithTag(s string) bool {
	if strings.HasPrefix(s, SwapMarker) {
		return true
	}
	loc := favoritePattern.FindStringIndex(s)
	return loc != nil && loc[0] == 0
}

// Comment suppresses a line by prefixing it with '#'.
func Comment(line string) string {
	return "#" + line
}

// Uncomment removes the comment marker, keeping any indentation.
func Uncomment(line string) string {
	if !IsCommented(line) {
		return line
	}
	i := strings.IndexByte(line, '#')
	return line[:i] + line[i+1:]
}
