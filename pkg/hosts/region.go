package hosts

import "strings"

// Region sentinels. Both are matched anywhere in a line.
const (
	RegionStartSentinel = "#MANAGED"
	RegionEndSentinel   = "#/MANAGED"
)

// RegionState says whether the scanner is inside the managed region.
type RegionState int

const (
	Unmanaged RegionState = iota
	Managed
)

func (s RegionState) String() string {
	if s == Managed {
		return "managed"
	}
	return "unmanaged"
}

// step advances the region state over one line. The end sentinel is
// checked first, so a line carrying both sentinels closes the region.
func (s RegionState) step(line string) (RegionState, Tag) {
	switch {
	case strings.Contains(line, RegionEndSentinel):
		return Unmanaged, TagRegionEnd
	case strings.Contains(line, RegionStartSentinel):
		return Managed, TagRegionStart
	case s == Managed:
		return Managed, TagManaged
	default:
		return Unmanaged, TagUnmanaged
	}
}

// Scan classifies every line of doc in a single left-to-right pass.
// Lines outside the managed region are tagged TagUnmanaged and not
// inspected further.
func Scan(doc *Document) []ClassifiedLine {
	out := make([]ClassifiedLine, len(doc.Lines))
	state := Unmanaged
	for i, line := range doc.Lines {
		var tag Tag
		state, tag = state.step(line)
		if tag == TagManaged {
			out[i] = Classify(line)
			continue
		}
		out[i] = ClassifiedLine{Text: line, Tag: tag}
	}
	return out
}
