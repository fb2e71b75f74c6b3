package hosts

// Favorites lists every favorite name in doc once, in order of first
// appearance. The whole document is scanned, managed region or not,
// commented or not.
func Favorites(doc *Document) []string {
	seen := make(map[string]bool)
	names := []string{}
	for _, line := range doc.Lines {
		m := favoritePattern.FindStringSubmatch(line)
		if m == nil || seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}
