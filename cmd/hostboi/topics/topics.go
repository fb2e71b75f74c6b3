// Package topics embeds the long-form help shown by 'hostboi help <topic>'.
package topics

import "embed"

// FS holds the markdown help topics.
//
//go:embed *.md
var FS embed.FS
