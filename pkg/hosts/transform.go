package hosts

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/hostboi/pkg/errors"
	"github.com/arthur-debert/hostboi/pkg/types"
)

var dottedQuad = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)

// Policy maps a classified managed line to its output text. It is only
// called for lines whose tag is Rewritable.
type Policy func(ClassifiedLine) string

// Rewrite applies policy to the managed lines of doc and returns the new
// document together with the lines that changed. doc is left untouched.
func Rewrite(doc *Document, policy Policy) (*Document, []types.LineChange) {
	out := doc.Clone()
	var changes []types.LineChange
	for i, cl := range Scan(doc) {
		if !cl.Tag.Rewritable() {
			continue
		}
		next := policy(cl)
		if next == cl.Text {
			continue
		}
		out.Lines[i] = next
		changes = append(changes, types.LineChange{Line: i + 1, Before: cl.Text, After: next})
	}
	return out, changes
}

// suppress comments out a line that is still active.
func suppress(cl ClassifiedLine) string {
	if cl.Commented {
		return cl.Text
	}
	return Comment(cl.Text)
}

// SwapPolicy activates every swap-tagged line, pointing its address at
// box, and suppresses the rest of the managed region.
func SwapPolicy(box int) (Policy, error) {
	if box < 1 {
		return nil, errors.Newf(errors.ErrInvalidArgument, "box number must be 1 or above, got %d", box)
	}
	octet := strconv.Itoa(box)
	return func(cl ClassifiedLine) string {
		if cl.Tag != TagSwap {
			return suppress(cl)
		}
		return swapAddress(cl, octet)
	}, nil
}

// swapAddress rewrites the third octet of the line's leading address.
// Lines whose first token is not a dotted quad are returned unchanged.
func swapAddress(cl ClassifiedLine, octet string) string {
	body := cl.Text
	if cl.Commented {
		body = Uncomment(body)
	}
	fields := strings.Fields(body)
	if len(fields) == 0 || !dottedQuad.MatchString(fields[0]) {
		return cl.Text
	}
	quad := strings.Split(fields[0], ".")
	quad[2] = octet
	fields[0] = strings.Join(quad, ".")
	return strings.Join(fields, " ")
}

// FavoritePolicy activates the lines tagged with the favorite name and
// suppresses every other managed line. Names compare case-sensitively.
func FavoritePolicy(name string) Policy {
	return func(cl ClassifiedLine) string {
		if cl.Tag != TagFavorite {
			return suppress(cl)
		}
		switch {
		case cl.Favorite == name && cl.Commented:
			return Uncomment(cl.Text)
		case cl.Favorite != name && !cl.Commented:
			return Comment(cl.Text)
		default:
			return cl.Text
		}
	}
}
