// Package hosts implements the managed-region rewrite of a hosts file.
//
// Only lines between the #MANAGED and #/MANAGED sentinels are ever
// rewritten. Inside that region each line carries at most one tag:
//
//	10.0.7.20 build #SWAP       swap target, third octet follows the box number
//	10.0.1.1 api #FAV[DEV51]    selectable under the favorite DEV51
//	10.0.9.9 other              plain, suppressed by every operation
//
// A rewrite is a pure function of the document: Scan classifies every
// line, a Policy maps each classified managed line to its output text and
// Rewrite joins the results into a new Document. Reading and writing the
// file are separate steps (Load, Save) so callers can wrap them in a
// backup.
package hosts
