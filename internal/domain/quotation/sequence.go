package quotation

import (
	"regexp"
	"strconv"
	"strings"
)

// SequenceFloor is the minimum sequence value; no quotation identifier is
// expected to fall below it, so the first minted identifier on an empty
// store uses SequenceFloor + 1.
const SequenceFloor = 1505

// SequencePrefixes is the closed set of identifier prefixes that have been
// in use historically. New formats are added here; the scanning logic does
// not change.
var SequencePrefixes = []string{"KAPL", "KLMNRE", "TNMNRE"}

// A recognized identifier is a known prefix, an optional hyphen, then one or
// more digits (e.g. "KAPL-1600", "TNMNRE1700").
var sequencePattern = regexp.MustCompile("(?:" + strings.Join(SequencePrefixes, "|") + ")-?([0-9]+)")

// SequenceNumber extracts the numeric suffix from a quotation identifier.
// The second return value is false when the identifier matches no recognized
// prefix or carries no numeric suffix.
func SequenceNumber(id string) (int, bool) {
	m := sequencePattern.FindStringSubmatch(id)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Suffix too large for int; treat as unrecognized.
		return 0, false
	}
	return n, true
}

// NextSequence returns the sequence number to use for the next quotation:
// one greater than the largest numeric suffix found across the given
// quotations, and never less than SequenceFloor + 1. Identifiers that match
// no recognized pattern contribute nothing.
func NextSequence(quotations []Quotation) int {
	maxSeen := SequenceFloor
	for _, q := range quotations {
		if n, ok := SequenceNumber(q.ID); ok && n > maxSeen {
			maxSeen = n
		}
	}
	return maxSeen + 1
}
