package domain

import "sort"

// TimelineEntryType distinguishes the kinds of events in a car's history.
type TimelineEntryType string

const (
	TimelineEntryPolicy TimelineEntryType = "POLICY"
	TimelineEntryClaim  TimelineEntryType = "CLAIM"
)

// TimelineEntry is one event in a car's history. Exactly one of Policy and
// Claim is set, matching Type.
type TimelineEntry struct {
	Type   TimelineEntryType
	Policy *InsurancePolicy
	Claim  *Claim
}

// SortKey is the ISO date the entry is ordered by: the start date for a
// policy, the claim date for a claim.
func (e TimelineEntry) SortKey() string {
	switch e.Type {
	case TimelineEntryPolicy:
		return FormatDate(e.Policy.StartDate)
	case TimelineEntryClaim:
		return FormatDate(e.Claim.ClaimDate)
	}
	return ""
}

// MergeTimeline merges policies and claims into one ascending timeline.
// Entries with the same date keep their input order, with policies ahead of
// claims.
func MergeTimeline(policies []InsurancePolicy, claims []Claim) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(policies)+len(claims))
	for i := range policies {
		entries = append(entries, TimelineEntry{Type: TimelineEntryPolicy, Policy: &policies[i]})
	}
	for i := range claims {
		entries = append(entries, TimelineEntry{Type: TimelineEntryClaim, Claim: &claims[i]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortKey() < entries[j].SortKey()
	})
	return entries
}
