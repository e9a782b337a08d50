// Package detection flags manipulative marketing phrasings ("dark patterns")
// in recognized screen text.
//
// Three categories are checked, each with one case-insensitive alternation:
//
//   - FOMO: fear of missing out ("ends soon", "high demand", ...)
//   - False Scarcity: implied limited availability ("only 3 left", ...)
//   - False Urgency: implied closing time window ("hurry up", ...)
//
// # Matching
//
// Matching is substring based, not whole-word. Every non-overlapping match is
// collected in scan order using leftmost-first alternation, so duplicates are
// kept. Categories are independent: a phrase can be reported under more than
// one category when the phrase sets overlap (for example "limited time only"
// under FOMO and "limited time" under False Urgency).
//
// The phrase table is fixed at compile time.
package detection
