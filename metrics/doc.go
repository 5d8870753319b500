// Package metrics holds the learner's observability counters (spec §6):
// membership-query count, equivalence-query count, and learned location
// count. It is a plain value type the learning loop updates directly,
// grounded on the teacher's plain-struct counter pattern (dtw.Coord).
package metrics
