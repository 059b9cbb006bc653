// Package assign implements constrained team formation for a hackathon.
//
// The engine partitions a pool of approved participants into teams according
// to a RuleSet: a target team size range plus ordered quota rules that cap
// how many participants with a given role attribute may land in one team.
//
// The engine is a pure computation: it performs no I/O, never mutates its
// inputs, and keeps all bookkeeping local to a single Invoke call, so
// independent invocations may run concurrently. For identical input (same
// pool order, same rules) the output is byte-identical.
//
// A run proceeds through four stages:
//
//  1. Planning: derive the team count from the pool and the quota rules
//  2. Quota pass: place quota-governed participants round-robin
//  3. Remainder pass: balance everyone else across teams round-robin
//  4. Validation: prune or flag undersized teams and renumber survivors
//
// Only planning and rule-set validation can fail; everything after that is
// best effort and reported through Result.Unassigned and Result.Warnings.
package assign
