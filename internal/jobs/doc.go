// Package jobs contains background workers for HackOps.
//
// Workers follow a common shape: Start launches a goroutine driven by a
// ticker, Stop closes a channel and waits for it to drain, and RunOnce
// exposes a single pass for tests and manual triggers.
package jobs
