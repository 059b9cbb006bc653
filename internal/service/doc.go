// Package service implements HackOps business logic.
//
// Services own validation and orchestration and talk to storage through
// narrow repository interfaces declared in this package, so unit tests can
// substitute mocks without a database. All sentinel errors live in
// errors.go; handlers map them onto HTTP problem responses.
//
// The assignment flow is split in two: TeamService runs the pure engine in
// internal/assign and persists its output, and Dispatcher drains the
// notification outbox in rate-limited batches.
package service
