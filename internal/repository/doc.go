// Package repository implements SurrealDB persistence for HackOps.
//
// Each repository wraps the database.Database interface and translates
// between SurrealDB's loosely typed results and the model types. Multi
// record writes that must land together (team assignments, notification
// batches) go through database.AtomicBatch.
//
// Repositories return (nil, nil) for lookups that find nothing; callers
// decide whether a miss is an error.
package repository
