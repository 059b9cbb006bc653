// Package model defines domain entities and data structures for the HackOps API.
//
// The model package contains all struct definitions for domain objects, request/response
// types, and error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Hackathon: A hackathon event with its team formation rules
//   - Participant: A registration for a hackathon, carrying a declared role
//   - Team: A formed team produced by an assignment run
//   - AssignmentReport: The outcome of the most recent assignment run
//   - TeamNotification: A queued/sent/failed per-member notification
//   - Certificate: A completion certificate with a verifiable serial
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Hackathon struct {
//	    ID   string `json:"id"`
//	    Name string `json:"name"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go and written by the
// handler layer for every error response.
package model
