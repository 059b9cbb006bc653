// Package handler contains the HTTP layer for HackOps.
//
// Handlers decode requests, delegate to services, and write RFC 9457
// problem details for failures. Service errors are translated centrally
// by MapServiceError so status codes stay consistent across resources.
package handler
