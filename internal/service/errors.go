package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Hackathon Errors =====
var (
	ErrHackathonNotFound     = errors.New("hackathon not found")
	ErrHackathonNameRequired = errors.New("hackathon name is required")
	ErrHackathonNameTooLong  = errors.New("hackathon name exceeds maximum length")
	ErrHackathonDescTooLong  = errors.New("hackathon description exceeds maximum length")
	ErrInvalidDateRange      = errors.New("end date must be after start date")
	ErrInvalidStatus         = errors.New("invalid hackathon status")
)

// ===== Rule Set Errors =====
var (
	ErrInvalidRuleSet    = errors.New("invalid team formation rule set")
	ErrTooManyQuotaRules = errors.New("maximum quota rules exceeded")
)

// ===== Participant Errors =====
var (
	ErrParticipantNotFound     = errors.New("participant not found")
	ErrParticipantNameRequired = errors.New("participant name is required")
	ErrInvalidEmail            = errors.New("invalid email format")
	ErrEmailAlreadyRegistered  = errors.New("email already registered for this hackathon")
	ErrRegistrationClosed      = errors.New("registration is not open for this hackathon")
	ErrParticipantLimitReached = errors.New("hackathon has reached maximum participant limit")
	ErrInvalidReviewStatus     = errors.New("review status must be approved or rejected")
	ErrRoleTooLong             = errors.New("role exceeds maximum length")
	ErrNotesTooLong            = errors.New("notes exceed maximum length")
)

// ===== Assignment Errors =====
var (
	ErrInsufficientParticipants = errors.New("not enough approved participants to form a team")
	ErrNoAssignment             = errors.New("no assignment has been run for this hackathon")
)

// ===== Certificate Errors =====
var (
	ErrCertificateNotFound      = errors.New("certificate not found")
	ErrNoParticipantsSelected   = errors.New("at least one participant is required")
	ErrInvalidCertificateKind   = errors.New("invalid certificate kind")
	ErrCertificateAlreadyIssued = errors.New("certificate already issued for participant")
	ErrParticipantNotApproved   = errors.New("certificates can only be issued to approved participants")
)
