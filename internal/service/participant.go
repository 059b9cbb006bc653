package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/teamsmith/hackops/internal/database"
	"github.com/teamsmith/hackops/internal/model"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ParticipantRepository defines the interface for participant storage
type ParticipantRepository interface {
	Create(ctx context.Context, participant *model.Participant) error
	GetByID(ctx context.Context, id string) (*model.Participant, error)
	ListByHackathon(ctx context.Context, hackathonID string, status string) ([]*model.Participant, error)
	CountByHackathon(ctx context.Context, hackathonID string) (int, error)
	UpdateStatus(ctx context.Context, id string, status string, notes *string) (*model.Participant, error)
	Delete(ctx context.Context, id string) error
}

// ParticipantService handles participant registration and review
type ParticipantService struct {
	participantRepo ParticipantRepository
	hackathonRepo   HackathonRepository
}

// ParticipantServiceConfig holds configuration for the participant service
type ParticipantServiceConfig struct {
	ParticipantRepo ParticipantRepository
	HackathonRepo   HackathonRepository
}

// NewParticipantService creates a new participant service
func NewParticipantService(cfg ParticipantServiceConfig) *ParticipantService {
	return &ParticipantService{
		participantRepo: cfg.ParticipantRepo,
		hackathonRepo:   cfg.HackathonRepo,
	}
}

// RegisterParticipant registers for a hackathon. Registrations land in
// pending status and only count toward team formation once approved.
func (s *ParticipantService) RegisterParticipant(ctx context.Context, hackathonID string, req *model.RegisterParticipantRequest) (*model.Participant, error) {
	hackathon, err := s.hackathonRepo.GetByID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}
	if hackathon.Status != model.HackathonStatusRegistration {
		return nil, ErrRegistrationClosed
	}

	if req.Name == "" {
		return nil, ErrParticipantNameRequired
	}
	if len(req.Name) > model.MaxParticipantNameLength {
		req.Name = req.Name[:model.MaxParticipantNameLength]
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = model.RoleUnspecified
	}
	if len(role) > model.MaxRoleLength {
		return nil, ErrRoleTooLong
	}
	if req.Notes != nil && len(*req.Notes) > model.MaxNotesLength {
		return nil, ErrNotesTooLong
	}

	count, err := s.participantRepo.CountByHackathon(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if count >= model.MaxParticipantsPerEvent {
		return nil, ErrParticipantLimitReached
	}

	participant := &model.Participant{
		HackathonID: hackathonID,
		Name:        req.Name,
		Email:       email,
		Role:        role,
		Status:      model.ParticipantStatusPending,
		Notes:       req.Notes,
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}
	return participant, nil
}

// GetParticipant retrieves a participant by ID
func (s *ParticipantService) GetParticipant(ctx context.Context, id string) (*model.Participant, error) {
	participant, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, ErrParticipantNotFound
	}
	return participant, nil
}

// ListParticipants retrieves participants for a hackathon, optionally
// filtered by status.
func (s *ParticipantService) ListParticipants(ctx context.Context, hackathonID string, status string) ([]*model.Participant, error) {
	hackathon, err := s.hackathonRepo.GetByID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}

	if status != "" && !model.IsValidParticipantStatus(status) {
		return nil, ErrInvalidReviewStatus
	}

	return s.participantRepo.ListByHackathon(ctx, hackathonID, status)
}

// ReviewParticipant approves or rejects a pending registration
func (s *ParticipantService) ReviewParticipant(ctx context.Context, id string, req *model.ReviewParticipantRequest) (*model.Participant, error) {
	if req.Status != model.ParticipantStatusApproved && req.Status != model.ParticipantStatusRejected {
		return nil, ErrInvalidReviewStatus
	}
	if req.Notes != nil && len(*req.Notes) > model.MaxNotesLength {
		return nil, ErrNotesTooLong
	}

	existing, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrParticipantNotFound
	}

	updated, err := s.participantRepo.UpdateStatus(ctx, id, req.Status, req.Notes)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrParticipantNotFound
	}
	return updated, nil
}

// RemoveParticipant deletes a registration
func (s *ParticipantService) RemoveParticipant(ctx context.Context, id string) error {
	existing, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrParticipantNotFound
	}
	return s.participantRepo.Delete(ctx, id)
}
