package service

import (
	"context"
	"fmt"

	"github.com/teamsmith/hackops/internal/assign"
	"github.com/teamsmith/hackops/internal/model"
)

// HackathonRepository defines the interface for hackathon storage
type HackathonRepository interface {
	Create(ctx context.Context, hackathon *model.Hackathon) error
	GetByID(ctx context.Context, id string) (*model.Hackathon, error)
	List(ctx context.Context) ([]*model.Hackathon, error)
	Update(ctx context.Context, id string, updates *model.UpdateHackathonRequest) (*model.Hackathon, error)
	Delete(ctx context.Context, id string) error
}

// ParticipantCounter counts registrations per hackathon
type ParticipantCounter interface {
	CountByHackathon(ctx context.Context, hackathonID string) (int, error)
}

// HackathonService handles hackathon business logic
type HackathonService struct {
	hackathonRepo HackathonRepository
	counter       ParticipantCounter
}

// HackathonServiceConfig holds configuration for the hackathon service
type HackathonServiceConfig struct {
	HackathonRepo HackathonRepository
	Counter       ParticipantCounter
}

// NewHackathonService creates a new hackathon service
func NewHackathonService(cfg HackathonServiceConfig) *HackathonService {
	return &HackathonService{
		hackathonRepo: cfg.HackathonRepo,
		counter:       cfg.Counter,
	}
}

// CreateHackathon creates a hackathon in draft status. A missing formation
// rule set falls back to the defaults; a present one must validate.
func (s *HackathonService) CreateHackathon(ctx context.Context, req *model.CreateHackathonRequest) (*model.Hackathon, error) {
	if req.Name == "" {
		return nil, ErrHackathonNameRequired
	}
	if len(req.Name) > model.MaxHackathonNameLength {
		return nil, ErrHackathonNameTooLong
	}
	if req.Description != nil && len(*req.Description) > model.MaxHackathonDescLength {
		return nil, ErrHackathonDescTooLong
	}
	if !req.EndsOn.After(req.StartsOn) {
		return nil, ErrInvalidDateRange
	}

	formation := model.DefaultRuleSet
	if req.Formation != nil {
		if err := ValidateRuleSet(*req.Formation); err != nil {
			return nil, err
		}
		formation = *req.Formation
	}

	hackathon := &model.Hackathon{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartsOn:    req.StartsOn,
		EndsOn:      req.EndsOn,
		Status:      model.HackathonStatusDraft,
		Formation:   formation,
	}

	if err := s.hackathonRepo.Create(ctx, hackathon); err != nil {
		return nil, err
	}
	return hackathon, nil
}

// GetHackathon retrieves a hackathon with its registration count
func (s *HackathonService) GetHackathon(ctx context.Context, id string) (*model.Hackathon, error) {
	hackathon, err := s.hackathonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}

	if s.counter != nil {
		count, err := s.counter.CountByHackathon(ctx, id)
		if err == nil {
			hackathon.ParticipantCount = count
		}
	}

	return hackathon, nil
}

// ListHackathons retrieves all hackathons
func (s *HackathonService) ListHackathons(ctx context.Context) ([]*model.Hackathon, error) {
	return s.hackathonRepo.List(ctx)
}

// UpdateHackathon applies a partial update
func (s *HackathonService) UpdateHackathon(ctx context.Context, id string, req *model.UpdateHackathonRequest) (*model.Hackathon, error) {
	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrHackathonNameRequired
		}
		if len(*req.Name) > model.MaxHackathonNameLength {
			return nil, ErrHackathonNameTooLong
		}
	}
	if req.Description != nil && len(*req.Description) > model.MaxHackathonDescLength {
		return nil, ErrHackathonDescTooLong
	}
	if req.Status != nil && !model.IsValidHackathonStatus(*req.Status) {
		return nil, ErrInvalidStatus
	}
	if req.Formation != nil {
		if err := ValidateRuleSet(*req.Formation); err != nil {
			return nil, err
		}
	}

	existing, err := s.hackathonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrHackathonNotFound
	}

	startsOn := existing.StartsOn
	endsOn := existing.EndsOn
	if req.StartsOn != nil {
		startsOn = *req.StartsOn
	}
	if req.EndsOn != nil {
		endsOn = *req.EndsOn
	}
	if !endsOn.After(startsOn) {
		return nil, ErrInvalidDateRange
	}

	updated, err := s.hackathonRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrHackathonNotFound
	}
	return updated, nil
}

// DeleteHackathon removes a hackathon and everything registered under it
func (s *HackathonService) DeleteHackathon(ctx context.Context, id string) error {
	existing, err := s.hackathonRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrHackathonNotFound
	}
	return s.hackathonRepo.Delete(ctx, id)
}

// ValidateRuleSet checks a formation rule set at the API boundary. The
// engine revalidates before every run; rejecting here gives organizers the
// error at configuration time instead.
func ValidateRuleSet(rs model.RuleSet) error {
	if len(rs.QuotaRules) > model.MaxQuotaRulesPerEvent {
		return ErrTooManyQuotaRules
	}
	if err := toEngineRules(rs).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
	}
	return nil
}

// toEngineRules converts the stored rule set to the engine's input type
func toEngineRules(rs model.RuleSet) assign.RuleSet {
	rules := assign.RuleSet{
		IdealTeamSize:     rs.IdealTeamSize,
		MinTeamSize:       rs.MinTeamSize,
		MaxTeamSize:       rs.MaxTeamSize,
		AllowPartialTeams: rs.AllowPartialTeams,
	}
	for _, q := range rs.QuotaRules {
		rules.QuotaRules = append(rules.QuotaRules, assign.QuotaRule{
			AttributeValue: q.AttributeValue,
			MaxPerTeam:     q.MaxPerTeam,
			Mode:           q.Mode,
			Priority:       q.Priority,
		})
	}
	return rules
}
