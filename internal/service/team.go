package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teamsmith/hackops/internal/assign"
	"github.com/teamsmith/hackops/internal/model"
)

// TeamRepository defines the interface for team and report storage
type TeamRepository interface {
	ReplaceAssignment(ctx context.Context, hackathonID string, teams []*model.Team, report *model.AssignmentReport) error
	ClearAssignment(ctx context.Context, hackathonID string) error
	ListByHackathon(ctx context.Context, hackathonID string) ([]*model.Team, error)
	GetReport(ctx context.Context, hackathonID string) (*model.AssignmentReport, error)
}

// NotificationOutbox queues team notifications for later dispatch
type NotificationOutbox interface {
	EnqueueBatch(ctx context.Context, notifications []*model.TeamNotification) error
	ClearQueued(ctx context.Context, hackathonID string) error
}

// TeamService orchestrates assignment runs: it loads the approved pool,
// invokes the engine, persists the outcome and queues notifications.
type TeamService struct {
	hackathonRepo   HackathonRepository
	participantRepo ParticipantRepository
	teamRepo        TeamRepository
	outbox          NotificationOutbox
}

// TeamServiceConfig holds configuration for the team service
type TeamServiceConfig struct {
	HackathonRepo   HackathonRepository
	ParticipantRepo ParticipantRepository
	TeamRepo        TeamRepository
	Outbox          NotificationOutbox // Optional; nil disables notifications
}

// NewTeamService creates a new team service
func NewTeamService(cfg TeamServiceConfig) *TeamService {
	return &TeamService{
		hackathonRepo:   cfg.HackathonRepo,
		participantRepo: cfg.ParticipantRepo,
		teamRepo:        cfg.TeamRepo,
		outbox:          cfg.Outbox,
	}
}

// RunAssignment re-forms teams for a hackathon from scratch. Any prior
// assignment is discarded before the engine runs; the same pool and rules
// always produce the same teams.
func (s *TeamService) RunAssignment(ctx context.Context, hackathonID string) (*model.AssignmentView, error) {
	hackathon, err := s.hackathonRepo.GetByID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}

	approved, err := s.participantRepo.ListByHackathon(ctx, hackathonID, model.ParticipantStatusApproved)
	if err != nil {
		return nil, err
	}

	pool := make([]assign.Participant, 0, len(approved))
	byID := make(map[string]*model.Participant, len(approved))
	for _, p := range approved {
		pool = append(pool, assign.Participant{
			ID:          p.ID,
			Attribute:   p.Role,
			DisplayName: p.Name,
		})
		byID[p.ID] = p
	}

	result, err := assign.Invoke(pool, toEngineRules(hackathon.Formation))
	if err != nil {
		var insufficient *assign.InsufficientParticipantsError
		if errors.As(err, &insufficient) {
			return nil, fmt.Errorf("%w: need at least %d", ErrInsufficientParticipants, insufficient.MinTeamSize)
		}
		if errors.Is(err, assign.ErrInvalidRuleSet) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
		}
		return nil, err
	}

	teams := make([]*model.Team, 0, len(result.Teams))
	assignedCount := 0
	for _, t := range result.Teams {
		team := &model.Team{
			HackathonID: hackathonID,
			Number:      t.Number,
			MemberIDs:   make([]string, 0, len(t.Members)),
			MemberNames: make([]string, 0, len(t.Members)),
		}
		for _, m := range t.Members {
			team.MemberIDs = append(team.MemberIDs, m.ID)
			team.MemberNames = append(team.MemberNames, m.DisplayName)
		}
		assignedCount += len(t.Members)
		teams = append(teams, team)
	}

	unassignedIDs := make([]string, 0, len(result.Unassigned))
	unassigned := make([]model.Participant, 0, len(result.Unassigned))
	for _, p := range result.Unassigned {
		unassignedIDs = append(unassignedIDs, p.ID)
		if full, ok := byID[p.ID]; ok {
			unassigned = append(unassigned, *full)
		}
	}

	report := &model.AssignmentReport{
		HackathonID:   hackathonID,
		RanOn:         time.Now().UTC(),
		TeamCount:     len(teams),
		AssignedCount: assignedCount,
		UnassignedIDs: unassignedIDs,
		Warnings:      result.Warnings,
	}

	if s.outbox != nil {
		if err := s.outbox.ClearQueued(ctx, hackathonID); err != nil {
			return nil, err
		}
	}

	if err := s.teamRepo.ReplaceAssignment(ctx, hackathonID, teams, report); err != nil {
		return nil, err
	}

	if s.outbox != nil {
		if err := s.outbox.EnqueueBatch(ctx, s.buildNotifications(hackathonID, result, byID)); err != nil {
			return nil, err
		}
	}

	view := &model.AssignmentView{
		Teams:      make([]model.Team, 0, len(teams)),
		Unassigned: unassigned,
		Report:     *report,
	}
	for _, t := range teams {
		view.Teams = append(view.Teams, *t)
	}
	return view, nil
}

// buildNotifications produces one outbox entry per assigned participant,
// naming their teammates.
func (s *TeamService) buildNotifications(hackathonID string, result *assign.Result, byID map[string]*model.Participant) []*model.TeamNotification {
	notifications := make([]*model.TeamNotification, 0)

	for _, team := range result.Teams {
		for _, member := range team.Members {
			full, ok := byID[member.ID]
			if !ok {
				continue
			}

			summaries := make([]string, 0, len(team.Members)-1)
			for _, teammate := range team.Members {
				if teammate.ID == member.ID {
					continue
				}
				summaries = append(summaries, fmt.Sprintf("%s (%s)", teammate.DisplayName, teammate.Attribute))
			}

			notifications = append(notifications, &model.TeamNotification{
				HackathonID:       hackathonID,
				RecipientID:       member.ID,
				RecipientEmail:    full.Email,
				TeamNumber:        team.Number,
				TeammateSummaries: summaries,
				Status:            model.NotificationStatusQueued,
			})
		}
	}

	return notifications
}

// GetAssignment retrieves the current teams and report for a hackathon
func (s *TeamService) GetAssignment(ctx context.Context, hackathonID string) (*model.AssignmentView, error) {
	hackathon, err := s.hackathonRepo.GetByID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}

	report, err := s.teamRepo.GetReport(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNoAssignment
	}

	teams, err := s.teamRepo.ListByHackathon(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.ListByHackathon(ctx, hackathonID, "")
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Participant, len(participants))
	for _, p := range participants {
		byID[p.ID] = p
	}

	view := &model.AssignmentView{
		Teams:      make([]model.Team, 0, len(teams)),
		Unassigned: make([]model.Participant, 0, len(report.UnassignedIDs)),
		Report:     *report,
	}

	for _, t := range teams {
		team := *t
		team.MemberNames = make([]string, 0, len(team.MemberIDs))
		for _, id := range team.MemberIDs {
			if p, ok := byID[id]; ok {
				team.MemberNames = append(team.MemberNames, p.Name)
			}
		}
		view.Teams = append(view.Teams, team)
	}

	for _, id := range report.UnassignedIDs {
		if p, ok := byID[id]; ok {
			view.Unassigned = append(view.Unassigned, *p)
		}
	}

	return view, nil
}

// ClearAssignment deletes a hackathon's teams, report and queued
// notifications.
func (s *TeamService) ClearAssignment(ctx context.Context, hackathonID string) error {
	hackathon, err := s.hackathonRepo.GetByID(ctx, hackathonID)
	if err != nil {
		return err
	}
	if hackathon == nil {
		return ErrHackathonNotFound
	}

	if s.outbox != nil {
		if err := s.outbox.ClearQueued(ctx, hackathonID); err != nil {
			return err
		}
	}
	return s.teamRepo.ClearAssignment(ctx, hackathonID)
}
