package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/teamsmith/hackops/internal/model"
)

func registrationHackathon(id string, formation model.RuleSet) *model.Hackathon {
	return &model.Hackathon{
		ID:        id,
		Name:      "Spring Hack",
		Status:    model.HackathonStatusRunning,
		Formation: formation,
	}
}

func approvedParticipants(n int, role string) []*model.Participant {
	participants := make([]*model.Participant, 0, n)
	for i := 0; i < n; i++ {
		participants = append(participants, &model.Participant{
			ID:          fmt.Sprintf("participant:%s%d", role, i+1),
			HackathonID: "hackathon:spring",
			Name:        fmt.Sprintf("%s %d", role, i+1),
			Email:       fmt.Sprintf("%s%d@example.com", role, i+1),
			Role:        role,
			Status:      model.ParticipantStatusApproved,
		})
	}
	return participants
}

func TestRunAssignment_PersistsTeamsAndQueuesNotifications(t *testing.T) {
	formation := model.RuleSet{
		IdealTeamSize:     2,
		MinTeamSize:       2,
		MaxTeamSize:       2,
		AllowPartialTeams: false,
		QuotaRules: []model.QuotaRule{
			{AttributeValue: "designer", MaxPerTeam: 1, Mode: model.QuotaModeCapped},
		},
	}

	pool := append(approvedParticipants(4, "designer"), approvedParticipants(4, "developer")...)

	var replacedTeams []*model.Team
	var replacedReport *model.AssignmentReport
	var queued []*model.TeamNotification
	clearedBeforeEnqueue := false
	cleared := false

	svc := NewTeamService(TeamServiceConfig{
		HackathonRepo: &mockHackathonRepo{
			getByIDFunc: func(ctx context.Context, id string) (*model.Hackathon, error) {
				return registrationHackathon(id, formation), nil
			},
		},
		ParticipantRepo: &mockParticipantRepo{
			listByHackathonFunc: func(ctx context.Context, hackathonID string, status string) ([]*model.Participant, error) {
				if status != model.ParticipantStatusApproved {
					t.Errorf("expected approved filter, got %q", status)
				}
				return pool, nil
			},
		},
		TeamRepo: &mockTeamRepo{
			replaceAssignmentFunc: func(ctx context.Context, hackathonID string, teams []*model.Team, report *model.AssignmentReport) error {
				replacedTeams = teams
				replacedReport = report
				return nil
			},
		},
		Outbox: &mockOutbox{
			clearQueuedFunc: func(ctx context.Context, hackathonID string) error {
				cleared = true
				return nil
			},
			enqueueBatchFunc: func(ctx context.Context, notifications []*model.TeamNotification) error {
				clearedBeforeEnqueue = cleared
				queued = notifications
				return nil
			},
		},
	})

	view, err := svc.RunAssignment(context.Background(), "hackathon:spring")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(replacedTeams) != 4 {
		t.Fatalf("expected 4 teams persisted, got %d", len(replacedTeams))
	}
	if replacedReport.TeamCount != 4 || replacedReport.AssignedCount != 8 {
		t.Errorf("unexpected report: %+v", replacedReport)
	}
	if len(replacedReport.UnassignedIDs) != 0 {
		t.Errorf("expected no unassigned, got %v", replacedReport.UnassignedIDs)
	}

	if !clearedBeforeEnqueue {
		t.Error("expected stale queued notifications cleared before enqueueing new ones")
	}
	if len(queued) != 8 {
		t.Fatalf("expected one notification per assigned participant, got %d", len(queued))
	}
	for _, n := range queued {
		if n.Status != model.NotificationStatusQueued {
			t.Errorf("notification for %s not queued: %s", n.RecipientID, n.Status)
		}
		if len(n.TeammateSummaries) != 1 {
			t.Errorf("expected 1 teammate summary for %s, got %v", n.RecipientID, n.TeammateSummaries)
		}
		if n.RecipientEmail == "" {
			t.Errorf("notification for %s missing recipient email", n.RecipientID)
		}
	}

	if len(view.Teams) != 4 {
		t.Errorf("expected 4 teams in view, got %d", len(view.Teams))
	}
	if len(view.Unassigned) != 0 {
		t.Errorf("expected empty unassigned, got %d", len(view.Unassigned))
	}
	for _, team := range view.Teams {
		if len(team.MemberNames) != len(team.MemberIDs) {
			t.Errorf("team %d member names not populated", team.Number)
		}
	}
}

func TestRunAssignment_HackathonMissing(t *testing.T) {
	svc := NewTeamService(TeamServiceConfig{
		HackathonRepo:   &mockHackathonRepo{},
		ParticipantRepo: &mockParticipantRepo{},
		TeamRepo:        &mockTeamRepo{},
	})

	_, err := svc.RunAssignment(context.Background(), "hackathon:gone")
	if !errors.Is(err, ErrHackathonNotFound) {
		t.Fatalf("expected ErrHackathonNotFound, got %v", err)
	}
}

func TestRunAssignment_InsufficientParticipants(t *testing.T) {
	formation := model.RuleSet{IdealTeamSize: 7, MinTeamSize: 7, MaxTeamSize: 7}

	replaceCalled := false
	svc := NewTeamService(TeamServiceConfig{
		HackathonRepo: &mockHackathonRepo{
			getByIDFunc: func(ctx context.Context, id string) (*model.Hackathon, error) {
				return registrationHackathon(id, formation), nil
			},
		},
		ParticipantRepo: &mockParticipantRepo{
			listByHackathonFunc: func(ctx context.Context, hackathonID string, status string) ([]*model.Participant, error) {
				return approvedParticipants(5, "developer"), nil
			},
		},
		TeamRepo: &mockTeamRepo{
			replaceAssignmentFunc: func(ctx context.Context, hackathonID string, teams []*model.Team, report *model.AssignmentReport) error {
				replaceCalled = true
				return nil
			},
		},
	})

	_, err := svc.RunAssignment(context.Background(), "hackathon:spring")
	if !errors.Is(err, ErrInsufficientParticipants) {
		t.Fatalf("expected ErrInsufficientParticipants, got %v", err)
	}
	if replaceCalled {
		t.Error("assignment must not be persisted when the engine fails")
	}
}

func TestRunAssignment_InvalidRuleSet(t *testing.T) {
	formation := model.RuleSet{
		IdealTeamSize: 4,
		MinTeamSize:   3,
		MaxTeamSize:   5,
		QuotaRules: []model.QuotaRule{
			{AttributeValue: "designer", MaxPerTeam: 1, Mode: "spread-evenly"},
		},
	}

	svc := NewTeamService(TeamServiceConfig{
		HackathonRepo: &mockHackathonRepo{
			getByIDFunc: func(ctx context.Context, id string) (*model.Hackathon, error) {
				return registrationHackathon(id, formation), nil
			},
		},
		ParticipantRepo: &mockParticipantRepo{
			listByHackathonFunc: func(ctx context.Context, hackathonID string, status string) ([]*model.Participant, error) {
				return approvedParticipants(8, "developer"), nil
			},
		},
		TeamRepo: &mockTeamRepo{},
	})

	_, err := svc.RunAssignment(context.Background(), "hackathon:spring")
	if !errors.Is(err, ErrInvalidRuleSet) {
		t.Fatalf("expected ErrInvalidRuleSet, got %v", err)
	}
}

func TestGetAssignment_NoRunYet(t *testing.T) {
	svc := NewTeamService(TeamServiceConfig{
		HackathonRepo: &mockHackathonRepo{
			getByIDFunc: func(ctx context.Context, id string) (*model.Hackathon, error) {
				return registrationHackathon(id, model.DefaultRuleSet), nil
			},
		},
		ParticipantRepo: &mockParticipantRepo{},
		TeamRepo:        &mockTeamRepo{},
	})

	_, err := svc.GetAssignment(context.Background(), "hackathon:spring")
	if !errors.Is(err, ErrNoAssignment) {
		t.Fatalf("expected ErrNoAssignment, got %v", err)
	}
}

func TestGetAssignment_PopulatesNames(t *testing.T) {
	participants := approvedParticipants(3, "developer")

	svc := NewTeamService(TeamServiceConfig{
		HackathonRepo: &mockHackathonRepo{
			getByIDFunc: func(ctx context.Context, id string) (*model.Hackathon, error) {
				return registrationHackathon(id, model.DefaultRuleSet), nil
			},
		},
		ParticipantRepo: &mockParticipantRepo{
			listByHackathonFunc: func(ctx context.Context, hackathonID string, status string) ([]*model.Participant, error) {
				return participants, nil
			},
		},
		TeamRepo: &mockTeamRepo{
			getReportFunc: func(ctx context.Context, hackathonID string) (*model.AssignmentReport, error) {
				return &model.AssignmentReport{
					HackathonID:   hackathonID,
					TeamCount:     1,
					AssignedCount: 2,
					UnassignedIDs: []string{participants[2].ID},
					Warnings:      []string{},
				}, nil
			},
			listByHackathonFunc: func(ctx context.Context, hackathonID string) ([]*model.Team, error) {
				return []*model.Team{
					{HackathonID: hackathonID, Number: 1, MemberIDs: []string{participants[0].ID, participants[1].ID}},
				}, nil
			},
		},
	})

	view, err := svc.GetAssignment(context.Background(), "hackathon:spring")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Teams) != 1 || len(view.Teams[0].MemberNames) != 2 {
		t.Fatalf("expected member names populated, got %+v", view.Teams)
	}
	if len(view.Unassigned) != 1 || view.Unassigned[0].ID != participants[2].ID {
		t.Errorf("expected unassigned participant resolved, got %+v", view.Unassigned)
	}
}
