package service

import (
	"context"
	"time"

	"github.com/teamsmith/hackops/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockHackathonRepo struct {
	createFunc  func(ctx context.Context, hackathon *model.Hackathon) error
	getByIDFunc func(ctx context.Context, id string) (*model.Hackathon, error)
	listFunc    func(ctx context.Context) ([]*model.Hackathon, error)
	updateFunc  func(ctx context.Context, id string, updates *model.UpdateHackathonRequest) (*model.Hackathon, error)
	deleteFunc  func(ctx context.Context, id string) error
}

func (m *mockHackathonRepo) Create(ctx context.Context, hackathon *model.Hackathon) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, hackathon)
	}
	return nil
}

func (m *mockHackathonRepo) GetByID(ctx context.Context, id string) (*model.Hackathon, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockHackathonRepo) List(ctx context.Context) ([]*model.Hackathon, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockHackathonRepo) Update(ctx context.Context, id string, updates *model.UpdateHackathonRequest) (*model.Hackathon, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, updates)
	}
	return nil, nil
}

func (m *mockHackathonRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockParticipantRepo struct {
	createFunc          func(ctx context.Context, participant *model.Participant) error
	getByIDFunc         func(ctx context.Context, id string) (*model.Participant, error)
	listByHackathonFunc func(ctx context.Context, hackathonID string, status string) ([]*model.Participant, error)
	countFunc           func(ctx context.Context, hackathonID string) (int, error)
	updateStatusFunc    func(ctx context.Context, id string, status string, notes *string) (*model.Participant, error)
	deleteFunc          func(ctx context.Context, id string) error
}

func (m *mockParticipantRepo) Create(ctx context.Context, participant *model.Participant) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, participant)
	}
	return nil
}

func (m *mockParticipantRepo) GetByID(ctx context.Context, id string) (*model.Participant, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockParticipantRepo) ListByHackathon(ctx context.Context, hackathonID string, status string) ([]*model.Participant, error) {
	if m.listByHackathonFunc != nil {
		return m.listByHackathonFunc(ctx, hackathonID, status)
	}
	return nil, nil
}

func (m *mockParticipantRepo) CountByHackathon(ctx context.Context, hackathonID string) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, hackathonID)
	}
	return 0, nil
}

func (m *mockParticipantRepo) UpdateStatus(ctx context.Context, id string, status string, notes *string) (*model.Participant, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status, notes)
	}
	return nil, nil
}

func (m *mockParticipantRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockTeamRepo struct {
	replaceAssignmentFunc func(ctx context.Context, hackathonID string, teams []*model.Team, report *model.AssignmentReport) error
	clearAssignmentFunc   func(ctx context.Context, hackathonID string) error
	listByHackathonFunc   func(ctx context.Context, hackathonID string) ([]*model.Team, error)
	getReportFunc         func(ctx context.Context, hackathonID string) (*model.AssignmentReport, error)
}

func (m *mockTeamRepo) ReplaceAssignment(ctx context.Context, hackathonID string, teams []*model.Team, report *model.AssignmentReport) error {
	if m.replaceAssignmentFunc != nil {
		return m.replaceAssignmentFunc(ctx, hackathonID, teams, report)
	}
	return nil
}

func (m *mockTeamRepo) ClearAssignment(ctx context.Context, hackathonID string) error {
	if m.clearAssignmentFunc != nil {
		return m.clearAssignmentFunc(ctx, hackathonID)
	}
	return nil
}

func (m *mockTeamRepo) ListByHackathon(ctx context.Context, hackathonID string) ([]*model.Team, error) {
	if m.listByHackathonFunc != nil {
		return m.listByHackathonFunc(ctx, hackathonID)
	}
	return nil, nil
}

func (m *mockTeamRepo) GetReport(ctx context.Context, hackathonID string) (*model.AssignmentReport, error) {
	if m.getReportFunc != nil {
		return m.getReportFunc(ctx, hackathonID)
	}
	return nil, nil
}

type mockOutbox struct {
	enqueueBatchFunc func(ctx context.Context, notifications []*model.TeamNotification) error
	clearQueuedFunc  func(ctx context.Context, hackathonID string) error
}

func (m *mockOutbox) EnqueueBatch(ctx context.Context, notifications []*model.TeamNotification) error {
	if m.enqueueBatchFunc != nil {
		return m.enqueueBatchFunc(ctx, notifications)
	}
	return nil
}

func (m *mockOutbox) ClearQueued(ctx context.Context, hackathonID string) error {
	if m.clearQueuedFunc != nil {
		return m.clearQueuedFunc(ctx, hackathonID)
	}
	return nil
}

type mockNotificationStore struct {
	listQueuedFunc      func(ctx context.Context, limit int) ([]*model.TeamNotification, error)
	listByHackathonFunc func(ctx context.Context, hackathonID string) ([]*model.TeamNotification, error)
	markSentFunc        func(ctx context.Context, id string, sentOn time.Time) error
	markFailedFunc      func(ctx context.Context, id string, reason string) error
}

func (m *mockNotificationStore) ListQueued(ctx context.Context, limit int) ([]*model.TeamNotification, error) {
	if m.listQueuedFunc != nil {
		return m.listQueuedFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockNotificationStore) ListByHackathon(ctx context.Context, hackathonID string) ([]*model.TeamNotification, error) {
	if m.listByHackathonFunc != nil {
		return m.listByHackathonFunc(ctx, hackathonID)
	}
	return nil, nil
}

func (m *mockNotificationStore) MarkSent(ctx context.Context, id string, sentOn time.Time) error {
	if m.markSentFunc != nil {
		return m.markSentFunc(ctx, id, sentOn)
	}
	return nil
}

func (m *mockNotificationStore) MarkFailed(ctx context.Context, id string, reason string) error {
	if m.markFailedFunc != nil {
		return m.markFailedFunc(ctx, id, reason)
	}
	return nil
}

type mockMailer struct {
	sendFunc func(ctx context.Context, notification *model.TeamNotification) error
}

func (m *mockMailer) Send(ctx context.Context, notification *model.TeamNotification) error {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, notification)
	}
	return nil
}

type mockCertRepo struct {
	createBatchFunc func(ctx context.Context, certificates []*model.Certificate) error
	listFunc        func(ctx context.Context, hackathonID string) ([]*model.Certificate, error)
	getBySerialFunc func(ctx context.Context, serial string) (*model.Certificate, error)
	existsFunc      func(ctx context.Context, participantID string, kind string) (bool, error)
}

func (m *mockCertRepo) CreateBatch(ctx context.Context, certificates []*model.Certificate) error {
	if m.createBatchFunc != nil {
		return m.createBatchFunc(ctx, certificates)
	}
	return nil
}

func (m *mockCertRepo) ListByHackathon(ctx context.Context, hackathonID string) ([]*model.Certificate, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, hackathonID)
	}
	return nil, nil
}

func (m *mockCertRepo) GetBySerial(ctx context.Context, serial string) (*model.Certificate, error) {
	if m.getBySerialFunc != nil {
		return m.getBySerialFunc(ctx, serial)
	}
	return nil, nil
}

func (m *mockCertRepo) ExistsForParticipant(ctx context.Context, participantID string, kind string) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, participantID, kind)
	}
	return false, nil
}
