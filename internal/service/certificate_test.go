package service

import (
	"context"
	"errors"
	"testing"

	"github.com/teamsmith/hackops/internal/model"
)

func certService(certRepo *mockCertRepo, participantRepo *mockParticipantRepo) *CertificateService {
	return NewCertificateService(CertificateServiceConfig{
		CertRepo:        certRepo,
		ParticipantRepo: participantRepo,
		HackathonRepo: &mockHackathonRepo{
			getByIDFunc: func(ctx context.Context, id string) (*model.Hackathon, error) {
				return &model.Hackathon{ID: id, Name: "Spring Hack", Status: model.HackathonStatusCompleted}, nil
			},
		},
	})
}

func approvedLookup(hackathonID string) *mockParticipantRepo {
	return &mockParticipantRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Participant, error) {
			return &model.Participant{
				ID:          id,
				HackathonID: hackathonID,
				Name:        "Ada Lovelace",
				Status:      model.ParticipantStatusApproved,
			}, nil
		},
	}
}

func TestIssueCertificates_AssignsUniqueSerials(t *testing.T) {
	var batch []*model.Certificate
	svc := certService(&mockCertRepo{
		createBatchFunc: func(ctx context.Context, certificates []*model.Certificate) error {
			batch = certificates
			return nil
		},
	}, approvedLookup("hackathon:spring"))

	certs, err := svc.IssueCertificates(context.Background(), "hackathon:spring", &model.IssueCertificatesRequest{
		ParticipantIDs: []string{"participant:1", "participant:2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch) != 2 {
		t.Fatalf("expected 2 certificates persisted, got %d", len(batch))
	}
	if certs[0].Serial == "" || certs[0].Serial == certs[1].Serial {
		t.Errorf("expected distinct non-empty serials, got %q and %q", certs[0].Serial, certs[1].Serial)
	}
	for _, cert := range certs {
		if cert.Kind != model.CertificateKindParticipation {
			t.Errorf("expected participation default, got %s", cert.Kind)
		}
	}
}

func TestIssueCertificates_RequiresParticipants(t *testing.T) {
	svc := certService(&mockCertRepo{}, approvedLookup("hackathon:spring"))

	_, err := svc.IssueCertificates(context.Background(), "hackathon:spring", &model.IssueCertificatesRequest{})
	if !errors.Is(err, ErrNoParticipantsSelected) {
		t.Fatalf("expected ErrNoParticipantsSelected, got %v", err)
	}
}

func TestIssueCertificates_RejectsUnknownKind(t *testing.T) {
	svc := certService(&mockCertRepo{}, approvedLookup("hackathon:spring"))

	_, err := svc.IssueCertificates(context.Background(), "hackathon:spring", &model.IssueCertificatesRequest{
		ParticipantIDs: []string{"participant:1"},
		Kind:           "excellence",
	})
	if !errors.Is(err, ErrInvalidCertificateKind) {
		t.Fatalf("expected ErrInvalidCertificateKind, got %v", err)
	}
}

func TestIssueCertificates_RejectsUnapproved(t *testing.T) {
	participantRepo := &mockParticipantRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Participant, error) {
			return &model.Participant{
				ID:          id,
				HackathonID: "hackathon:spring",
				Status:      model.ParticipantStatusPending,
			}, nil
		},
	}
	svc := certService(&mockCertRepo{}, participantRepo)

	_, err := svc.IssueCertificates(context.Background(), "hackathon:spring", &model.IssueCertificatesRequest{
		ParticipantIDs: []string{"participant:1"},
	})
	if !errors.Is(err, ErrParticipantNotApproved) {
		t.Fatalf("expected ErrParticipantNotApproved, got %v", err)
	}
}

func TestIssueCertificates_RejectsDoubleIssue(t *testing.T) {
	svc := certService(&mockCertRepo{
		existsFunc: func(ctx context.Context, participantID string, kind string) (bool, error) {
			return true, nil
		},
	}, approvedLookup("hackathon:spring"))

	_, err := svc.IssueCertificates(context.Background(), "hackathon:spring", &model.IssueCertificatesRequest{
		ParticipantIDs: []string{"participant:1"},
	})
	if !errors.Is(err, ErrCertificateAlreadyIssued) {
		t.Fatalf("expected ErrCertificateAlreadyIssued, got %v", err)
	}
}

func TestVerifyCertificate_PopulatesNames(t *testing.T) {
	svc := certService(&mockCertRepo{
		getBySerialFunc: func(ctx context.Context, serial string) (*model.Certificate, error) {
			return &model.Certificate{
				HackathonID:   "hackathon:spring",
				ParticipantID: "participant:1",
				Serial:        serial,
				Kind:          model.CertificateKindParticipation,
			}, nil
		},
	}, approvedLookup("hackathon:spring"))

	cert, err := svc.VerifyCertificate(context.Background(), "abc-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cert.ParticipantName == nil || *cert.ParticipantName != "Ada Lovelace" {
		t.Errorf("expected participant name populated, got %v", cert.ParticipantName)
	}
	if cert.HackathonName == nil || *cert.HackathonName != "Spring Hack" {
		t.Errorf("expected hackathon name populated, got %v", cert.HackathonName)
	}
}

func TestVerifyCertificate_NotFound(t *testing.T) {
	svc := certService(&mockCertRepo{}, approvedLookup("hackathon:spring"))

	_, err := svc.VerifyCertificate(context.Background(), "missing")
	if !errors.Is(err, ErrCertificateNotFound) {
		t.Fatalf("expected ErrCertificateNotFound, got %v", err)
	}
}
