package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/teamsmith/hackops/internal/model"
)

// CertificateRepository defines the interface for certificate storage
type CertificateRepository interface {
	CreateBatch(ctx context.Context, certificates []*model.Certificate) error
	ListByHackathon(ctx context.Context, hackathonID string) ([]*model.Certificate, error)
	GetBySerial(ctx context.Context, serial string) (*model.Certificate, error)
	ExistsForParticipant(ctx context.Context, participantID string, kind string) (bool, error)
}

// CertificateService issues and verifies completion certificates
type CertificateService struct {
	certRepo        CertificateRepository
	participantRepo ParticipantRepository
	hackathonRepo   HackathonRepository
}

// CertificateServiceConfig holds configuration for the certificate service
type CertificateServiceConfig struct {
	CertRepo        CertificateRepository
	ParticipantRepo ParticipantRepository
	HackathonRepo   HackathonRepository
}

// NewCertificateService creates a new certificate service
func NewCertificateService(cfg CertificateServiceConfig) *CertificateService {
	return &CertificateService{
		certRepo:        cfg.CertRepo,
		participantRepo: cfg.ParticipantRepo,
		hackathonRepo:   cfg.HackathonRepo,
	}
}

// IssueCertificates issues certificates to a set of approved participants.
// Serials are random UUIDs, so a certificate can be verified later without
// exposing enumeration.
func (s *CertificateService) IssueCertificates(ctx context.Context, hackathonID string, req *model.IssueCertificatesRequest) ([]*model.Certificate, error) {
	hackathon, err := s.hackathonRepo.GetByID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}

	if len(req.ParticipantIDs) == 0 {
		return nil, ErrNoParticipantsSelected
	}

	kind := req.Kind
	if kind == "" {
		kind = model.CertificateKindParticipation
	}
	if !model.IsValidCertificateKind(kind) {
		return nil, ErrInvalidCertificateKind
	}

	certificates := make([]*model.Certificate, 0, len(req.ParticipantIDs))
	for _, participantID := range req.ParticipantIDs {
		participant, err := s.participantRepo.GetByID(ctx, participantID)
		if err != nil {
			return nil, err
		}
		if participant == nil || participant.HackathonID != hackathonID {
			return nil, ErrParticipantNotFound
		}
		if participant.Status != model.ParticipantStatusApproved {
			return nil, ErrParticipantNotApproved
		}

		exists, err := s.certRepo.ExistsForParticipant(ctx, participantID, kind)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrCertificateAlreadyIssued
		}

		certificates = append(certificates, &model.Certificate{
			HackathonID:   hackathonID,
			ParticipantID: participantID,
			Serial:        uuid.New().String(),
			Kind:          kind,
		})
	}

	if err := s.certRepo.CreateBatch(ctx, certificates); err != nil {
		return nil, err
	}
	return certificates, nil
}

// ListCertificates retrieves all certificates for a hackathon
func (s *CertificateService) ListCertificates(ctx context.Context, hackathonID string) ([]*model.Certificate, error) {
	hackathon, err := s.hackathonRepo.GetByID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}
	return s.certRepo.ListByHackathon(ctx, hackathonID)
}

// VerifyCertificate looks up a certificate by serial, populating the
// participant and hackathon names for display.
func (s *CertificateService) VerifyCertificate(ctx context.Context, serial string) (*model.Certificate, error) {
	cert, err := s.certRepo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, ErrCertificateNotFound
	}

	if participant, err := s.participantRepo.GetByID(ctx, cert.ParticipantID); err == nil && participant != nil {
		cert.ParticipantName = &participant.Name
	}
	if hackathon, err := s.hackathonRepo.GetByID(ctx, cert.HackathonID); err == nil && hackathon != nil {
		cert.HackathonName = &hackathon.Name
	}

	return cert, nil
}
