package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamsmith/hackops/internal/database"
	"github.com/teamsmith/hackops/internal/model"
)

// CertificateRepository handles certificate data access
type CertificateRepository struct {
	db database.Database
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db database.Database) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// CreateBatch issues a set of certificates atomically
func (r *CertificateRepository) CreateBatch(ctx context.Context, certificates []*model.Certificate) error {
	if len(certificates) == 0 {
		return nil
	}

	batch := database.NewAtomicBatch()
	for _, cert := range certificates {
		batch.Add(
			`CREATE certificate SET hackathon_id = $hid, participant_id = $participant_id, serial = $serial, kind = $kind, issued_on = time::now()`,
			map[string]interface{}{
				"hid":            cert.HackathonID,
				"participant_id": cert.ParticipantID,
				"serial":         cert.Serial,
				"kind":           cert.Kind,
			},
		)
	}

	if err := batch.Execute(ctx, r.db); err != nil {
		if isUniqueConstraintError(err) {
			return database.ErrDuplicate
		}
		return fmt.Errorf("failed to issue certificates: %w", err)
	}
	return nil
}

// ListByHackathon retrieves all certificates for a hackathon
func (r *CertificateRepository) ListByHackathon(ctx context.Context, hackathonID string) ([]*model.Certificate, error) {
	query := `SELECT * FROM certificate WHERE hackathon_id = $hackathon_id ORDER BY issued_on ASC, id ASC`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"hackathon_id": hackathonID})
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}

	return r.parseCertificates(result)
}

// GetBySerial looks up a certificate by its public serial
func (r *CertificateRepository) GetBySerial(ctx context.Context, serial string) (*model.Certificate, error) {
	query := `SELECT * FROM certificate WHERE serial = $serial LIMIT 1`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"serial": serial})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}

	return r.parseCertificate(result)
}

// ExistsForParticipant reports whether a certificate of the given kind was
// already issued to a participant.
func (r *CertificateRepository) ExistsForParticipant(ctx context.Context, participantID string, kind string) (bool, error) {
	query := `SELECT count() AS count FROM certificate WHERE participant_id = $participant_id AND kind = $kind GROUP ALL`
	vars := map[string]interface{}{
		"participant_id": participantID,
		"kind":           kind,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check certificate: %w", err)
	}

	if data, ok := result.(map[string]interface{}); ok {
		return getInt(data, "count") > 0, nil
	}
	return extractCount(result) > 0, nil
}

// Parsing helpers

func (r *CertificateRepository) parseCertificate(result interface{}) (*model.Certificate, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	cert := &model.Certificate{
		ID:            convertSurrealID(data["id"]),
		HackathonID:   convertSurrealID(data["hackathon_id"]),
		ParticipantID: convertSurrealID(data["participant_id"]),
		Serial:        getString(data, "serial"),
		Kind:          getString(data, "kind"),
	}

	if t := getTime(data, "issued_on"); t != nil {
		cert.IssuedOn = *t
	}

	return cert, nil
}

func (r *CertificateRepository) parseCertificates(result []interface{}) ([]*model.Certificate, error) {
	certificates := make([]*model.Certificate, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					cert, err := r.parseCertificate(item)
					if err != nil {
						continue
					}
					certificates = append(certificates, cert)
				}
			}
		}
	}

	return certificates, nil
}
