package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamsmith/hackops/internal/database"
	"github.com/teamsmith/hackops/internal/model"
)

// ParticipantRepository handles participant data access
type ParticipantRepository struct {
	db database.Database
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db database.Database) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Create registers a participant. Email uniqueness is enforced per
// hackathon by a database index; violations surface as ErrDuplicate.
func (r *ParticipantRepository) Create(ctx context.Context, participant *model.Participant) error {
	setClause := `hackathon_id = $hackathon_id, name = $name, email = $email, role = $role, status = $status, created_on = time::now(), updated_on = time::now()`
	vars := map[string]interface{}{
		"hackathon_id": participant.HackathonID,
		"name":         participant.Name,
		"email":        participant.Email,
		"role":         participant.Role,
		"status":       participant.Status,
	}

	if participant.Notes != nil && *participant.Notes != "" {
		setClause += ", notes = $notes"
		vars["notes"] = *participant.Notes
	}

	query := "CREATE participant SET " + setClause

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return database.ErrDuplicate
		}
		return fmt.Errorf("failed to create participant: %w", err)
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return fmt.Errorf("failed to extract created participant: %w", err)
	}

	participant.ID = created.ID
	participant.CreatedOn = created.CreatedOn
	participant.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a participant by ID
func (r *ParticipantRepository) GetByID(ctx context.Context, id string) (*model.Participant, error) {
	query := `SELECT * FROM type::record($id)`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return r.parseParticipant(result)
}

// ListByHackathon retrieves participants for a hackathon, optionally
// filtered by status. Ordering is by registration time with ID as the
// tiebreak, so repeated reads produce the same sequence.
func (r *ParticipantRepository) ListByHackathon(ctx context.Context, hackathonID string, status string) ([]*model.Participant, error) {
	query := `SELECT * FROM participant WHERE hackathon_id = $hackathon_id`
	vars := map[string]interface{}{"hackathon_id": hackathonID}

	if status != "" {
		query += ` AND status = $status`
		vars["status"] = status
	}

	query += ` ORDER BY created_on ASC, id ASC`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	return r.parseParticipants(result)
}

// CountByHackathon returns the number of registrations for a hackathon
func (r *ParticipantRepository) CountByHackathon(ctx context.Context, hackathonID string) (int, error) {
	query := `SELECT count() AS count FROM participant WHERE hackathon_id = $hackathon_id GROUP ALL`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"hackathon_id": hackathonID})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}

	if data, ok := result.(map[string]interface{}); ok {
		return getInt(data, "count"), nil
	}
	return extractCount(result), nil
}

// UpdateStatus reviews a registration, moving it to approved or rejected
func (r *ParticipantRepository) UpdateStatus(ctx context.Context, id string, status string, notes *string) (*model.Participant, error) {
	query := `UPDATE type::record($id) SET status = $status, updated_on = time::now()`
	vars := map[string]interface{}{
		"id":     id,
		"status": status,
	}

	if notes != nil {
		query += `, notes = $notes`
		vars["notes"] = *notes
	}

	query += ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return r.parseParticipant(result)
}

// Delete removes a registration
func (r *ParticipantRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	if err := r.db.Execute(ctx, query, map[string]interface{}{"id": id}); err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	return nil
}

// Parsing helpers

func (r *ParticipantRepository) parseParticipant(result interface{}) (*model.Participant, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	participant := &model.Participant{
		ID:          convertSurrealID(data["id"]),
		HackathonID: convertSurrealID(data["hackathon_id"]),
		Name:        getString(data, "name"),
		Email:       getString(data, "email"),
		Role:        getString(data, "role"),
		Status:      getString(data, "status"),
	}

	if notes := getString(data, "notes"); notes != "" {
		participant.Notes = &notes
	}
	if t := getTime(data, "created_on"); t != nil {
		participant.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		participant.UpdatedOn = *t
	}

	return participant, nil
}

func (r *ParticipantRepository) parseParticipants(result []interface{}) ([]*model.Participant, error) {
	participants := make([]*model.Participant, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					participant, err := r.parseParticipant(item)
					if err != nil {
						continue
					}
					participants = append(participants, participant)
				}
			}
		}
	}

	return participants, nil
}
