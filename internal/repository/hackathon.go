package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamsmith/hackops/internal/database"
	"github.com/teamsmith/hackops/internal/model"
)

// HackathonRepository handles hackathon data access
type HackathonRepository struct {
	db database.Database
}

// NewHackathonRepository creates a new hackathon repository
func NewHackathonRepository(db database.Database) *HackathonRepository {
	return &HackathonRepository{db: db}
}

// Create creates a new hackathon. The formation rule set is stored as an
// embedded object on the record.
func (r *HackathonRepository) Create(ctx context.Context, hackathon *model.Hackathon) error {
	setClause := `name = $name, starts_on = $starts_on, ends_on = $ends_on, status = $status, formation = $formation, created_on = time::now(), updated_on = time::now()`
	vars := map[string]interface{}{
		"name":      hackathon.Name,
		"starts_on": hackathon.StartsOn,
		"ends_on":   hackathon.EndsOn,
		"status":    hackathon.Status,
		"formation": ruleSetVars(hackathon.Formation),
	}

	if hackathon.Description != nil && *hackathon.Description != "" {
		setClause += ", description = $description"
		vars["description"] = *hackathon.Description
	}
	if hackathon.Location != nil && *hackathon.Location != "" {
		setClause += ", location = $location"
		vars["location"] = *hackathon.Location
	}

	query := "CREATE hackathon SET " + setClause

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("hackathon with this name already exists")
		}
		return fmt.Errorf("failed to create hackathon: %w", err)
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return fmt.Errorf("failed to extract created hackathon: %w", err)
	}

	hackathon.ID = created.ID
	hackathon.CreatedOn = created.CreatedOn
	hackathon.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a hackathon by ID
func (r *HackathonRepository) GetByID(ctx context.Context, id string) (*model.Hackathon, error) {
	query := `SELECT * FROM type::record($id)`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hackathon: %w", err)
	}

	return r.parseHackathon(result)
}

// List retrieves all hackathons ordered by start date
func (r *HackathonRepository) List(ctx context.Context) ([]*model.Hackathon, error) {
	query := `SELECT * FROM hackathon ORDER BY starts_on ASC`
	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathons: %w", err)
	}

	return r.parseHackathons(result)
}

// Update applies a partial update and returns the updated record
func (r *HackathonRepository) Update(ctx context.Context, id string, updates *model.UpdateHackathonRequest) (*model.Hackathon, error) {
	query := `UPDATE type::record($id) SET updated_on = time::now()`
	vars := map[string]interface{}{"id": id}

	if updates.Name != nil {
		query += `, name = $name`
		vars["name"] = *updates.Name
	}
	if updates.Description != nil {
		query += `, description = $description`
		vars["description"] = *updates.Description
	}
	if updates.Location != nil {
		query += `, location = $location`
		vars["location"] = *updates.Location
	}
	if updates.StartsOn != nil {
		query += `, starts_on = $starts_on`
		vars["starts_on"] = *updates.StartsOn
	}
	if updates.EndsOn != nil {
		query += `, ends_on = $ends_on`
		vars["ends_on"] = *updates.EndsOn
	}
	if updates.Status != nil {
		query += `, status = $status`
		vars["status"] = *updates.Status
	}
	if updates.Formation != nil {
		query += `, formation = $formation`
		vars["formation"] = ruleSetVars(*updates.Formation)
	}

	query += ` RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update hackathon: %w", err)
	}

	return r.parseHackathon(result)
}

// SetLastRun stamps the time of the most recent assignment run
func (r *HackathonRepository) SetLastRun(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET last_run_on = time::now(), updated_on = time::now()`
	if err := r.db.Execute(ctx, query, map[string]interface{}{"id": id}); err != nil {
		return fmt.Errorf("failed to stamp last run: %w", err)
	}
	return nil
}

// Delete deletes a hackathon and its dependent records
func (r *HackathonRepository) Delete(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE participant WHERE hackathon_id = $hid`, map[string]interface{}{"hid": id})
	batch.Add(`DELETE team WHERE hackathon_id = $hid`, map[string]interface{}{"hid": id})
	batch.Add(`DELETE assignment_report WHERE hackathon_id = $hid`, map[string]interface{}{"hid": id})
	batch.Add(`DELETE team_notification WHERE hackathon_id = $hid`, map[string]interface{}{"hid": id})
	batch.Add(`DELETE certificate WHERE hackathon_id = $hid`, map[string]interface{}{"hid": id})
	batch.Add(`DELETE type::record($id)`, map[string]interface{}{"id": id})

	if err := batch.Execute(ctx, r.db); err != nil {
		return fmt.Errorf("failed to delete hackathon: %w", err)
	}
	return nil
}

// Parsing helpers

func ruleSetVars(rs model.RuleSet) map[string]interface{} {
	quotaRules := make([]interface{}, 0, len(rs.QuotaRules))
	for _, rule := range rs.QuotaRules {
		quotaRules = append(quotaRules, map[string]interface{}{
			"attribute_value": rule.AttributeValue,
			"max_per_team":    rule.MaxPerTeam,
			"mode":            rule.Mode,
			"priority":        rule.Priority,
		})
	}
	return map[string]interface{}{
		"ideal_team_size":     rs.IdealTeamSize,
		"min_team_size":       rs.MinTeamSize,
		"max_team_size":       rs.MaxTeamSize,
		"allow_partial_teams": rs.AllowPartialTeams,
		"quota_rules":         quotaRules,
	}
}

func parseRuleSet(data map[string]interface{}) model.RuleSet {
	rs := model.RuleSet{
		IdealTeamSize:     getInt(data, "ideal_team_size"),
		MinTeamSize:       getInt(data, "min_team_size"),
		MaxTeamSize:       getInt(data, "max_team_size"),
		AllowPartialTeams: getBool(data, "allow_partial_teams"),
	}

	if rules, ok := data["quota_rules"].([]interface{}); ok {
		for _, raw := range rules {
			if rule, ok := raw.(map[string]interface{}); ok {
				rs.QuotaRules = append(rs.QuotaRules, model.QuotaRule{
					AttributeValue: getString(rule, "attribute_value"),
					MaxPerTeam:     getInt(rule, "max_per_team"),
					Mode:           getString(rule, "mode"),
					Priority:       getInt(rule, "priority"),
				})
			}
		}
	}

	return rs
}

func (r *HackathonRepository) parseHackathon(result interface{}) (*model.Hackathon, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	hackathon := &model.Hackathon{
		ID:     convertSurrealID(data["id"]),
		Name:   getString(data, "name"),
		Status: getString(data, "status"),
	}

	if formation := getMap(data, "formation"); formation != nil {
		hackathon.Formation = parseRuleSet(formation)
	}
	if desc := getString(data, "description"); desc != "" {
		hackathon.Description = &desc
	}
	if loc := getString(data, "location"); loc != "" {
		hackathon.Location = &loc
	}
	if t := getTime(data, "starts_on"); t != nil {
		hackathon.StartsOn = *t
	}
	if t := getTime(data, "ends_on"); t != nil {
		hackathon.EndsOn = *t
	}
	hackathon.LastRunOn = getTime(data, "last_run_on")
	if t := getTime(data, "created_on"); t != nil {
		hackathon.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		hackathon.UpdatedOn = *t
	}

	return hackathon, nil
}

func (r *HackathonRepository) parseHackathons(result []interface{}) ([]*model.Hackathon, error) {
	hackathons := make([]*model.Hackathon, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					hackathon, err := r.parseHackathon(item)
					if err != nil {
						continue
					}
					hackathons = append(hackathons, hackathon)
				}
			}
		}
	}

	return hackathons, nil
}
