package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamsmith/hackops/internal/database"
	"github.com/teamsmith/hackops/internal/model"
)

// TeamRepository handles team and assignment report data access
type TeamRepository struct {
	db database.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db database.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// ReplaceAssignment atomically replaces a hackathon's assignment: prior
// teams and report are deleted and the new ones written in a single
// transaction, so readers never observe a half-applied run.
func (r *TeamRepository) ReplaceAssignment(ctx context.Context, hackathonID string, teams []*model.Team, report *model.AssignmentReport) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE team WHERE hackathon_id = $hid`, map[string]interface{}{"hid": hackathonID})
	batch.Add(`DELETE assignment_report WHERE hackathon_id = $hid`, map[string]interface{}{"hid": hackathonID})

	for _, team := range teams {
		batch.Add(
			`CREATE team SET hackathon_id = $hid, number = $number, member_ids = $member_ids, created_on = time::now()`,
			map[string]interface{}{
				"hid":        hackathonID,
				"number":     team.Number,
				"member_ids": team.MemberIDs,
			},
		)
	}

	batch.Add(
		`CREATE assignment_report SET hackathon_id = $hid, ran_on = $ran_on, team_count = $team_count, assigned_count = $assigned_count, unassigned_ids = $unassigned_ids, warnings = $warnings`,
		map[string]interface{}{
			"hid":            hackathonID,
			"ran_on":         report.RanOn,
			"team_count":     report.TeamCount,
			"assigned_count": report.AssignedCount,
			"unassigned_ids": report.UnassignedIDs,
			"warnings":       report.Warnings,
		},
	)

	batch.Add(`UPDATE type::record($hid) SET last_run_on = $ran_on, updated_on = time::now()`,
		map[string]interface{}{
			"hid":    hackathonID,
			"ran_on": report.RanOn,
		})

	if err := batch.Execute(ctx, r.db); err != nil {
		return fmt.Errorf("failed to replace assignment: %w", err)
	}
	return nil
}

// ClearAssignment removes a hackathon's teams and report
func (r *TeamRepository) ClearAssignment(ctx context.Context, hackathonID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE team WHERE hackathon_id = $hid`, map[string]interface{}{"hid": hackathonID})
	batch.Add(`DELETE assignment_report WHERE hackathon_id = $hid`, map[string]interface{}{"hid": hackathonID})

	if err := batch.Execute(ctx, r.db); err != nil {
		return fmt.Errorf("failed to clear assignment: %w", err)
	}
	return nil
}

// ListByHackathon retrieves a hackathon's teams ordered by number
func (r *TeamRepository) ListByHackathon(ctx context.Context, hackathonID string) ([]*model.Team, error) {
	query := `SELECT * FROM team WHERE hackathon_id = $hackathon_id ORDER BY number ASC`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"hackathon_id": hackathonID})
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	return r.parseTeams(result)
}

// GetReport retrieves the latest assignment report for a hackathon
func (r *TeamRepository) GetReport(ctx context.Context, hackathonID string) (*model.AssignmentReport, error) {
	query := `SELECT * FROM assignment_report WHERE hackathon_id = $hackathon_id ORDER BY ran_on DESC LIMIT 1`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"hackathon_id": hackathonID})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment report: %w", err)
	}

	return r.parseReport(result)
}

// Parsing helpers

func (r *TeamRepository) parseTeam(result interface{}) (*model.Team, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	team := &model.Team{
		ID:          convertSurrealID(data["id"]),
		HackathonID: convertSurrealID(data["hackathon_id"]),
		Number:      getInt(data, "number"),
		MemberIDs:   getStringSlice(data, "member_ids"),
	}

	if t := getTime(data, "created_on"); t != nil {
		team.CreatedOn = *t
	}

	return team, nil
}

func (r *TeamRepository) parseTeams(result []interface{}) ([]*model.Team, error) {
	teams := make([]*model.Team, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					team, err := r.parseTeam(item)
					if err != nil {
						continue
					}
					teams = append(teams, team)
				}
			}
		}
	}

	return teams, nil
}

func (r *TeamRepository) parseReport(result interface{}) (*model.AssignmentReport, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	report := &model.AssignmentReport{
		ID:            convertSurrealID(data["id"]),
		HackathonID:   convertSurrealID(data["hackathon_id"]),
		TeamCount:     getInt(data, "team_count"),
		AssignedCount: getInt(data, "assigned_count"),
		UnassignedIDs: getStringSlice(data, "unassigned_ids"),
		Warnings:      getStringSlice(data, "warnings"),
	}

	if t := getTime(data, "ran_on"); t != nil {
		report.RanOn = *t
	}
	// Empty arrays come back as nil; the report contract promises presence
	if report.UnassignedIDs == nil {
		report.UnassignedIDs = []string{}
	}
	if report.Warnings == nil {
		report.Warnings = []string{}
	}

	return report, nil
}
