package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/logger"
	"volunteer-portal-backend/internal/repository"
)

const teamRequirementsColumns = `team_key, display_name, background_check, references_required, membership, welcome_to_rcc, child_safety, mandated_reporter, discipleship, leadership, life_group, covenant, moral_conduct, public_presence, updated_on`

type teamRequirementsRepository struct {
	db *sql.DB
}

func NewTeamRequirementsRepository(db *sql.DB) repository.TeamRequirementsRepository {
	return &teamRequirementsRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTeamRequirements(row scanner) (domain.TeamRequirements, error) {
	var (
		t         domain.TeamRequirements
		key       string
		updatedOn pq.NullTime
	)
	err := row.Scan(&key, &t.DisplayName, &t.BackgroundCheck, &t.References, &t.Membership, &t.WelcomeToRCC,
		&t.ChildSafety, &t.MandatedReporter, &t.Discipleship, &t.Leadership, &t.LifeGroup,
		&t.Covenant, &t.MoralConduct, &t.PublicPresence, &updatedOn)
	if err != nil {
		return t, err
	}
	t.TeamKey = domain.TeamKey(key)
	if updatedOn.Valid {
		t.UpdatedOn = updatedOn.Time.Format(time.RFC3339)
	}
	return t, nil
}

func (r *teamRequirementsRepository) List(ctx context.Context) ([]domain.TeamRequirements, error) {
	query := `SELECT ` + teamRequirementsColumns + ` FROM team_requirements ORDER BY team_key`
	logger.DatabaseCall("ListTeamRequirements", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("ListTeamRequirements", 0, err)
		return nil, fmt.Errorf("list team requirements: %w", err)
	}
	defer rows.Close()

	teams := make([]domain.TeamRequirements, 0)
	for rows.Next() {
		t, err := scanTeamRequirements(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team requirements: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list team requirements: %w", err)
	}
	logger.DatabaseResult("ListTeamRequirements", int64(len(teams)), nil)
	return teams, nil
}

func (r *teamRequirementsRepository) GetByKey(ctx context.Context, key domain.TeamKey) (*domain.TeamRequirements, error) {
	query := `SELECT ` + teamRequirementsColumns + ` FROM team_requirements WHERE team_key = $1`
	logger.DatabaseCall("GetTeamRequirements", query, "team_key", key)
	t, err := scanTeamRequirements(r.db.QueryRowContext(ctx, query, string(key)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		logger.DatabaseResult("GetTeamRequirements", 0, err, "team_key", key)
		return nil, fmt.Errorf("get team requirements %q: %w", key, err)
	}
	return &t, nil
}

func (r *teamRequirementsRepository) Upsert(ctx context.Context, t *domain.TeamRequirements) error {
	query := `INSERT INTO team_requirements (` + teamRequirementsColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	          ON CONFLICT (team_key) DO UPDATE SET
	            display_name = EXCLUDED.display_name,
	            background_check = EXCLUDED.background_check,
	            references_required = EXCLUDED.references_required,
	            membership = EXCLUDED.membership,
	            welcome_to_rcc = EXCLUDED.welcome_to_rcc,
	            child_safety = EXCLUDED.child_safety,
	            mandated_reporter = EXCLUDED.mandated_reporter,
	            discipleship = EXCLUDED.discipleship,
	            leadership = EXCLUDED.leadership,
	            life_group = EXCLUDED.life_group,
	            covenant = EXCLUDED.covenant,
	            moral_conduct = EXCLUDED.moral_conduct,
	            public_presence = EXCLUDED.public_presence,
	            updated_on = EXCLUDED.updated_on`
	now := time.Now().UTC()
	logger.DatabaseCall("UpsertTeamRequirements", query, "team_key", t.TeamKey)
	res, err := r.db.ExecContext(ctx, query, string(t.TeamKey), t.DisplayName, t.BackgroundCheck, t.References,
		t.Membership, t.WelcomeToRCC, t.ChildSafety, t.MandatedReporter, t.Discipleship, t.Leadership,
		t.LifeGroup, t.Covenant, t.MoralConduct, t.PublicPresence, now)
	if err != nil {
		logger.DatabaseResult("UpsertTeamRequirements", 0, err, "team_key", t.TeamKey)
		return fmt.Errorf("upsert team requirements %q: %w", t.TeamKey, err)
	}
	rows, _ := res.RowsAffected()
	logger.DatabaseResult("UpsertTeamRequirements", rows, nil, "team_key", t.TeamKey)
	t.UpdatedOn = now.Format(time.RFC3339)
	return nil
}

func (r *teamRequirementsRepository) Delete(ctx context.Context, key domain.TeamKey) error {
	query := `DELETE FROM team_requirements WHERE team_key = $1`
	logger.DatabaseCall("DeleteTeamRequirements", query, "team_key", key)
	res, err := r.db.ExecContext(ctx, query, string(key))
	if err != nil {
		logger.DatabaseResult("DeleteTeamRequirements", 0, err, "team_key", key)
		return fmt.Errorf("delete team requirements %q: %w", key, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete team requirements %q: %w", key, err)
	}
	logger.DatabaseResult("DeleteTeamRequirements", rows, nil, "team_key", key)
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
