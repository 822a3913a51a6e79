package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/models"
)

// caseRepository is the PostgreSQL-backed implementation of [CaseRepository].
// Index relations, referrals, and dynamic properties are jsonb columns; the
// scalar identifying fields are regular columns so they stay queryable.
type caseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCaseRepository constructs a [CaseRepository] backed by the provided
// database connection and logger.
func NewCaseRepository(db *DB, logger *logger.Logger) CaseRepository {
	logger.Debug().Msg("creating case repository")
	return &caseRepository{
		db:     db,
		logger: logger,
	}
}

// Get loads one case by id.
func (r *caseRepository) Get(ctx context.Context, caseID string) (models.Case, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getCase, caseID)
	c, err := scanCase(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Case{}, ErrCaseNotFound
		}
		log.Err(err).Str("func", "*caseRepository.Get").Msg("error scanning case")
		return models.Case{}, err
	}

	return c, nil
}

// GetMany loads a batch of cases keyed by id. Ids with no matching row are
// absent from the result map.
func (r *caseRepository) GetMany(ctx context.Context, caseIDs []string) (map[string]models.Case, error) {
	log := logger.FromContext(ctx)

	result := make(map[string]models.Case, len(caseIDs))
	if len(caseIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx, getCases, caseIDs)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.GetMany").Msg("error querying cases")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result[c.CaseID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// OpenByOwners lists open cases owned by any of the given owner ids.
func (r *caseRepository) OpenByOwners(ctx context.Context, ownerIDs []string) ([]models.Case, error) {
	log := logger.FromContext(ctx)

	if len(ownerIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, openCasesByOwners, ownerIDs)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.OpenByOwners").Msg("error querying cases by owner")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var cases []models.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cases, nil
}

// Save upserts a case document.
func (r *caseRepository) Save(ctx context.Context, c models.Case) error {
	log := logger.FromContext(ctx)

	indices, err := json.Marshal(c.Indices)
	if err != nil {
		return err
	}
	referrals, err := json.Marshal(c.Referrals)
	if err != nil {
		return err
	}
	properties, err := json.Marshal(c.Properties)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, saveCase,
		c.CaseID, c.Type, c.Name, c.UserID, c.OwnerID, c.ExternalID,
		c.OpenedOn, c.ModifiedOn, c.ClosedOn, c.Closed, indices, referrals, properties)
	if err != nil {
		log.Err(err).Str("func", "*caseRepository.Save").Msg("error saving case")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanCase(row rowScanner) (models.Case, error) {
	var c models.Case
	var externalID sql.NullString
	var indices, referrals, properties []byte

	if err := row.Scan(&c.CaseID, &c.Type, &c.Name, &c.UserID, &c.OwnerID, &externalID,
		&c.OpenedOn, &c.ModifiedOn, &c.ClosedOn, &c.Closed, &indices, &referrals, &properties); err != nil {
		return models.Case{}, err
	}
	c.ExternalID = externalID.String

	if len(indices) > 0 {
		if err := json.Unmarshal(indices, &c.Indices); err != nil {
			return models.Case{}, fmt.Errorf("%w: indices: %w", ErrScanningRow, err)
		}
	}
	if len(referrals) > 0 {
		if err := json.Unmarshal(referrals, &c.Referrals); err != nil {
			return models.Case{}, fmt.Errorf("%w: referrals: %w", ErrScanningRow, err)
		}
	}
	if len(properties) > 0 {
		if err := json.Unmarshal(properties, &c.Properties); err != nil {
			return models.Case{}, fmt.Errorf("%w: properties: %w", ErrScanningRow, err)
		}
	}

	return c, nil
}
