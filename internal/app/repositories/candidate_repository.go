package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
)

// CandidateRepository handles database operations for candidates
type CandidateRepository struct {
	db *pgxpool.Pool
}

// NewCandidateRepository creates a new CandidateRepository
func NewCandidateRepository(db *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// Create inserts a new candidate and fills in the generated fields
func (r *CandidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	query := squirrel.Insert("candidates").
		Columns("name", "email", "applied_position_id", "status", "interview_notes").
		Values(candidate.Name, candidate.Email, candidate.AppliedPositionID, candidate.Status, candidate.InterviewNotes).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&candidate.ID, &candidate.CreatedAt, &candidate.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByID retrieves a candidate with its applied position.
// Returns (nil, nil) when absent.
func (r *CandidateRepository) GetByID(ctx context.Context, id int64) (*models.Candidate, error) {
	query := squirrel.Select(
		"c.id", "c.name", "c.email", "c.applied_position_id", "c.status", "c.interview_notes",
		"c.created_at", "c.updated_at", "ap.id", "ap.name",
	).
		From("candidates c").
		Join("applied_positions ap ON ap.id = c.applied_position_id").
		Where("c.id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var candidate models.Candidate
	var position models.AppliedPosition
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&candidate.ID,
		&candidate.Name,
		&candidate.Email,
		&candidate.AppliedPositionID,
		&candidate.Status,
		&candidate.InterviewNotes,
		&candidate.CreatedAt,
		&candidate.UpdatedAt,
		&position.ID,
		&position.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	candidate.AppliedPosition = &position
	return &candidate, nil
}

// EmailExists checks if a candidate exists with the given email
func (r *CandidateRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM candidates WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking candidate existence: %w", err)
	}
	return exists, nil
}

// List retrieves a page of candidates with optional search and status filters.
// Search matches name OR email case-insensitively; the filters AND together.
func (r *CandidateRepository) List(ctx context.Context, page, pageSize int, filter dto.CandidateFilter) ([]models.Candidate, int64, error) {
	offset := (page - 1) * pageSize

	query := squirrel.Select(
		"c.id", "c.name", "c.email", "c.applied_position_id", "c.status", "c.interview_notes",
		"c.created_at", "c.updated_at", "COUNT(*) OVER()",
	).
		From("candidates c").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"c.name": pattern},
			squirrel.ILike{"c.email": pattern},
		})
	}
	if filter.Status != nil && *filter.Status != "" {
		query = query.Where("c.status = ?", *filter.Status)
	}

	query = query.OrderBy("c.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var candidates []models.Candidate
	var total int64

	for rows.Next() {
		var candidate models.Candidate
		err := rows.Scan(
			&candidate.ID,
			&candidate.Name,
			&candidate.Email,
			&candidate.AppliedPositionID,
			&candidate.Status,
			&candidate.InterviewNotes,
			&candidate.CreatedAt,
			&candidate.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		candidates = append(candidates, candidate)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

// Update applies a partial update; only supplied fields are written.
// A zero-rows-affected result is reported as ErrCandidateNotFound.
func (r *CandidateRepository) Update(ctx context.Context, id int64, req *dto.UpdateCandidateRequest) error {
	query := squirrel.Update("candidates").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if req.Name != nil {
		query = query.Set("name", *req.Name)
	}
	if req.Email != nil {
		query = query.Set("email", *req.Email)
	}
	if req.AppliedPositionID != nil {
		query = query.Set("applied_position_id", *req.AppliedPositionID)
	}
	if req.Status != nil {
		query = query.Set("status", *req.Status)
	}
	if req.InterviewNotes != nil {
		query = query.Set("interview_notes", *req.InterviewNotes)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCandidateNotFound
	}

	return nil
}

// Delete removes a candidate by ID.
// A zero-rows-affected result is reported as ErrCandidateNotFound.
func (r *CandidateRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("candidates").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCandidateNotFound
	}

	return nil
}
