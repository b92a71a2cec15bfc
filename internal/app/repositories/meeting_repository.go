package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/db"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/dberrors"
)

const meetingColumns = "m.id, m.title, m.start_time, m.end_time, m.location, m.meeting_type, m.notes, m.status, m.user_id, m.candidate_id, m.deleted_at, m.created_at, m.updated_at"

// MeetingRepository handles database operations for meetings
type MeetingRepository struct {
	db *pgxpool.Pool
}

// NewMeetingRepository creates a new MeetingRepository
func NewMeetingRepository(db *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// CreateWithParticipants inserts the meeting row and, when participantIDs is
// non-empty, one join row per participant in the same transaction. A failed
// participant insert rolls back the meeting insert.
func (r *MeetingRepository) CreateWithParticipants(ctx context.Context, meeting *models.Meeting, participantIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insert := squirrel.Insert("meetings").
			Columns("title", "start_time", "end_time", "location", "meeting_type", "notes", "status", "user_id", "candidate_id").
			Values(meeting.Title, meeting.StartTime, meeting.EndTime, meeting.Location, meeting.MeetingType, meeting.Notes, meeting.Status, meeting.UserID, meeting.CandidateID).
			Suffix("RETURNING id, created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&meeting.ID, &meeting.CreatedAt, &meeting.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error executing query: %w", err)
		}

		for _, userID := range participantIDs {
			_, err := tx.Exec(ctx,
				`INSERT INTO interview_participants (meeting_id, user_id) VALUES ($1, $2)`,
				meeting.ID, userID)
			if err != nil {
				if dberrors.IsUniqueViolation(err) {
					return apperrors.ErrParticipantExists
				}
				return fmt.Errorf("error inserting participant: %w", err)
			}
		}

		return nil
	})
}

// GetByID retrieves a meeting with its candidate summary when present.
// Soft-deleted meetings are included. Returns (nil, nil) when absent.
func (r *MeetingRepository) GetByID(ctx context.Context, id int64) (*models.Meeting, error) {
	query := squirrel.Select(meetingColumns, "c.id", "c.name", "c.email").
		From("meetings m").
		LeftJoin("candidates c ON c.id = m.candidate_id").
		Where("m.id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var meeting models.Meeting
	var candidateID *int64
	var candidateName, candidateEmail *string
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&meeting.ID,
		&meeting.Title,
		&meeting.StartTime,
		&meeting.EndTime,
		&meeting.Location,
		&meeting.MeetingType,
		&meeting.Notes,
		&meeting.Status,
		&meeting.UserID,
		&meeting.CandidateID,
		&meeting.DeletedAt,
		&meeting.CreatedAt,
		&meeting.UpdatedAt,
		&candidateID,
		&candidateName,
		&candidateEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	if candidateID != nil {
		meeting.Candidate = &models.Candidate{
			ID:    *candidateID,
			Name:  *candidateName,
			Email: *candidateEmail,
		}
	}

	return &meeting, nil
}

// List retrieves a page of meetings ordered by most recent start time.
// Soft-deleted meetings are excluded unless includeDeleted is set.
func (r *MeetingRepository) List(ctx context.Context, page, pageSize int, includeDeleted bool) ([]models.Meeting, int64, error) {
	offset := (page - 1) * pageSize

	query := squirrel.Select(meetingColumns, "COUNT(*) OVER()").
		From("meetings m").
		PlaceholderFormat(squirrel.Dollar)

	if !includeDeleted {
		query = query.Where("m.deleted_at IS NULL")
	}

	query = query.OrderBy("m.start_time DESC").
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

	var meetings []models.Meeting
	var total int64

	for rows.Next() {
		var meeting models.Meeting
		err := rows.Scan(
			&meeting.ID,
			&meeting.Title,
			&meeting.StartTime,
			&meeting.EndTime,
			&meeting.Location,
			&meeting.MeetingType,
			&meeting.Notes,
			&meeting.Status,
			&meeting.UserID,
			&meeting.CandidateID,
			&meeting.DeletedAt,
			&meeting.CreatedAt,
			&meeting.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		meetings = append(meetings, meeting)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return meetings, total, nil
}

// Update applies a partial update; only supplied fields are written.
// Participant membership never passes through here. A zero-rows-affected
// result is reported as ErrMeetingNotFound, which covers both a missing
// row and one deleted between lookup and write.
func (r *MeetingRepository) Update(ctx context.Context, id int64, req *dto.UpdateMeetingRequest) error {
	query := squirrel.Update("meetings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if req.Title != nil {
		query = query.Set("title", *req.Title)
	}
	if req.StartTime != nil {
		query = query.Set("start_time", *req.StartTime)
	}
	if req.EndTime != nil {
		query = query.Set("end_time", *req.EndTime)
	}
	if req.Location != nil {
		query = query.Set("location", *req.Location)
	}
	if req.MeetingType != nil {
		query = query.Set("meeting_type", *req.MeetingType)
	}
	if req.Notes != nil {
		query = query.Set("notes", *req.Notes)
	}
	if req.Status != nil {
		query = query.Set("status", *req.Status)
	}
	if req.CandidateID != nil {
		query = query.Set("candidate_id", *req.CandidateID)
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
		return apperrors.ErrMeetingNotFound
	}

	return nil
}

// SoftDelete marks a meeting as deleted by stamping deleted_at. Only active
// rows qualify, so deleting twice reports ErrMeetingNotFound.
func (r *MeetingRepository) SoftDelete(ctx context.Context, id int64) error {
	query := squirrel.Update("meetings").
		Set("deleted_at", time.Now()).
		Where("id = ? AND deleted_at IS NULL", id).
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
		return apperrors.ErrMeetingNotFound
	}

	return nil
}

// HardDelete removes the meeting row. A foreign key violation from dependent
// rows is surfaced as ErrMeetingHasRelated.
func (r *MeetingRepository) HardDelete(ctx context.Context, id int64) error {
	query := squirrel.Delete("meetings").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrMeetingHasRelated
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMeetingNotFound
	}

	return nil
}
