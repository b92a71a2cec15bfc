package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/dberrors"
)

// ParticipantRepository handles database operations for interview participants
type ParticipantRepository struct {
	db *pgxpool.Pool
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// Add inserts a participant row. A unique violation on (meeting_id, user_id)
// is reported as ErrParticipantExists so callers can map it to 400, not 500.
func (r *ParticipantRepository) Add(ctx context.Context, meetingID, userID int64) (*models.InterviewParticipant, error) {
	query := squirrel.Insert("interview_participants").
		Columns("meeting_id", "user_id").
		Values(meetingID, userID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	participant := &models.InterviewParticipant{
		MeetingID: meetingID,
		UserID:    userID,
	}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&participant.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrParticipantExists
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return participant, nil
}

// Remove deletes a participant by its composite key.
// "No such row" is reported as ErrParticipantNotFound.
func (r *ParticipantRepository) Remove(ctx context.Context, meetingID, userID int64) error {
	query := squirrel.Delete("interview_participants").
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
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
		return apperrors.ErrParticipantNotFound
	}

	return nil
}

// ListByMeeting retrieves all participants of a meeting with their user summary
func (r *ParticipantRepository) ListByMeeting(ctx context.Context, meetingID int64) ([]models.InterviewParticipant, error) {
	query := squirrel.Select("ip.id", "ip.meeting_id", "ip.user_id", "u.id", "u.name", "u.email").
		From("interview_participants ip").
		Join("users u ON u.id = ip.user_id").
		Where("ip.meeting_id = ?", meetingID).
		OrderBy("ip.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var participants []models.InterviewParticipant
	for rows.Next() {
		var participant models.InterviewParticipant
		var user models.User
		err := rows.Scan(
			&participant.ID,
			&participant.MeetingID,
			&participant.UserID,
			&user.ID,
			&user.Name,
			&user.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		participant.User = &user
		participants = append(participants, participant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}
