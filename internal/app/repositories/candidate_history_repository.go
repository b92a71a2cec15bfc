package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
)

// CandidateHistoryRepository handles database operations for candidate history entries
type CandidateHistoryRepository struct {
	db *pgxpool.Pool
}

// NewCandidateHistoryRepository creates a new CandidateHistoryRepository
func NewCandidateHistoryRepository(db *pgxpool.Pool) *CandidateHistoryRepository {
	return &CandidateHistoryRepository{db: db}
}

// Create inserts a new history entry and fills in the generated fields
func (r *CandidateHistoryRepository) Create(ctx context.Context, entry *models.CandidateHistory) error {
	query := squirrel.Insert("candidate_histories").
		Columns("candidate_id", "meeting_id", "feedback").
		Values(entry.CandidateID, entry.MeetingID, entry.Feedback).
		Suffix("RETURNING id, recorded_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.RecordedAt)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// ListByCandidate retrieves a candidate's history entries ordered by most
// recent first, each carrying its meeting summary when one is referenced.
func (r *CandidateHistoryRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]models.CandidateHistory, error) {
	query := squirrel.Select(
		"ch.id", "ch.candidate_id", "ch.meeting_id", "ch.feedback", "ch.recorded_at",
		"m.id", "m.title", "m.start_time",
	).
		From("candidate_histories ch").
		LeftJoin("meetings m ON m.id = ch.meeting_id").
		Where("ch.candidate_id = ?", candidateID).
		OrderBy("ch.recorded_at DESC").
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

	var entries []models.CandidateHistory
	for rows.Next() {
		var entry models.CandidateHistory
		var meetingID *int64
		var meetingTitle *string
		var meetingStart *time.Time
		err := rows.Scan(
			&entry.ID,
			&entry.CandidateID,
			&entry.MeetingID,
			&entry.Feedback,
			&entry.RecordedAt,
			&meetingID,
			&meetingTitle,
			&meetingStart,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if meetingID != nil {
			entry.Meeting = &models.Meeting{
				ID:        *meetingID,
				Title:     *meetingTitle,
				StartTime: *meetingStart,
			}
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
