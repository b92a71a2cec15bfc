package dto

import (
	"time"

	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
)

// CreateCandidateRequest represents candidate creation data
type CreateCandidateRequest struct {
	Name              string  `json:"name" binding:"required,min=2,max=100"`
	Email             string  `json:"email" binding:"required,email"`
	AppliedPositionID int64   `json:"appliedPositionId" binding:"required,gt=0"`
	Status            string  `json:"status" binding:"omitempty,oneof=applied screening interview offer rejected hired"`
	InterviewNotes    *string `json:"interviewNotes"`
}

// UpdateCandidateRequest represents a partial candidate update
type UpdateCandidateRequest struct {
	Name              *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email             *string `json:"email" binding:"omitempty,email"`
	AppliedPositionID *int64  `json:"appliedPositionId" binding:"omitempty,gt=0"`
	Status            *string `json:"status" binding:"omitempty,oneof=applied screening interview offer rejected hired"`
	InterviewNotes    *string `json:"interviewNotes"`
}

// CandidateFilter carries the optional list filters. Search matches name OR
// email case-insensitively; status is an exact match; both combine with AND.
type CandidateFilter struct {
	Search *string
	Status *string
}

// CandidateResponse represents candidate information returned to clients
type CandidateResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	AppliedPositionID int64     `json:"appliedPositionId"`
	Status            string    `json:"status"`
	InterviewNotes    *string   `json:"interviewNotes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	AppliedPosition *models.AppliedPosition `json:"appliedPosition,omitempty"`
}

// CandidateSummary is the compact candidate projection embedded in related responses
type CandidateSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CandidateListResponse represents a page of candidates with pagination metadata
type CandidateListResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Pagination PaginationInfo      `json:"pagination"`
}

// FromCandidate converts a candidate row to its response projection
func FromCandidate(candidate *models.Candidate) CandidateResponse {
	if candidate == nil {
		return CandidateResponse{}
	}
	return CandidateResponse{
		ID:                candidate.ID,
		Name:              candidate.Name,
		Email:             candidate.Email,
		AppliedPositionID: candidate.AppliedPositionID,
		Status:            string(candidate.Status),
		InterviewNotes:    candidate.InterviewNotes,
		CreatedAt:         candidate.CreatedAt,
		UpdatedAt:         candidate.UpdatedAt,
		AppliedPosition:   candidate.AppliedPosition,
	}
}

// CreateHistoryRequest represents a new feedback entry for a candidate
type CreateHistoryRequest struct {
	MeetingID *int64 `json:"meetingId" binding:"omitempty,gt=0"`
	Feedback  string `json:"feedback" binding:"required,min=1"`
}

// HistoryResponse represents one candidate history entry. The meeting
// projection is present only when the entry references a meeting.
type HistoryResponse struct {
	ID          int64           `json:"id"`
	CandidateID int64           `json:"candidateId"`
	MeetingID   *int64          `json:"meetingId,omitempty"`
	Feedback    string          `json:"feedback"`
	RecordedAt  time.Time       `json:"recordedAt"`
	Meeting     *MeetingSummary `json:"meeting,omitempty"`
}

// FromCandidateHistory converts a history row to its response projection
func FromCandidateHistory(entry *models.CandidateHistory) HistoryResponse {
	if entry == nil {
		return HistoryResponse{}
	}
	resp := HistoryResponse{
		ID:          entry.ID,
		CandidateID: entry.CandidateID,
		MeetingID:   entry.MeetingID,
		Feedback:    entry.Feedback,
		RecordedAt:  entry.RecordedAt,
	}
	if entry.Meeting != nil {
		resp.Meeting = &MeetingSummary{
			ID:        entry.Meeting.ID,
			Title:     entry.Meeting.Title,
			StartTime: entry.Meeting.StartTime,
		}
	}
	return resp
}
