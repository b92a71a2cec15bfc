package models

import (
	"time"
)

// CandidateStatus defines where a candidate is in the hiring funnel
type CandidateStatus string

const (
	CandidateApplied   CandidateStatus = "applied"
	CandidateScreening CandidateStatus = "screening"
	CandidateInterview CandidateStatus = "interview"
	CandidateOffer     CandidateStatus = "offer"
	CandidateRejected  CandidateStatus = "rejected"
	CandidateHired     CandidateStatus = "hired"
)

// Candidate defines the candidate model based on the 'candidates' table
type Candidate struct {
	ID                int64           `json:"id" db:"id"`
	Name              string          `json:"name" db:"name"`
	Email             string          `json:"email" db:"email"`
	AppliedPositionID int64           `json:"appliedPositionId" db:"applied_position_id"`
	Status            CandidateStatus `json:"status" db:"status"`
	InterviewNotes    *string         `json:"interviewNotes,omitempty" db:"interview_notes"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time       `json:"updatedAt" db:"updated_at"`

	AppliedPosition *AppliedPosition `json:"appliedPosition,omitempty"` // relation, no db tag
}

// CandidateHistory defines a feedback entry based on the 'candidate_histories' table
type CandidateHistory struct {
	ID          int64     `json:"id" db:"id"`
	CandidateID int64     `json:"candidateId" db:"candidate_id"`
	MeetingID   *int64    `json:"meetingId,omitempty" db:"meeting_id"`
	Feedback    string    `json:"feedback" db:"feedback"`
	RecordedAt  time.Time `json:"recordedAt" db:"recorded_at"`

	Meeting *Meeting `json:"meeting,omitempty"` // relation, no db tag
}
