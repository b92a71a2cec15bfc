package models

import (
	"time"
)

// MeetingType defines how a meeting is held
type MeetingType string

const (
	MeetingOnsite     MeetingType = "onsite"
	MeetingZoom       MeetingType = "zoom"
	MeetingGoogleMeet MeetingType = "google_meet"
)

// MeetingStatus defines the confirmation state of a meeting
type MeetingStatus string

const (
	MeetingConfirmed MeetingStatus = "confirmed"
	MeetingPending   MeetingStatus = "pending"
)

// Meeting defines the meeting model based on the 'meetings' table.
// A nil DeletedAt means the meeting is active; soft-deleted rows are
// excluded from default listings but still retrievable by ID.
type Meeting struct {
	ID          int64         `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	StartTime   time.Time     `json:"startTime" db:"start_time"`
	EndTime     time.Time     `json:"endTime" db:"end_time"`
	Location    *string       `json:"location,omitempty" db:"location"`
	MeetingType MeetingType   `json:"meetingType" db:"meeting_type"`
	Notes       *string       `json:"notes,omitempty" db:"notes"`
	Status      MeetingStatus `json:"status" db:"status"`
	UserID      int64         `json:"userId" db:"user_id"` // organizer
	CandidateID *int64        `json:"candidateId,omitempty" db:"candidate_id"`
	DeletedAt   *time.Time    `json:"deletedAt,omitempty" db:"deleted_at"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`

	Organizer *User      `json:"organizer,omitempty"` // relation, no db tag
	Candidate *Candidate `json:"candidate,omitempty"` // relation, no db tag
}

// InterviewParticipant joins users to the meetings they attend,
// based on the 'interview_participants' table. (meeting_id, user_id) is unique.
type InterviewParticipant struct {
	ID        int64 `json:"id" db:"id"`
	MeetingID int64 `json:"meetingId" db:"meeting_id"`
	UserID    int64 `json:"userId" db:"user_id"`

	User *User `json:"user,omitempty"` // relation, no db tag
}
