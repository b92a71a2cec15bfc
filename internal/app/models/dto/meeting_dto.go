package dto

import (
	"time"

	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
)

// CreateMeetingRequest represents meeting creation data.
// participantIds is optional; an absent field and an empty list both
// result in no participant rows.
type CreateMeetingRequest struct {
	Title          string    `json:"title" binding:"required,min=2,max=200"`
	StartTime      time.Time `json:"startTime" binding:"required"`
	EndTime        time.Time `json:"endTime" binding:"required"`
	Location       *string   `json:"location" binding:"omitempty,max=200"`
	MeetingType    string    `json:"meetingType" binding:"required,oneof=onsite zoom google_meet"`
	Notes          *string   `json:"notes"`
	Status         string    `json:"status" binding:"omitempty,oneof=confirmed pending"`
	CandidateID    *int64    `json:"candidateId" binding:"omitempty,gt=0"`
	ParticipantIDs []int64   `json:"participantIds" binding:"omitempty,dive,gt=0"`
}

// UpdateMeetingRequest represents a partial meeting update. Only supplied
// fields are written. Participant membership is managed exclusively through
// the participant endpoints, so this request carries no participant field
// and any participantIds key in the body is discarded by binding.
type UpdateMeetingRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=2,max=200"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Location    *string    `json:"location" binding:"omitempty,max=200"`
	MeetingType *string    `json:"meetingType" binding:"omitempty,oneof=onsite zoom google_meet"`
	Notes       *string    `json:"notes"`
	Status      *string    `json:"status" binding:"omitempty,oneof=confirmed pending"`
	CandidateID *int64     `json:"candidateId" binding:"omitempty,gt=0"`
}

// MeetingResponse represents meeting information returned to clients
type MeetingResponse struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	StartTime   time.Time          `json:"startTime"`
	EndTime     time.Time          `json:"endTime"`
	Location    *string            `json:"location,omitempty"`
	MeetingType string             `json:"meetingType"`
	Notes       *string            `json:"notes,omitempty"`
	Status      string             `json:"status"`
	UserID      int64              `json:"userId"`
	CandidateID *int64             `json:"candidateId,omitempty"`
	DeletedAt   *time.Time         `json:"deletedAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Candidate   *CandidateSummary  `json:"candidate,omitempty"`
}

// MeetingSummary is the compact meeting projection embedded in related responses
type MeetingSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
}

// MeetingListResponse represents a page of meetings with pagination metadata
type MeetingListResponse struct {
	Meetings   []MeetingResponse `json:"meetings"`
	Pagination PaginationInfo    `json:"pagination"`
}

// FromMeeting converts a meeting row to its response projection
func FromMeeting(meeting *models.Meeting) MeetingResponse {
	if meeting == nil {
		return MeetingResponse{}
	}
	resp := MeetingResponse{
		ID:          meeting.ID,
		Title:       meeting.Title,
		StartTime:   meeting.StartTime,
		EndTime:     meeting.EndTime,
		Location:    meeting.Location,
		MeetingType: string(meeting.MeetingType),
		Notes:       meeting.Notes,
		Status:      string(meeting.Status),
		UserID:      meeting.UserID,
		CandidateID: meeting.CandidateID,
		DeletedAt:   meeting.DeletedAt,
		CreatedAt:   meeting.CreatedAt,
		UpdatedAt:   meeting.UpdatedAt,
	}
	if meeting.Candidate != nil {
		resp.Candidate = &CandidateSummary{
			ID:    meeting.Candidate.ID,
			Name:  meeting.Candidate.Name,
			Email: meeting.Candidate.Email,
		}
	}
	return resp
}
