package dto

import (
	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
)

// AddParticipantRequest represents a request to add a user to a meeting
type AddParticipantRequest struct {
	UserID int64 `json:"userId" binding:"required,gt=0"`
}

// UserSummary is the compact user projection embedded in participant responses
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ParticipantResponse represents one interview participant row
type ParticipantResponse struct {
	ID        int64        `json:"id"`
	MeetingID int64        `json:"meetingId"`
	UserID    int64        `json:"userId"`
	User      *UserSummary `json:"user,omitempty"`
}

// FromParticipant converts a participant row to its response projection
func FromParticipant(participant *models.InterviewParticipant) ParticipantResponse {
	if participant == nil {
		return ParticipantResponse{}
	}
	resp := ParticipantResponse{
		ID:        participant.ID,
		MeetingID: participant.MeetingID,
		UserID:    participant.UserID,
	}
	if participant.User != nil {
		resp.User = &UserSummary{
			ID:    participant.User.ID,
			Name:  participant.User.Name,
			Email: participant.User.Email,
		}
	}
	return resp
}
