package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/dberrors"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/helpers"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/logger"
)

// MeetingStore is the meeting persistence surface services depend on
type MeetingStore interface {
	CreateWithParticipants(ctx context.Context, meeting *models.Meeting, participantIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Meeting, error)
	List(ctx context.Context, page, pageSize int, includeDeleted bool) ([]models.Meeting, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMeetingRequest) error
	SoftDelete(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}

// ParticipantStore is the participant persistence surface services depend on
type ParticipantStore interface {
	Add(ctx context.Context, meetingID, userID int64) (*models.InterviewParticipant, error)
	Remove(ctx context.Context, meetingID, userID int64) error
	ListByMeeting(ctx context.Context, meetingID int64) ([]models.InterviewParticipant, error)
}

// MeetingService handles meeting and participant operations
type MeetingService struct {
	meetingRepo     MeetingStore
	participantRepo ParticipantStore
	candidateRepo   CandidateStore
	userRepo        UserStore
}

// NewMeetingService creates a new MeetingService
func NewMeetingService(
	meetingRepo MeetingStore,
	participantRepo ParticipantStore,
	candidateRepo CandidateStore,
	userRepo UserStore,
) *MeetingService {
	return &MeetingService{
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
		candidateRepo:   candidateRepo,
		userRepo:        userRepo,
	}
}

// Create schedules a new meeting for the given organizer, inserting the
// meeting and its participant rows in one transaction.
func (s *MeetingService) Create(ctx context.Context, organizerID int64, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if req.CandidateID != nil {
		candidate, err := s.candidateRepo.GetByID(ctx, *req.CandidateID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving candidate: %w", err)
		}
		if candidate == nil {
			return nil, apperrors.ErrCandidateNotFound
		}
	}

	status := models.MeetingPending
	if req.Status != "" {
		status = models.MeetingStatus(req.Status)
	}

	meeting := &models.Meeting{
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		MeetingType: models.MeetingType(req.MeetingType),
		Notes:       req.Notes,
		Status:      status,
		UserID:      organizerID,
		CandidateID: req.CandidateID,
	}

	err := s.meetingRepo.CreateWithParticipants(ctx, meeting, req.ParticipantIDs)
	if err != nil {
		if errors.Is(err, apperrors.ErrParticipantExists) {
			return nil, apperrors.ErrParticipantExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewBadRequestError("One or more participant users do not exist")
		}
		return nil, fmt.Errorf("error creating meeting: %w", err)
	}

	logger.Info().Int64("meetingId", meeting.ID).Int64("organizerId", organizerID).Msg("Meeting created")

	return s.GetByID(ctx, meeting.ID)
}

// GetByID retrieves a meeting with its candidate summary. Soft-deleted
// meetings remain retrievable by ID.
func (s *MeetingService) GetByID(ctx context.Context, id int64) (*dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving meeting: %w", err)
	}
	if meeting == nil {
		return nil, apperrors.ErrMeetingNotFound
	}

	resp := dto.FromMeeting(meeting)
	return &resp, nil
}

// List retrieves a page of active meetings, most recent start first
func (s *MeetingService) List(ctx context.Context, page, pageSize int) (*dto.MeetingListResponse, error) {
	page, pageSize = helpers.NormalizePagination(page, pageSize)

	meetings, total, err := s.meetingRepo.List(ctx, page, pageSize, false)
	if err != nil {
		return nil, fmt.Errorf("error listing meetings: %w", err)
	}

	responses := make([]dto.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		responses = append(responses, dto.FromMeeting(&meetings[i]))
	}

	return &dto.MeetingListResponse{
		Meetings:   responses,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// Update applies a partial update to a meeting. When both times are
// supplied the range is validated; a single supplied time is validated
// against the stored counterpart.
func (s *MeetingService) Update(ctx context.Context, id int64, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error) {
	if req.StartTime != nil || req.EndTime != nil {
		start := req.StartTime
		end := req.EndTime
		if start == nil || end == nil {
			current, err := s.meetingRepo.GetByID(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("error retrieving meeting: %w", err)
			}
			if current == nil {
				return nil, apperrors.ErrMeetingNotFound
			}
			if start == nil {
				start = &current.StartTime
			}
			if end == nil {
				end = &current.EndTime
			}
		}
		if !end.After(*start) {
			return nil, apperrors.ErrInvalidDateRange
		}
	}

	if req.CandidateID != nil {
		candidate, err := s.candidateRepo.GetByID(ctx, *req.CandidateID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving candidate: %w", err)
		}
		if candidate == nil {
			return nil, apperrors.ErrCandidateNotFound
		}
	}

	err := s.meetingRepo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMeetingNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("error updating meeting: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Delete soft-deletes a meeting. Already-deleted meetings report not found.
func (s *MeetingService) Delete(ctx context.Context, id int64) error {
	err := s.meetingRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMeetingNotFound) {
			return apperrors.ErrMeetingNotFound
		}
		return fmt.Errorf("error deleting meeting: %w", err)
	}

	logger.Info().Int64("meetingId", id).Msg("Meeting soft-deleted")
	return nil
}

// HardDelete removes a meeting row permanently
func (s *MeetingService) HardDelete(ctx context.Context, id int64) error {
	err := s.meetingRepo.HardDelete(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrMeetingNotFound, apperrors.ErrMeetingHasRelated) {
			return err
		}
		return fmt.Errorf("error deleting meeting: %w", err)
	}

	logger.Info().Int64("meetingId", id).Msg("Meeting hard-deleted")
	return nil
}

// AddParticipant adds a user to a meeting. The meeting and user must both
// exist; adding the same user twice is rejected.
func (s *MeetingService) AddParticipant(ctx context.Context, meetingID, userID int64) (*dto.ParticipantResponse, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving meeting: %w", err)
	}
	if meeting == nil {
		return nil, apperrors.ErrMeetingNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	participant, err := s.participantRepo.Add(ctx, meetingID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrParticipantExists) {
			return nil, apperrors.ErrParticipantExists
		}
		return nil, fmt.Errorf("error adding participant: %w", err)
	}
	participant.User = user

	resp := dto.FromParticipant(participant)
	return &resp, nil
}

// RemoveParticipant removes a user from a meeting
func (s *MeetingService) RemoveParticipant(ctx context.Context, meetingID, userID int64) error {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return fmt.Errorf("error retrieving meeting: %w", err)
	}
	if meeting == nil {
		return apperrors.ErrMeetingNotFound
	}

	err = s.participantRepo.Remove(ctx, meetingID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrParticipantNotFound) {
			return apperrors.ErrParticipantNotFound
		}
		return fmt.Errorf("error removing participant: %w", err)
	}

	return nil
}

// ListParticipants retrieves the users attending a meeting
func (s *MeetingService) ListParticipants(ctx context.Context, meetingID int64) ([]dto.ParticipantResponse, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving meeting: %w", err)
	}
	if meeting == nil {
		return nil, apperrors.ErrMeetingNotFound
	}

	participants, err := s.participantRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("error listing participants: %w", err)
	}

	responses := make([]dto.ParticipantResponse, 0, len(participants))
	for i := range participants {
		responses = append(responses, dto.FromParticipant(&participants[i]))
	}

	return responses, nil
}
