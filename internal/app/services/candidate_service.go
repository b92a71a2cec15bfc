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

// CandidateStore is the candidate persistence surface services depend on
type CandidateStore interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	GetByID(ctx context.Context, id int64) (*models.Candidate, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, page, pageSize int, filter dto.CandidateFilter) ([]models.Candidate, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCandidateRequest) error
	Delete(ctx context.Context, id int64) error
}

// HistoryStore is the candidate history persistence surface services depend on
type HistoryStore interface {
	Create(ctx context.Context, entry *models.CandidateHistory) error
	ListByCandidate(ctx context.Context, candidateID int64) ([]models.CandidateHistory, error)
}

// CandidateService handles candidate and candidate history operations
type CandidateService struct {
	candidateRepo CandidateStore
	historyRepo   HistoryStore
	positionRepo  PositionStore
	meetingRepo   MeetingStore
}

// NewCandidateService creates a new CandidateService
func NewCandidateService(
	candidateRepo CandidateStore,
	historyRepo HistoryStore,
	positionRepo PositionStore,
	meetingRepo MeetingStore,
) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		historyRepo:   historyRepo,
		positionRepo:  positionRepo,
		meetingRepo:   meetingRepo,
	}
}

// Create registers a new candidate. The email must be unused and the
// applied position must exist.
func (s *CandidateService) Create(ctx context.Context, req *dto.CreateCandidateRequest) (*dto.CandidateResponse, error) {
	exists, err := s.candidateRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking candidate email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCandidateEmailExists
	}

	positionExists, err := s.positionRepo.AppliedPositionExists(ctx, req.AppliedPositionID)
	if err != nil {
		return nil, fmt.Errorf("error checking applied position: %w", err)
	}
	if !positionExists {
		return nil, apperrors.ErrPositionNotFound
	}

	status := models.CandidateApplied
	if req.Status != "" {
		status = models.CandidateStatus(req.Status)
	}

	candidate := &models.Candidate{
		Name:              req.Name,
		Email:             req.Email,
		AppliedPositionID: req.AppliedPositionID,
		Status:            status,
		InterviewNotes:    req.InterviewNotes,
	}

	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrCandidateEmailExists
		}
		return nil, fmt.Errorf("error creating candidate: %w", err)
	}

	logger.Info().Int64("candidateId", candidate.ID).Msg("Candidate created")

	resp := dto.FromCandidate(candidate)
	return &resp, nil
}

// GetByID retrieves a candidate with its applied position
func (s *CandidateService) GetByID(ctx context.Context, id int64) (*dto.CandidateResponse, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving candidate: %w", err)
	}
	if candidate == nil {
		return nil, apperrors.ErrCandidateNotFound
	}

	resp := dto.FromCandidate(candidate)
	return &resp, nil
}

// List retrieves a page of candidates matching the optional filters
func (s *CandidateService) List(ctx context.Context, page, pageSize int, filter dto.CandidateFilter) (*dto.CandidateListResponse, error) {
	page, pageSize = helpers.NormalizePagination(page, pageSize)

	candidates, total, err := s.candidateRepo.List(ctx, page, pageSize, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing candidates: %w", err)
	}

	responses := make([]dto.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		responses = append(responses, dto.FromCandidate(&candidates[i]))
	}

	return &dto.CandidateListResponse{
		Candidates: responses,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// Update applies a partial update. The updated row is returned so the
// client sees the result of the write, not its own input echoed back.
func (s *CandidateService) Update(ctx context.Context, id int64, req *dto.UpdateCandidateRequest) (*dto.CandidateResponse, error) {
	if req.AppliedPositionID != nil {
		positionExists, err := s.positionRepo.AppliedPositionExists(ctx, *req.AppliedPositionID)
		if err != nil {
			return nil, fmt.Errorf("error checking applied position: %w", err)
		}
		if !positionExists {
			return nil, apperrors.ErrPositionNotFound
		}
	}

	err := s.candidateRepo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCandidateNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrCandidateEmailExists
		}
		return nil, fmt.Errorf("error updating candidate: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Delete removes a candidate permanently
func (s *CandidateService) Delete(ctx context.Context, id int64) error {
	err := s.candidateRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCandidateNotFound) {
			return apperrors.ErrCandidateNotFound
		}
		return fmt.Errorf("error deleting candidate: %w", err)
	}

	logger.Info().Int64("candidateId", id).Msg("Candidate deleted")
	return nil
}

// AddHistory records a feedback entry for a candidate. The candidate must
// exist; when a meeting is referenced it must exist too.
func (s *CandidateService) AddHistory(ctx context.Context, candidateID int64, req *dto.CreateHistoryRequest) (*dto.HistoryResponse, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving candidate: %w", err)
	}
	if candidate == nil {
		return nil, apperrors.ErrCandidateNotFound
	}

	if req.MeetingID != nil {
		meeting, err := s.meetingRepo.GetByID(ctx, *req.MeetingID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving meeting: %w", err)
		}
		if meeting == nil {
			return nil, apperrors.ErrMeetingNotFound
		}
	}

	entry := &models.CandidateHistory{
		CandidateID: candidateID,
		MeetingID:   req.MeetingID,
		Feedback:    req.Feedback,
	}

	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("error creating history entry: %w", err)
	}

	resp := dto.FromCandidateHistory(entry)
	return &resp, nil
}

// ListHistory retrieves a candidate's feedback entries, most recent first
func (s *CandidateService) ListHistory(ctx context.Context, candidateID int64) ([]dto.HistoryResponse, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving candidate: %w", err)
	}
	if candidate == nil {
		return nil, apperrors.ErrCandidateNotFound
	}

	entries, err := s.historyRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("error listing history: %w", err)
	}

	responses := make([]dto.HistoryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, dto.FromCandidateHistory(&entries[i]))
	}

	return responses, nil
}
