package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
)

type fakeUserStore struct {
	mu     sync.Mutex
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (r *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	user, err := r.GetByEmail(ctx, email)
	return user != nil, err
}

func (r *fakeUserStore) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		user.LastLogin = &at
	}
	return nil
}

func (r *fakeUserStore) List(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, *user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, page, pageSize), int64(len(r.users)), nil
}

type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) GenerateToken(user *models.User) (string, int, error) {
	if f.err != nil {
		return "", 0, f.err
	}
	return "test-token", 3600, nil
}

type fakeCandidateStore struct {
	mu         sync.Mutex
	candidates map[int64]*models.Candidate
	nextID     int64
}

func newFakeCandidateStore() *fakeCandidateStore {
	return &fakeCandidateStore{candidates: make(map[int64]*models.Candidate), nextID: 1}
}

func (r *fakeCandidateStore) Create(ctx context.Context, candidate *models.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate.ID = r.nextID
	r.nextID++
	now := time.Now()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now
	clone := *candidate
	r.candidates[candidate.ID] = &clone
	return nil
}

func (r *fakeCandidateStore) GetByID(ctx context.Context, id int64) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate, ok := r.candidates[id]
	if !ok {
		return nil, nil
	}
	clone := *candidate
	return &clone, nil
}

func (r *fakeCandidateStore) EmailExists(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, candidate := range r.candidates {
		if candidate.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCandidateStore) List(ctx context.Context, page, pageSize int, filter dto.CandidateFilter) ([]models.Candidate, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Candidate
	for _, candidate := range r.candidates {
		if filter.Search != nil {
			needle := strings.ToLower(*filter.Search)
			if !strings.Contains(strings.ToLower(candidate.Name), needle) &&
				!strings.Contains(strings.ToLower(candidate.Email), needle) {
				continue
			}
		}
		if filter.Status != nil && string(candidate.Status) != *filter.Status {
			continue
		}
		matched = append(matched, *candidate)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := int64(len(matched))
	return paginate(matched, page, pageSize), total, nil
}

func (r *fakeCandidateStore) Update(ctx context.Context, id int64, req *dto.UpdateCandidateRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate, ok := r.candidates[id]
	if !ok {
		return apperrors.ErrCandidateNotFound
	}
	if req.Name != nil {
		candidate.Name = *req.Name
	}
	if req.Email != nil {
		candidate.Email = *req.Email
	}
	if req.AppliedPositionID != nil {
		candidate.AppliedPositionID = *req.AppliedPositionID
	}
	if req.Status != nil {
		candidate.Status = models.CandidateStatus(*req.Status)
	}
	if req.InterviewNotes != nil {
		candidate.InterviewNotes = req.InterviewNotes
	}
	candidate.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCandidateStore) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.candidates[id]; !ok {
		return apperrors.ErrCandidateNotFound
	}
	delete(r.candidates, id)
	return nil
}

type fakeMeetingStore struct {
	mu           sync.Mutex
	meetings     map[int64]*models.Meeting
	participants map[int64][]int64
	nextID       int64
}

func newFakeMeetingStore() *fakeMeetingStore {
	return &fakeMeetingStore{
		meetings:     make(map[int64]*models.Meeting),
		participants: make(map[int64][]int64),
		nextID:       1,
	}
}

func (r *fakeMeetingStore) CreateWithParticipants(ctx context.Context, meeting *models.Meeting, participantIDs []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[int64]bool)
	for _, userID := range participantIDs {
		if seen[userID] {
			return apperrors.ErrParticipantExists
		}
		seen[userID] = true
	}
	meeting.ID = r.nextID
	r.nextID++
	now := time.Now()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now
	clone := *meeting
	r.meetings[meeting.ID] = &clone
	r.participants[meeting.ID] = append([]int64(nil), participantIDs...)
	return nil
}

func (r *fakeMeetingStore) GetByID(ctx context.Context, id int64) (*models.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	meeting, ok := r.meetings[id]
	if !ok {
		return nil, nil
	}
	clone := *meeting
	return &clone, nil
}

func (r *fakeMeetingStore) List(ctx context.Context, page, pageSize int, includeDeleted bool) ([]models.Meeting, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Meeting
	for _, meeting := range r.meetings {
		if !includeDeleted && meeting.DeletedAt != nil {
			continue
		}
		matched = append(matched, *meeting)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].StartTime.After(matched[j].StartTime) })
	total := int64(len(matched))
	return paginate(matched, page, pageSize), total, nil
}

func (r *fakeMeetingStore) Update(ctx context.Context, id int64, req *dto.UpdateMeetingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	meeting, ok := r.meetings[id]
	if !ok {
		return apperrors.ErrMeetingNotFound
	}
	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.StartTime != nil {
		meeting.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		meeting.EndTime = *req.EndTime
	}
	if req.Location != nil {
		meeting.Location = req.Location
	}
	if req.MeetingType != nil {
		meeting.MeetingType = models.MeetingType(*req.MeetingType)
	}
	if req.Notes != nil {
		meeting.Notes = req.Notes
	}
	if req.Status != nil {
		meeting.Status = models.MeetingStatus(*req.Status)
	}
	if req.CandidateID != nil {
		meeting.CandidateID = req.CandidateID
	}
	meeting.UpdatedAt = time.Now()
	return nil
}

func (r *fakeMeetingStore) SoftDelete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	meeting, ok := r.meetings[id]
	if !ok || meeting.DeletedAt != nil {
		return apperrors.ErrMeetingNotFound
	}
	now := time.Now()
	meeting.DeletedAt = &now
	return nil
}

func (r *fakeMeetingStore) HardDelete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.meetings[id]; !ok {
		return apperrors.ErrMeetingNotFound
	}
	delete(r.meetings, id)
	delete(r.participants, id)
	return nil
}

type fakeParticipantStore struct {
	mu     sync.Mutex
	rows   []models.InterviewParticipant
	nextID int64
}

func newFakeParticipantStore() *fakeParticipantStore {
	return &fakeParticipantStore{nextID: 1}
}

func (r *fakeParticipantStore) Add(ctx context.Context, meetingID, userID int64) (*models.InterviewParticipant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.MeetingID == meetingID && row.UserID == userID {
			return nil, apperrors.ErrParticipantExists
		}
	}
	row := models.InterviewParticipant{ID: r.nextID, MeetingID: meetingID, UserID: userID}
	r.nextID++
	r.rows = append(r.rows, row)
	clone := row
	return &clone, nil
}

func (r *fakeParticipantStore) Remove(ctx context.Context, meetingID, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.MeetingID == meetingID && row.UserID == userID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrParticipantNotFound
}

func (r *fakeParticipantStore) ListByMeeting(ctx context.Context, meetingID int64) ([]models.InterviewParticipant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.InterviewParticipant
	for _, row := range r.rows {
		if row.MeetingID == meetingID {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

type fakeHistoryStore struct {
	mu      sync.Mutex
	entries []models.CandidateHistory
	nextID  int64
}

func newFakeHistoryStore() *fakeHistoryStore {
	return &fakeHistoryStore{nextID: 1}
}

func (r *fakeHistoryStore) Create(ctx context.Context, entry *models.CandidateHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = r.nextID
	r.nextID++
	entry.RecordedAt = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeHistoryStore) ListByCandidate(ctx context.Context, candidateID int64) ([]models.CandidateHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.CandidateHistory
	for _, entry := range r.entries {
		if entry.CandidateID == candidateID {
			matched = append(matched, entry)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].RecordedAt.After(matched[j].RecordedAt) })
	return matched, nil
}

type fakePositionStore struct {
	positions        []models.Position
	appliedPositions []models.AppliedPosition
}

func (r *fakePositionStore) GetAllPositions(ctx context.Context) ([]models.Position, error) {
	return r.positions, nil
}

func (r *fakePositionStore) GetAllAppliedPositions(ctx context.Context) ([]models.AppliedPosition, error) {
	return r.appliedPositions, nil
}

func (r *fakePositionStore) AppliedPositionExists(ctx context.Context, id int64) (bool, error) {
	for _, position := range r.appliedPositions {
		if position.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
