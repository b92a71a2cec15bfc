package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ikatwm/meeting-management-sub000/internal/app/models"
	"github.com/ikatwm/meeting-management-sub000/internal/app/models/dto"
	"github.com/ikatwm/meeting-management-sub000/internal/pkg/apperrors"
)

func newCandidateService() (*CandidateService, *fakeCandidateStore, *fakeHistoryStore, *fakeMeetingStore) {
	candRepo := newFakeCandidateStore()
	historyRepo := newFakeHistoryStore()
	meetingRepo := newFakeMeetingStore()
	positionRepo := &fakePositionStore{
		appliedPositions: []models.AppliedPosition{{ID: 1, Name: "Backend Developer"}},
	}
	service := NewCandidateService(candRepo, historyRepo, positionRepo, meetingRepo)
	return service, candRepo, historyRepo, meetingRepo
}

func createCandidateRequest() *dto.CreateCandidateRequest {
	return &dto.CreateCandidateRequest{
		Name:              "Alex Applicant",
		Email:             "alex@example.com",
		AppliedPositionID: 1,
	}
}

func TestCandidateServiceCreate_Success(t *testing.T) {
	service, _, _, _ := newCandidateService()

	resp, err := service.Create(context.Background(), createCandidateRequest())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.ID == 0 {
		t.Fatal("expected candidate ID to be assigned")
	}
	if resp.Status != "applied" {
		t.Fatalf("expected default status applied, got %s", resp.Status)
	}
}

func TestCandidateServiceCreate_DuplicateEmail(t *testing.T) {
	service, _, _, _ := newCandidateService()

	if _, err := service.Create(context.Background(), createCandidateRequest()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, err := service.Create(context.Background(), createCandidateRequest())
	if !errors.Is(err, apperrors.ErrCandidateEmailExists) {
		t.Fatalf("expected ErrCandidateEmailExists, got %v", err)
	}
}

func TestCandidateServiceCreate_MissingAppliedPosition(t *testing.T) {
	service, _, _, _ := newCandidateService()

	req := createCandidateRequest()
	req.AppliedPositionID = 99

	_, err := service.Create(context.Background(), req)
	if !errors.Is(err, apperrors.ErrPositionNotFound) {
		t.Fatalf("expected ErrPositionNotFound, got %v", err)
	}
}

func TestCandidateServiceList_Filters(t *testing.T) {
	service, _, _, _ := newCandidateService()

	first := createCandidateRequest()
	if _, err := service.Create(context.Background(), first); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	second := &dto.CreateCandidateRequest{
		Name:              "Billie Builder",
		Email:             "billie@example.com",
		AppliedPositionID: 1,
		Status:            "interview",
	}
	if _, err := service.Create(context.Background(), second); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	search := "ALEX"
	resp, err := service.List(context.Background(), 1, 10, dto.CandidateFilter{Search: &search})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(resp.Candidates) != 1 || resp.Candidates[0].Name != "Alex Applicant" {
		t.Fatalf("expected case-insensitive name match, got %+v", resp.Candidates)
	}

	status := "interview"
	resp, err = service.List(context.Background(), 1, 10, dto.CandidateFilter{Status: &status})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(resp.Candidates) != 1 || resp.Candidates[0].Email != "billie@example.com" {
		t.Fatalf("expected status match, got %+v", resp.Candidates)
	}

	resp, err = service.List(context.Background(), 1, 10, dto.CandidateFilter{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Pagination.Total != 2 {
		t.Fatalf("expected total 2 with no filters, got %d", resp.Pagination.Total)
	}
	if resp.Pagination.TotalPages != 1 {
		t.Fatalf("expected totalPages 1, got %d", resp.Pagination.TotalPages)
	}
}

func TestCandidateServiceUpdate_NotFound(t *testing.T) {
	service, _, _, _ := newCandidateService()

	name := "New Name"
	_, err := service.Update(context.Background(), 99, &dto.UpdateCandidateRequest{Name: &name})
	if !errors.Is(err, apperrors.ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestCandidateServiceUpdate_ReturnsUpdatedRow(t *testing.T) {
	service, _, _, _ := newCandidateService()

	created, err := service.Create(context.Background(), createCandidateRequest())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	status := "hired"
	resp, err := service.Update(context.Background(), created.ID, &dto.UpdateCandidateRequest{Status: &status})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Status != "hired" {
		t.Fatalf("expected updated status hired, got %s", resp.Status)
	}
	if resp.Name != "Alex Applicant" {
		t.Fatalf("expected untouched fields to survive, got %s", resp.Name)
	}
}

func TestCandidateServiceDelete(t *testing.T) {
	service, _, _, _ := newCandidateService()

	created, err := service.Create(context.Background(), createCandidateRequest())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := service.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	err = service.Delete(context.Background(), created.ID)
	if !errors.Is(err, apperrors.ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound on second delete, got %v", err)
	}
}

func TestCandidateServiceAddHistory(t *testing.T) {
	service, _, _, meetingRepo := newCandidateService()

	created, err := service.Create(context.Background(), createCandidateRequest())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	resp, err := service.AddHistory(context.Background(), created.ID, &dto.CreateHistoryRequest{
		Feedback: "Strong fundamentals",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.ID == 0 {
		t.Fatal("expected history ID to be assigned")
	}
	if resp.Meeting != nil {
		t.Fatal("expected no meeting summary when no meeting referenced")
	}

	// Referencing a missing meeting is rejected.
	missing := int64(99)
	_, err = service.AddHistory(context.Background(), created.ID, &dto.CreateHistoryRequest{
		MeetingID: &missing,
		Feedback:  "After the screen",
	})
	if !errors.Is(err, apperrors.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}

	meeting := &models.Meeting{
		Title:       "Screening Call",
		StartTime:   time.Now(),
		EndTime:     time.Now().Add(time.Hour),
		MeetingType: models.MeetingZoom,
		Status:      models.MeetingPending,
		UserID:      1,
	}
	if err := meetingRepo.CreateWithParticipants(context.Background(), meeting, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	resp, err = service.AddHistory(context.Background(), created.ID, &dto.CreateHistoryRequest{
		MeetingID: &meeting.ID,
		Feedback:  "Clear communicator",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.MeetingID == nil || *resp.MeetingID != meeting.ID {
		t.Fatal("expected history entry to reference the meeting")
	}
}

func TestCandidateServiceAddHistory_MissingCandidate(t *testing.T) {
	service, _, historyRepo, _ := newCandidateService()

	_, err := service.AddHistory(context.Background(), 99, &dto.CreateHistoryRequest{Feedback: "n/a"})
	if !errors.Is(err, apperrors.ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
	if len(historyRepo.entries) != 0 {
		t.Fatal("expected no history entry for a missing candidate")
	}
}

func TestCandidateServiceListHistory_MostRecentFirst(t *testing.T) {
	service, _, historyRepo, _ := newCandidateService()

	created, err := service.Create(context.Background(), createCandidateRequest())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	older := models.CandidateHistory{CandidateID: created.ID, Feedback: "first", RecordedAt: time.Now().Add(-time.Hour)}
	newer := models.CandidateHistory{CandidateID: created.ID, Feedback: "second", RecordedAt: time.Now()}
	historyRepo.entries = append(historyRepo.entries, older, newer)

	entries, err := service.ListHistory(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Feedback != "second" {
		t.Fatalf("expected most recent entry first, got %s", entries[0].Feedback)
	}
}
