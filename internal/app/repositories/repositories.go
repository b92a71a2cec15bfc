package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	PositionRepository    *PositionRepository
	CandidateRepository   *CandidateRepository
	MeetingRepository     *MeetingRepository
	ParticipantRepository *ParticipantRepository
	HistoryRepository     *CandidateHistoryRepository
}

// NewRepositories initializes all repositories with a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		PositionRepository:    NewPositionRepository(db),
		CandidateRepository:   NewCandidateRepository(db),
		MeetingRepository:     NewMeetingRepository(db),
		ParticipantRepository: NewParticipantRepository(db),
		HistoryRepository:     NewCandidateHistoryRepository(db),
	}
}
