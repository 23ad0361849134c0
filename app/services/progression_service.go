package services

import (
	"math"
	"time"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
)

// ProgressionRepository is the persistence surface the ledger needs. The
// Postgres implementation runs the flip-then-write sequence in a single
// transaction.
type ProgressionRepository interface {
	Insert(rec *models.BeltProgression) error
	Update(id string, patch *models.BeltProgressionPatch) (*models.BeltProgression, error)
	GetByID(id string) (*models.BeltProgression, error)
	Current(studentID string) (*models.BeltProgression, error)
	FindByStudentID(studentID string) ([]*models.BeltProgression, error)
	Delete(id string) (bool, error)
}

// ProgressionService maintains per-student promotion history and the
// single-current-belt invariant.
type ProgressionService struct {
	repo     ProgressionRepository
	students StudentDirectory
	now      func() time.Time
}

func NewProgressionService(repo ProgressionRepository, students StudentDirectory) *ProgressionService {
	return &ProgressionService{repo: repo, students: students, now: time.Now}
}

// Create records a promotion event. When IsCurrent is set the repository
// flips every other current record for the student off in the same
// transaction.
func (s *ProgressionService) Create(rec *models.BeltProgression) (*models.BeltProgression, error) {
	if rec.StudentID == "" {
		return nil, newValidationError("student_id", "student_id is required")
	}
	if rec.BeltRank == "" {
		return nil, newValidationError("belt_rank", "belt_rank is required")
	}
	if rec.PromotedDate.IsZero() {
		return nil, newValidationError("promoted_date", "promoted_date is required")
	}
	if student, err := s.students.FindByID(rec.StudentID); err != nil {
		return nil, err
	} else if student == nil {
		return nil, newValidationError("student_id", "student does not exist")
	}

	if err := s.repo.Insert(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update applies a partial update with the same current-flag reconciliation
// as Create, excluding the record itself from the flip.
func (s *ProgressionService) Update(id string, patch *models.BeltProgressionPatch) (*models.BeltProgression, error) {
	if patch.BeltRank != nil && *patch.BeltRank == "" {
		return nil, newValidationError("belt_rank", "belt_rank cannot be empty")
	}
	rec, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (s *ProgressionService) GetByID(id string) (*models.BeltProgression, error) {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

// GetCurrentBelt returns the student's current belt record, or ErrNotFound.
func (s *ProgressionService) GetCurrentBelt(studentID string) (*models.BeltProgression, error) {
	rec, err := s.repo.Current(studentID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (s *ProgressionService) FindByStudentID(studentID string) ([]*models.BeltProgression, error) {
	return s.repo.FindByStudentID(studentID)
}

// GetBeltHistory assembles the full promotion history. TimeAsCurrentBelt is
// the elapsed days since the current belt's promotion, rounded up, or nil
// when the student has no current belt.
func (s *ProgressionService) GetBeltHistory(studentID string) (*models.BeltHistory, error) {
	progression, err := s.repo.FindByStudentID(studentID)
	if err != nil {
		return nil, err
	}

	history := &models.BeltHistory{
		Progression:     progression,
		TotalPromotions: len(progression),
	}
	if history.Progression == nil {
		history.Progression = []*models.BeltProgression{}
	}

	for _, rec := range progression {
		if rec.IsCurrent {
			history.CurrentBelt = rec
			days := int(math.Ceil(s.now().Sub(rec.PromotedDate).Hours() / 24))
			if days < 0 {
				days = 0
			}
			history.TimeAsCurrentBelt = &days
			break
		}
	}
	return history, nil
}

// Remove hard-deletes a promotion record. It never promotes another record
// to current; callers must handle a student with zero current belts.
func (s *ProgressionService) Remove(id string) (bool, error) {
	return s.repo.Delete(id)
}
