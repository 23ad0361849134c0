package services

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProgressionRepo replicates the store's transactional flip: writing a
// current record turns every other current record for that student off.
type fakeProgressionRepo struct {
	records map[string]*models.BeltProgression
	nextID  int
}

func newFakeProgressionRepo() *fakeProgressionRepo {
	return &fakeProgressionRepo{records: map[string]*models.BeltProgression{}}
}

func (r *fakeProgressionRepo) flipOthers(studentID, exceptID string) {
	for _, rec := range r.records {
		if rec.StudentID == studentID && rec.ID != exceptID {
			rec.IsCurrent = false
		}
	}
}

func (r *fakeProgressionRepo) Insert(rec *models.BeltProgression) error {
	r.nextID++
	rec.ID = fmt.Sprintf("progression-%d", r.nextID)
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	if rec.IsCurrent {
		r.flipOthers(rec.StudentID, rec.ID)
	}
	copied := *rec
	r.records[rec.ID] = &copied
	return nil
}

func (r *fakeProgressionRepo) Update(id string, patch *models.BeltProgressionPatch) (*models.BeltProgression, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	if patch.BeltRank != nil {
		rec.BeltRank = *patch.BeltRank
	}
	if patch.PromotedDate != nil {
		rec.PromotedDate = *patch.PromotedDate
	}
	if patch.PromotedBy != nil {
		rec.PromotedBy = patch.PromotedBy
	}
	if patch.Notes != nil {
		rec.Notes = patch.Notes
	}
	if patch.IsCurrent != nil {
		rec.IsCurrent = *patch.IsCurrent
		if rec.IsCurrent {
			r.flipOthers(rec.StudentID, rec.ID)
		}
	}
	rec.UpdatedAt = time.Now()
	copied := *rec
	return &copied, nil
}

func (r *fakeProgressionRepo) GetByID(id string) (*models.BeltProgression, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeProgressionRepo) Current(studentID string) (*models.BeltProgression, error) {
	for _, rec := range r.records {
		if rec.StudentID == studentID && rec.IsCurrent {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProgressionRepo) FindByStudentID(studentID string) ([]*models.BeltProgression, error) {
	var out []*models.BeltProgression
	for _, rec := range r.records {
		if rec.StudentID == studentID {
			copied := *rec
			out = append(out, &copied)
		}
	}
	// Matches the store's ORDER BY promoted_date DESC
	sort.Slice(out, func(i, j int) bool {
		return out[i].PromotedDate.After(out[j].PromotedDate)
	})
	return out, nil
}

func (r *fakeProgressionRepo) Delete(id string) (bool, error) {
	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

func newProgressionFixture() (*ProgressionService, *fakeProgressionRepo) {
	repo := newFakeProgressionRepo()
	students := &fakeStudents{students: map[string]*models.Student{
		"student-1": {ID: "student-1", FirstName: "Jane", LastName: "Kim", BeltRank: "White"},
	}}
	return NewProgressionService(repo, students), repo
}

func TestCreateProgressionRequiredFields(t *testing.T) {
	svc, _ := newProgressionFixture()

	_, err := svc.Create(&models.BeltProgression{BeltRank: "Yellow", PromotedDate: time.Now()})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "student_id")

	_, err = svc.Create(&models.BeltProgression{StudentID: "student-1", PromotedDate: time.Now()})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "belt_rank")

	_, err = svc.Create(&models.BeltProgression{StudentID: "student-1", BeltRank: "Yellow"})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "promoted_date")

	_, err = svc.Create(&models.BeltProgression{StudentID: "nobody", BeltRank: "Yellow", PromotedDate: time.Now()})
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "student_id")
}

func TestPromotionFlipsPreviousCurrent(t *testing.T) {
	svc, repo := newProgressionFixture()

	first, err := svc.Create(&models.BeltProgression{
		StudentID:    "student-1",
		BeltRank:     "White",
		PromotedDate: time.Now().AddDate(0, -6, 0),
		IsCurrent:    true,
	})
	require.NoError(t, err)

	second, err := svc.Create(&models.BeltProgression{
		StudentID:    "student-1",
		BeltRank:     "Yellow",
		PromotedDate: time.Now(),
		IsCurrent:    true,
	})
	require.NoError(t, err)

	current, err := svc.GetCurrentBelt("student-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.Equal(t, "Yellow", current.BeltRank)

	demoted, err := repo.GetByID(first.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsCurrent)
}

func TestUpdateProgressionFlip(t *testing.T) {
	svc, _ := newProgressionFixture()

	first, err := svc.Create(&models.BeltProgression{
		StudentID: "student-1", BeltRank: "White",
		PromotedDate: time.Now().AddDate(-1, 0, 0), IsCurrent: true,
	})
	require.NoError(t, err)
	second, err := svc.Create(&models.BeltProgression{
		StudentID: "student-1", BeltRank: "Yellow",
		PromotedDate: time.Now(), IsCurrent: true,
	})
	require.NoError(t, err)

	// Re-marking the older record current must demote the newer one
	isCurrent := true
	updated, err := svc.Update(first.ID, &models.BeltProgressionPatch{IsCurrent: &isCurrent})
	require.NoError(t, err)
	assert.True(t, updated.IsCurrent)

	current, err := svc.GetCurrentBelt("student-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)
	assert.NotEqual(t, second.ID, current.ID)
}

func TestUpdateProgressionValidation(t *testing.T) {
	svc, _ := newProgressionFixture()

	empty := ""
	_, err := svc.Update("whatever", &models.BeltProgressionPatch{BeltRank: &empty})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	rank := "Green"
	_, err = svc.Update("missing", &models.BeltProgressionPatch{BeltRank: &rank})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetBeltHistory(t *testing.T) {
	svc, _ := newProgressionFixture()
	svc.now = func() time.Time { return time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC) }

	promoted := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err := svc.Create(&models.BeltProgression{
		StudentID: "student-1", BeltRank: "White",
		PromotedDate: promoted.AddDate(0, -6, 0),
	})
	require.NoError(t, err)
	_, err = svc.Create(&models.BeltProgression{
		StudentID: "student-1", BeltRank: "Yellow",
		PromotedDate: promoted, IsCurrent: true,
	})
	require.NoError(t, err)

	history, err := svc.GetBeltHistory("student-1")
	require.NoError(t, err)
	assert.Equal(t, 2, history.TotalPromotions)
	require.NotNil(t, history.CurrentBelt)
	assert.Equal(t, "Yellow", history.CurrentBelt.BeltRank)
	require.NotNil(t, history.TimeAsCurrentBelt)
	assert.Equal(t, 10, *history.TimeAsCurrentBelt)
}

func TestFindByStudentIDLatestPromotionFirst(t *testing.T) {
	svc, _ := newProgressionFixture()

	// Insert out of chronological order
	dates := []time.Time{
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
	}
	ranks := []string{"Yellow", "Green", "White"}
	for i := range dates {
		_, err := svc.Create(&models.BeltProgression{
			StudentID: "student-1", BeltRank: ranks[i], PromotedDate: dates[i],
		})
		require.NoError(t, err)
	}

	list, err := svc.FindByStudentID("student-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Green", list[0].BeltRank)
	assert.Equal(t, "Yellow", list[1].BeltRank)
	assert.Equal(t, "White", list[2].BeltRank)
}

func TestGetBeltHistoryEmpty(t *testing.T) {
	svc, _ := newProgressionFixture()

	history, err := svc.GetBeltHistory("student-1")
	require.NoError(t, err)
	assert.Equal(t, 0, history.TotalPromotions)
	assert.Nil(t, history.CurrentBelt)
	assert.Nil(t, history.TimeAsCurrentBelt)
	assert.NotNil(t, history.Progression)
	assert.Empty(t, history.Progression)
}

// A promotion recorded with a future date must not produce negative tenure.
func TestGetBeltHistoryFutureDateClamped(t *testing.T) {
	svc, _ := newProgressionFixture()
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	_, err := svc.Create(&models.BeltProgression{
		StudentID: "student-1", BeltRank: "Yellow",
		PromotedDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), IsCurrent: true,
	})
	require.NoError(t, err)

	history, err := svc.GetBeltHistory("student-1")
	require.NoError(t, err)
	require.NotNil(t, history.TimeAsCurrentBelt)
	assert.Equal(t, 0, *history.TimeAsCurrentBelt)
}

func TestRemoveProgressionLeavesNoCurrent(t *testing.T) {
	svc, _ := newProgressionFixture()

	rec, err := svc.Create(&models.BeltProgression{
		StudentID: "student-1", BeltRank: "Yellow",
		PromotedDate: time.Now(), IsCurrent: true,
	})
	require.NoError(t, err)

	removed, err := svc.Remove(rec.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// Deleting the current record does not promote another one
	_, err = svc.GetCurrentBelt("student-1")
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err = svc.Remove(rec.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}
