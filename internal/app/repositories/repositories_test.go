package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcharewicz/oskplanner/internal/app/models"
)

func TestUserCreateAssignsID(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user, err := repo.Create(ctx, models.User{Name: "Jan", Surname: "Kowalski", Role: models.RoleStudent, Username: "student"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	other, err := repo.Create(ctx, models.User{Name: "Anna", Surname: "Nowak", Role: models.RoleStudent, Username: "student2"})
	require.NoError(t, err)
	assert.NotEqual(t, user.ID, other.ID)
}

func TestUserCreateRejectsDuplicateUsername(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, models.User{Name: "Jan", Surname: "Kowalski", Role: models.RoleStudent, Username: "student"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, models.User{Name: "Drugi", Surname: "Jan", Role: models.RoleStudent, Username: "student"})
	assert.ErrorIs(t, err, ErrUsernameExists)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestListReturnsSnapshot(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, models.User{Name: "Jan", Surname: "Kowalski", Role: models.RoleStudent, Username: "student"})
	require.NoError(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	users[0].Name = "Zmieniony"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jan", again[0].Name)
}

func TestLessonListSortedByDate(t *testing.T) {
	repo := NewLessonRepository()
	ctx := context.Background()
	base := time.Date(2026, time.June, 15, 10, 0, 0, 0, time.Local)

	for _, offset := range []int{5, 1, 3} {
		_, err := repo.Create(ctx, models.Lesson{StudentID: "s1", Date: base.AddDate(0, 0, offset), DurationMinutes: 60})
		require.NoError(t, err)
	}

	lessons, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, lessons, 3)
	for i := 1; i < len(lessons); i++ {
		assert.False(t, lessons[i].Date.Before(lessons[i-1].Date))
	}
}

func TestLessonDeleteByStudent(t *testing.T) {
	repo := NewLessonRepository()
	ctx := context.Background()
	date := time.Date(2026, time.June, 15, 10, 0, 0, 0, time.Local)

	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, models.Lesson{StudentID: "s1", Date: date.AddDate(0, 0, i), DurationMinutes: 60})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, models.Lesson{StudentID: "s2", Date: date, DurationMinutes: 60})
	require.NoError(t, err)

	removed := repo.DeleteByStudent(ctx, "s1")
	assert.Equal(t, 2, removed)

	rest, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "s2", rest[0].StudentID)
}

func TestDayOffToggleMatchesAnyTimeOfDay(t *testing.T) {
	repo := NewDayOffRepository()
	ctx := context.Background()

	added, err := repo.Toggle(ctx, time.Date(2026, time.June, 20, 9, 30, 0, 0, time.Local))
	require.NoError(t, err)
	assert.True(t, added)

	// A different clock time on the same date still matches
	off, err := repo.IsDayOff(ctx, time.Date(2026, time.June, 20, 18, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.True(t, off)

	added, err = repo.Toggle(ctx, time.Date(2026, time.June, 20, 23, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.False(t, added)

	days, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestGroupUpdateAndDelete(t *testing.T) {
	repo := NewGroupRepository()
	ctx := context.Background()

	group, err := repo.Create(ctx, "Grupa A")
	require.NoError(t, err)

	renamed, err := repo.Update(ctx, group.ID, "Grupa B")
	require.NoError(t, err)
	assert.Equal(t, "Grupa B", renamed.Name)

	require.NoError(t, repo.Delete(ctx, group.ID))
	_, err = repo.GetByID(ctx, group.ID)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
