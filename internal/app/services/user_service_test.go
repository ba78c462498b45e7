package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
	"github.com/mcharewicz/oskplanner/internal/pkg/apperrors"
)

func TestDeleteUserCascadesExactly(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	jan := env.createUser(t, "Jan", "Kowalski", models.RoleStudent, "student", "")
	anna := env.createUser(t, "Anna", "Nowak", models.RoleStudent, "student2", "")

	require.NoError(t, env.repos.UserRepository.CreateInfo(ctx, models.StudentInfo{UserID: jan.ID, PKKNumber: "111"}))
	require.NoError(t, env.repos.UserRepository.CreateInfo(ctx, models.StudentInfo{UserID: anna.ID, PKKNumber: "222"}))
	env.createLesson(t, jan.ID, dayAt(3, 10, 0), true)
	env.createLesson(t, jan.ID, dayAt(4, 10, 0), false)
	env.createLesson(t, anna.ID, dayAt(3, 12, 0), true)

	require.NoError(t, env.users.DeleteUser(ctx, jan.ID))

	// Jan, his info and his lessons are gone
	_, err := env.repos.UserRepository.GetByID(ctx, jan.ID)
	assert.Error(t, err)
	_, err = env.repos.UserRepository.InfoByUserID(ctx, jan.ID)
	assert.Error(t, err)
	janLessons, err := env.repos.LessonRepository.ListByStudent(ctx, jan.ID)
	require.NoError(t, err)
	assert.Empty(t, janLessons)

	// Anna's records are untouched
	_, err = env.repos.UserRepository.GetByID(ctx, anna.ID)
	assert.NoError(t, err)
	_, err = env.repos.UserRepository.InfoByUserID(ctx, anna.ID)
	assert.NoError(t, err)
	annaLessons, err := env.repos.LessonRepository.ListByStudent(ctx, anna.ID)
	require.NoError(t, err)
	assert.Len(t, annaLessons, 1)
}

func TestDeleteUnknownUser(t *testing.T) {
	env := setup(t)

	err := env.users.DeleteUser(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateUserPartialEdit(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	user := env.createUser(t, "Jan", "Kowalski", models.RoleStudent, "student", "grupa-a")

	role := models.RoleInstructor
	updated, err := env.users.UpdateUser(ctx, user.ID, dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)

	// Only the role changed
	assert.Equal(t, models.RoleInstructor, updated.Role)
	assert.Equal(t, "Jan", updated.Name)
	assert.Equal(t, "grupa-a", updated.GroupID)
	assert.Equal(t, "student", updated.Username)
}

func TestUpdateUserRejectsUnknownRole(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	user := env.createUser(t, "Jan", "Kowalski", models.RoleStudent, "student", "")

	bogus := models.RoleType("SUPERVISOR")
	_, err := env.users.UpdateUser(ctx, user.ID, dto.UpdateUserRequest{Role: &bogus})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStudentProgress(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	student := env.createUser(t, "Jan", "Kowalski", models.RoleStudent, "student", "")
	require.NoError(t, env.repos.UserRepository.CreateInfo(ctx, models.StudentInfo{
		UserID: student.ID, HoursDriven: 10, AmountPaid: 1000, TotalCourseCost: 3200, PKKNumber: "111",
	}))

	hours := 12.5
	info, err := env.users.UpdateStudentProgress(ctx, student.ID, dto.StudentProgressRequest{HoursDriven: &hours})
	require.NoError(t, err)
	assert.Equal(t, 12.5, info.HoursDriven)
	// Untouched fields keep their values
	assert.Equal(t, float64(1000), info.AmountPaid)
	assert.Equal(t, "111", info.PKKNumber)
}

func TestListStudentsJoinsInfoAndLessonCount(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	student := env.createUser(t, "Jan", "Kowalski", models.RoleStudent, "student", "")
	env.createUser(t, "Krzysztof", "Charewicz", models.RoleInstructor, "kcharewicz", "")
	require.NoError(t, env.repos.UserRepository.CreateInfo(ctx, models.StudentInfo{UserID: student.ID, PKKNumber: "111"}))
	env.createLesson(t, student.ID, dayAt(3, 10, 0), true)
	env.createLesson(t, student.ID, dayAt(4, 10, 0), false)

	overviews, err := env.users.ListStudents(ctx)
	require.NoError(t, err)

	// Instructors are not listed as students
	require.Len(t, overviews, 1)
	assert.Equal(t, student.ID, overviews[0].User.ID)
	require.NotNil(t, overviews[0].Info)
	assert.Equal(t, "111", overviews[0].Info.PKKNumber)
	assert.Equal(t, 2, overviews[0].LessonCount)
}
