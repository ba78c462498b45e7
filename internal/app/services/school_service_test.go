package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/app/models/dto"
)

func TestUpdateSchoolInfoPartialEdit(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	require.NoError(t, env.repos.SchoolRepository.Set(ctx, models.SchoolInfo{
		Name:           "OSK DZIESIATKA",
		InstructorName: "Krzysztof Charewicz",
		Phone:          "601-724-307",
		Email:          "biuro@osk.pl",
		CoursePrice:    3200,
	}))

	price := 3500.0
	info, err := env.school.UpdateSchoolInfo(ctx, dto.UpdateSchoolInfoRequest{CoursePrice: &price})
	require.NoError(t, err)

	assert.Equal(t, 3500.0, info.CoursePrice)
	// Untouched fields keep their values
	assert.Equal(t, "OSK DZIESIATKA", info.Name)
	assert.Equal(t, "601-724-307", info.Phone)

	stored, err := env.school.GetSchoolInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, info, stored)
}

func TestErrorLogNewestFirst(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	first, err := env.errors.LogError(ctx, "Booking failed: missing data.", "StudentDashboard")
	require.NoError(t, err)
	second, err := env.errors.LogError(ctx, "Calendar render failed.", "Calendar")
	require.NoError(t, err)

	entries, err := env.errors.ListErrors(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.Equal(t, "Calendar", entries[0].Component)
}
