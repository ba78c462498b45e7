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

func TestAddBlockDefaultsTitleByType(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	lecture, err := env.schedule.AddBlock(ctx, dto.TimeBlockRequest{
		Date: dayAt(7, 0, 0), StartTime: "17:00", EndTime: "20:00", Type: models.BlockLecture,
	})
	require.NoError(t, err)
	assert.Equal(t, "Wyklady", lecture.Title)

	unavailable, err := env.schedule.AddBlock(ctx, dto.TimeBlockRequest{
		Date: dayAt(8, 0, 0), StartTime: "09:00", EndTime: "11:00", Type: models.BlockUnavailable,
	})
	require.NoError(t, err)
	assert.Equal(t, "Niedostepny", unavailable.Title)

	custom, err := env.schedule.AddBlock(ctx, dto.TimeBlockRequest{
		Date: dayAt(9, 0, 0), StartTime: "09:00", EndTime: "10:00", Type: models.BlockLecture, Title: "Egzamin probny",
	})
	require.NoError(t, err)
	assert.Equal(t, "Egzamin probny", custom.Title)
}

func TestAddBlockValidatesTimes(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	_, err := env.schedule.AddBlock(ctx, dto.TimeBlockRequest{
		Date: dayAt(7, 0, 0), StartTime: "25:00", EndTime: "26:00", Type: models.BlockLecture,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidClockTime)

	_, err = env.schedule.AddBlock(ctx, dto.TimeBlockRequest{
		Date: dayAt(7, 0, 0), StartTime: "12:00", EndTime: "10:00", Type: models.BlockLecture,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = env.schedule.AddBlock(ctx, dto.TimeBlockRequest{
		Date: dayAt(7, 0, 0), StartTime: "10:00", EndTime: "10:00", Type: models.BlockLecture,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAddBlockRejectsUnknownType(t *testing.T) {
	env := setup(t)

	_, err := env.schedule.AddBlock(context.Background(), dto.TimeBlockRequest{
		Date: dayAt(7, 0, 0), StartTime: "10:00", EndTime: "11:00", Type: models.TimeBlockType("HOLIDAY"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRescheduleBlock(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	block := env.createBlock(t, dayAt(7, 0, 0), "17:00", "20:00", models.BlockLecture)

	moved, err := env.schedule.RescheduleBlock(ctx, block.ID, dto.RescheduleBlockRequest{
		Date: dayAt(9, 0, 0), StartTime: "18:00", EndTime: "21:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "18:00", moved.StartTime)
	assert.Equal(t, "21:00", moved.EndTime)
	assert.Equal(t, block.Type, moved.Type)
	assert.Equal(t, block.Title, moved.Title)
}

func TestRescheduleUnknownBlock(t *testing.T) {
	env := setup(t)

	_, err := env.schedule.RescheduleBlock(context.Background(), "missing", dto.RescheduleBlockRequest{
		Date: dayAt(9, 0, 0), StartTime: "18:00", EndTime: "21:00",
	})
	assert.ErrorIs(t, err, apperrors.ErrTimeBlockNotFound)
}

func TestToggleDayOffRoundTrip(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	date := dayAt(10, 15, 30)

	added, err := env.schedule.ToggleDayOff(ctx, dto.ToggleDayOffRequest{Date: date})
	require.NoError(t, err)
	assert.True(t, added)

	days, err := env.schedule.ListDaysOff(ctx)
	require.NoError(t, err)
	require.Len(t, days, 1)
	// Dates are stored truncated to midnight
	assert.Equal(t, 0, days[0].Date.Hour())

	// Toggling the same date again restores the original state
	added, err = env.schedule.ToggleDayOff(ctx, dto.ToggleDayOffRequest{Date: dayAt(10, 8, 0)})
	require.NoError(t, err)
	assert.False(t, added)

	days, err = env.schedule.ListDaysOff(ctx)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestDeleteBlock(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	block := env.createBlock(t, dayAt(7, 0, 0), "17:00", "20:00", models.BlockLecture)

	require.NoError(t, env.schedule.DeleteBlock(ctx, block.ID))

	blocks, err := env.schedule.ListBlocks(ctx)
	require.NoError(t, err)
	assert.Empty(t, blocks)

	assert.ErrorIs(t, env.schedule.DeleteBlock(ctx, block.ID), apperrors.ErrTimeBlockNotFound)
}
