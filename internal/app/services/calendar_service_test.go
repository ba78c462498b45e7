package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcharewicz/oskplanner/internal/app/models"
)

func staffViewer() Viewer {
	return Viewer{UserID: "staff-id", Role: models.RoleInstructor}
}

func findDay(t *testing.T, grid []models.CalendarDay, date time.Time) models.CalendarDay {
	t.Helper()
	for _, day := range grid {
		if day.Date.Year() == date.Year() && day.Date.Month() == date.Month() && day.Date.Day() == date.Day() {
			return day
		}
	}
	t.Fatalf("day %s not in grid", date.Format("2006-01-02"))
	return models.CalendarDay{}
}

func TestMonthGridCoversWholeWeeks(t *testing.T) {
	env := setup(t)

	// May 2026 starts on a Friday and ends on a Sunday
	grid, err := env.calendar.MonthGrid(context.Background(), 2026, time.May, staffViewer())
	require.NoError(t, err)

	require.NotEmpty(t, grid)
	assert.Equal(t, 0, len(grid)%7)
	assert.Equal(t, time.Monday, grid[0].Date.Weekday())
	assert.Equal(t, time.Sunday, grid[len(grid)-1].Date.Weekday())

	// Grid starts on Monday April 27th and ends on Sunday May 31st
	assert.Equal(t, 27, grid[0].Date.Day())
	assert.Equal(t, time.April, grid[0].Date.Month())
	assert.Equal(t, 31, grid[len(grid)-1].Date.Day())
	assert.Len(t, grid, 35)
}

func TestMonthGridExactMonth(t *testing.T) {
	env := setup(t)

	// February 2021 is exactly four Monday-to-Sunday weeks
	grid, err := env.calendar.MonthGrid(context.Background(), 2021, time.February, staffViewer())
	require.NoError(t, err)

	assert.Len(t, grid, 28)
	for _, day := range grid {
		assert.True(t, day.IsCurrentMonth)
	}
}

func TestMonthGridMarksCurrentMonth(t *testing.T) {
	env := setup(t)

	grid, err := env.calendar.MonthGrid(context.Background(), 2026, time.May, staffViewer())
	require.NoError(t, err)

	for _, day := range grid {
		assert.Equal(t, day.Date.Month() == time.May, day.IsCurrentMonth)
	}
}

func TestMonthGridIncludesPaddingDayEvents(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	student := env.createUser(t, "Jan", "Kowalski", models.RoleStudent, "student", "")

	// June 2026 ends mid-week, so July 3rd lands on a padding day
	padding := time.Date(2026, time.July, 3, 10, 0, 0, 0, time.Local)
	env.createLesson(t, student.ID, padding, true)

	grid, err := env.calendar.MonthGrid(ctx, 2026, time.June, staffViewer())
	require.NoError(t, err)

	day := findDay(t, grid, padding)
	assert.False(t, day.IsCurrentMonth)
	require.Len(t, day.Events, 1)
	assert.Equal(t, models.EventLesson, day.Events[0].Kind)
}

func TestMonthGridSortsEventsByMinute(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	student := env.createUser(t, "Jan", "Kowalski", models.RoleStudent, "student", "")

	date := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.Local)
	env.createLesson(t, student.ID, date.Add(14*time.Hour), true)
	env.createLesson(t, student.ID, date.Add(8*time.Hour), false)
	env.createBlock(t, date, "10:30", "12:00", models.BlockLecture)

	grid, err := env.calendar.MonthGrid(ctx, 2026, time.June, staffViewer())
	require.NoError(t, err)

	day := findDay(t, grid, date)
	require.Len(t, day.Events, 3)
	assert.Equal(t, 8*60, day.Events[0].Minute)
	assert.Equal(t, 10*60+30, day.Events[1].Minute)
	assert.Equal(t, 14*60, day.Events[2].Minute)
	assert.Equal(t, models.EventTimeBlock, day.Events[1].Kind)
}

func TestMonthGridSameMinuteTiesKeepInsertionOrder(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	jan := env.createUser(t, "Jan", "Kowalski", models.RoleStudent, "student", "")
	anna := env.createUser(t, "Anna", "Nowak", models.RoleStudent, "student2", "")

	date := time.Date(2026, time.June, 15, 10, 0, 0, 0, time.Local)
	env.createLesson(t, jan.ID, date, true)
	env.createLesson(t, anna.ID, date, true)

	grid, err := env.calendar.MonthGrid(ctx, 2026, time.June, staffViewer())
	require.NoError(t, err)

	day := findDay(t, grid, date)
	require.Len(t, day.Events, 2)
	assert.Equal(t, jan.ID, day.Events[0].Lesson.StudentID)
	assert.Equal(t, anna.ID, day.Events[1].Lesson.StudentID)
}

func TestMonthGridStudentSeesOnlyOwnLessons(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	jan := env.createUser(t, "Jan", "Kowalski", models.RoleStudent, "student", "")
	anna := env.createUser(t, "Anna", "Nowak", models.RoleStudent, "student2", "")

	date := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.Local)
	env.createLesson(t, jan.ID, date.Add(10*time.Hour), true)
	env.createLesson(t, anna.ID, date.Add(12*time.Hour), true)
	env.createBlock(t, date, "17:00", "20:00", models.BlockLecture)

	grid, err := env.calendar.MonthGrid(ctx, 2026, time.June, Viewer{UserID: jan.ID, Role: models.RoleStudent})
	require.NoError(t, err)

	day := findDay(t, grid, date)
	require.Len(t, day.Events, 2)
	assert.Equal(t, models.EventLesson, day.Events[0].Kind)
	assert.Equal(t, jan.ID, day.Events[0].Lesson.StudentID)
	// Time blocks are visible to every student
	assert.Equal(t, models.EventTimeBlock, day.Events[1].Kind)
	// Student views carry no resolved names
	assert.Empty(t, day.Events[0].StudentName)
}

func TestMonthGridStaffSeesStudentNames(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	jan := env.createUser(t, "Jan", "Kowalski", models.RoleStudent, "student", "")

	date := time.Date(2026, time.June, 15, 10, 0, 0, 0, time.Local)
	env.createLesson(t, jan.ID, date, true)

	grid, err := env.calendar.MonthGrid(ctx, 2026, time.June, staffViewer())
	require.NoError(t, err)

	day := findDay(t, grid, date)
	require.Len(t, day.Events, 1)
	assert.Equal(t, "Jan Kowalski", day.Events[0].StudentName)
}

func TestMonthGridMarksDaysOff(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	off := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.Local)
	_, err := env.repos.DayOffRepository.Toggle(ctx, off)
	require.NoError(t, err)

	grid, err := env.calendar.MonthGrid(ctx, 2026, time.June, staffViewer())
	require.NoError(t, err)

	assert.True(t, findDay(t, grid, off).IsDayOff)
	assert.False(t, findDay(t, grid, off.AddDate(0, 0, 1)).IsDayOff)
}

func TestMonthGridMarksToday(t *testing.T) {
	env := setup(t)
	now := time.Now()

	grid, err := env.calendar.MonthGrid(context.Background(), now.Year(), now.Month(), staffViewer())
	require.NoError(t, err)

	today := findDay(t, grid, now)
	assert.True(t, today.IsToday)
	assert.True(t, today.IsCurrentMonth)
}

func TestMonthGridEmptyDaysHaveEmptyEventSlice(t *testing.T) {
	env := setup(t)

	grid, err := env.calendar.MonthGrid(context.Background(), 2026, time.June, staffViewer())
	require.NoError(t, err)

	for _, day := range grid {
		assert.NotNil(t, day.Events)
	}
}
