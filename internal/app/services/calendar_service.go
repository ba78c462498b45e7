package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/app/repositories"
	"github.com/mcharewicz/oskplanner/internal/pkg/helpers"
)

// CalendarService computes the month grid consumed by the calendar views.
// The grid always covers whole ISO weeks: it starts on the Monday on or
// before the first of the month and ends on the Sunday on or after the last.
type CalendarService struct {
	lessonRepo    *repositories.LessonRepository
	timeBlockRepo *repositories.TimeBlockRepository
	dayOffRepo    *repositories.DayOffRepository
	userRepo      *repositories.UserRepository
}

// NewCalendarService creates a new calendar service instance
func NewCalendarService(
	lessonRepo *repositories.LessonRepository,
	timeBlockRepo *repositories.TimeBlockRepository,
	dayOffRepo *repositories.DayOffRepository,
	userRepo *repositories.UserRepository,
) *CalendarService {
	return &CalendarService{
		lessonRepo:    lessonRepo,
		timeBlockRepo: timeBlockRepo,
		dayOffRepo:    dayOffRepo,
		userRepo:      userRepo,
	}
}

// monthRange returns the first and last grid dates for a month, both at
// midnight: the Monday on or before the 1st and the Sunday on or after the
// last day.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, -1)

	startWeekday := int(monthStart.Weekday())
	if startWeekday == 0 {
		startWeekday = 7
	}
	gridStart := monthStart.AddDate(0, 0, -(startWeekday - 1))

	endWeekday := int(monthEnd.Weekday())
	if endWeekday == 0 {
		endWeekday = 7
	}
	gridEnd := monthEnd
	if endWeekday != 7 {
		gridEnd = monthEnd.AddDate(0, 0, 7-endWeekday)
	}

	return gridStart, gridEnd
}

// MonthGrid builds the grid of days for the given month as seen by the
// viewer. Students see only their own lessons plus every time block; staff
// see everything with student names resolved onto lesson events. Events on
// padding days outside the displayed month are never omitted.
func (s *CalendarService) MonthGrid(ctx context.Context, year int, month time.Month, viewer Viewer) ([]models.CalendarDay, error) {
	lessons, err := s.lessonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing lessons: %w", err)
	}
	blocks, err := s.timeBlockRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing time blocks: %w", err)
	}
	daysOff, err := s.dayOffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing days off: %w", err)
	}

	var studentNames map[string]string
	if viewer.Role.IsStaff() {
		users, err := s.userRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing users: %w", err)
		}
		studentNames = make(map[string]string, len(users))
		for i := range users {
			studentNames[users[i].ID] = users[i].FullName()
		}
	}

	gridStart, gridEnd := monthRange(year, month)
	now := time.Now()

	var grid []models.CalendarDay
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		cell := models.CalendarDay{
			Date:           day,
			IsCurrentMonth: day.Month() == month,
			IsToday:        helpers.SameDay(day, now),
			Events:         []models.CalendarEvent{},
		}

		for _, d := range daysOff {
			if helpers.SameDay(d.Date, day) {
				cell.IsDayOff = true
				break
			}
		}

		for i := range lessons {
			lesson := lessons[i]
			if !helpers.SameDay(lesson.Date, day) {
				continue
			}
			if viewer.Role == models.RoleStudent && lesson.StudentID != viewer.UserID {
				continue
			}
			event := models.CalendarEvent{
				Kind:   models.EventLesson,
				Minute: helpers.MinutesSinceMidnight(lesson.Date),
				Lesson: &lesson,
			}
			if studentNames != nil {
				event.StudentName = studentNames[lesson.StudentID]
			}
			cell.Events = append(cell.Events, event)
		}

		for i := range blocks {
			block := blocks[i]
			if !helpers.SameDay(block.Date, day) {
				continue
			}
			minute, err := helpers.ParseClock(block.StartTime)
			if err != nil {
				minute = 0
			}
			cell.Events = append(cell.Events, models.CalendarEvent{
				Kind:      models.EventTimeBlock,
				Minute:    minute,
				TimeBlock: &block,
			})
		}

		sort.SliceStable(cell.Events, func(i, j int) bool {
			return cell.Events[i].Minute < cell.Events[j].Minute
		})

		grid = append(grid, cell)
	}

	return grid, nil
}
