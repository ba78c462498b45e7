package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/app/repositories"
	"github.com/mcharewicz/oskplanner/internal/pkg/auth"
	"github.com/mcharewicz/oskplanner/internal/pkg/helpers"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

// testEnv bundles fresh repositories and services for one test
type testEnv struct {
	repos    *repositories.Repositories
	auth     *AuthService
	calendar *CalendarService
	lessons  *LessonService
	schedule *ScheduleService
	users    *UserService
	groups   *GroupService
	school   *SchoolService
	errors   *ErrorLogService
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	repos := repositories.NewRepositories()
	lgr := zerolog.Nop()

	return &testEnv{
		repos:    repos,
		auth:     NewAuthService(repos.UserRepository, repos.GroupRepository, repos.SchoolRepository, testJWTService(), lgr),
		calendar: NewCalendarService(repos.LessonRepository, repos.TimeBlockRepository, repos.DayOffRepository, repos.UserRepository),
		lessons:  NewLessonService(repos.LessonRepository, repos.UserRepository, repos.DayOffRepository, lgr),
		schedule: NewScheduleService(repos.TimeBlockRepository, repos.DayOffRepository, lgr),
		users:    NewUserService(repos.UserRepository, repos.LessonRepository, lgr),
		groups:   NewGroupService(repos.GroupRepository, repos.UserRepository, lgr),
		school:   NewSchoolService(repos.SchoolRepository, lgr),
		errors:   NewErrorLogService(repos.ErrorLogRepository, lgr),
	}
}

func (e *testEnv) createUser(t *testing.T, name, surname string, role models.RoleType, username, groupID string) models.User {
	t.Helper()
	user, err := e.repos.UserRepository.Create(context.Background(), models.User{
		Name:     name,
		Surname:  surname,
		Role:     role,
		Username: username,
		Password: "hashed",
		GroupID:  groupID,
	})
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return user
}

func (e *testEnv) createLesson(t *testing.T, studentID string, date time.Time, confirmed bool) models.Lesson {
	t.Helper()
	lesson, err := e.repos.LessonRepository.Create(context.Background(), models.Lesson{
		StudentID:       studentID,
		Date:            date,
		PickupAddress:   "ul. Testowa 1",
		DropoffAddress:  "ul. Testowa 2",
		DurationMinutes: 60,
		Confirmed:       confirmed,
	})
	if err != nil {
		t.Fatalf("createLesson() failed: %v", err)
	}
	return lesson
}

func (e *testEnv) createBlock(t *testing.T, date time.Time, startTime, endTime string, typ models.TimeBlockType) models.TimeBlock {
	t.Helper()
	block, err := e.repos.TimeBlockRepository.Create(context.Background(), models.TimeBlock{
		Date:      helpers.DayStart(date),
		StartTime: startTime,
		EndTime:   endTime,
		Type:      typ,
		Title:     "Blok",
	})
	if err != nil {
		t.Fatalf("createBlock() failed: %v", err)
	}
	return block
}

// dayAt returns the given day shifted from today at an exact hour
func dayAt(daysAhead, hour, minute int) time.Time {
	day := helpers.DayStart(time.Now().AddDate(0, 0, daysAhead))
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}
