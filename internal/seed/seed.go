package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	appModels "github.com/mcharewicz/oskplanner/internal/app/models"
	appRepos "github.com/mcharewicz/oskplanner/internal/app/repositories"
	"github.com/mcharewicz/oskplanner/internal/pkg/auth"
	"github.com/mcharewicz/oskplanner/internal/pkg/helpers"
)

// CreateDemoData fills a fresh store with the demo school, groups, accounts
// and a few lessons so the application is usable right after startup.
func CreateDemoData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Seeding demo data...")
	var finalErr error

	// --- School profile --- //
	school := appModels.SchoolInfo{
		Name:           "Osrodek Szkolenia Kierowcow DZIESIATKA",
		InstructorName: "Krzysztof Charewicz",
		Phone:          "601-724-307",
		Email:          "k.charewicz@osk-dziesiatka.pl",
		CoursePrice:    3200,
	}
	if err := repos.SchoolRepository.Set(ctx, school); err != nil {
		lgr.Error().Err(err).Msg("Error seeding school profile")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Course groups --- //
	groupA, err := repos.GroupRepository.Create(ctx, "Grupa A (Weekendowa)")
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding group A")
		finalErr = errors.Join(finalErr, err)
	}
	groupB, err := repos.GroupRepository.Create(ctx, "Grupa B (Tygodniowa)")
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding group B")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Accounts --- //
	type account struct {
		name     string
		surname  string
		role     appModels.RoleType
		username string
		password string
		groupID  string
	}
	accounts := []account{
		{"Jan", "Kowalski", appModels.RoleStudent, "student", "password", groupA.ID},
		{"Anna", "Nowak", appModels.RoleStudent, "student2", "password", groupB.ID},
		{"Krzysztof", "Charewicz", appModels.RoleInstructor, "kcharewicz", "737371", ""},
		{"Mikolaj", "Charewicz", appModels.RoleAdmin, "mcharewicz", "737371", ""},
	}

	created := make(map[string]appModels.User, len(accounts))
	for _, a := range accounts {
		hashed, err := auth.HashPassword(a.password)
		if err != nil {
			lgr.Error().Err(err).Str("username", a.username).Msg("Error hashing seed password")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		user, err := repos.UserRepository.Create(ctx, appModels.User{
			Name:     a.name,
			Surname:  a.surname,
			Role:     a.role,
			Username: a.username,
			Password: hashed,
			GroupID:  a.groupID,
		})
		if err != nil {
			lgr.Error().Err(err).Str("username", a.username).Msg("Error seeding user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created[a.username] = user
	}

	// --- Student progress records --- //
	if jan, ok := created["student"]; ok {
		err := repos.UserRepository.CreateInfo(ctx, appModels.StudentInfo{
			UserID:          jan.ID,
			HoursDriven:     12.5,
			AmountPaid:      1500,
			TotalCourseCost: school.CoursePrice,
			PKKNumber:       "12345678901/23",
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Error seeding progress for student")
			finalErr = errors.Join(finalErr, err)
		}
	}
	if anna, ok := created["student2"]; ok {
		err := repos.UserRepository.CreateInfo(ctx, appModels.StudentInfo{
			UserID:          anna.ID,
			HoursDriven:     4,
			AmountPaid:      3200,
			TotalCourseCost: school.CoursePrice,
			PKKNumber:       "98765432109/87",
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Error seeding progress for student2")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Lessons --- //
	now := time.Now()
	at := func(daysAhead, hour int) time.Time {
		day := helpers.DayStart(now.AddDate(0, 0, daysAhead))
		return day.Add(time.Duration(hour) * time.Hour)
	}

	if jan, ok := created["student"]; ok {
		lessons := []appModels.Lesson{
			{
				StudentID:       jan.ID,
				Date:            at(2, 10),
				PickupAddress:   "ul. Mickiewicza 10, Bialystok",
				DropoffAddress:  "ul. Lipowa 5, Bialystok",
				DurationMinutes: 120,
				Confirmed:       true,
			},
			{
				StudentID:       jan.ID,
				Date:            at(5, 8),
				PickupAddress:   "ul. Mickiewicza 10, Bialystok",
				DropoffAddress:  "ul. Mickiewicza 10, Bialystok",
				DurationMinutes: 90,
				Confirmed:       false,
			},
		}
		for _, l := range lessons {
			if _, err := repos.LessonRepository.Create(ctx, l); err != nil {
				lgr.Error().Err(err).Msg("Error seeding lesson")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}
	if anna, ok := created["student2"]; ok {
		lesson := appModels.Lesson{
			StudentID:       anna.ID,
			Date:            at(2, 14),
			PickupAddress:   "ul. Sienkiewicza 22, Bialystok",
			DropoffAddress:  "ul. Sienkiewicza 22, Bialystok",
			DurationMinutes: 60,
			Confirmed:       true,
		}
		if _, err := repos.LessonRepository.Create(ctx, lesson); err != nil {
			lgr.Error().Err(err).Msg("Error seeding lesson")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Schedule: one lecture block and one day off --- //
	lecture := appModels.TimeBlock{
		Date:      helpers.DayStart(now.AddDate(0, 0, 7)),
		StartTime: "17:00",
		EndTime:   "20:00",
		Type:      appModels.BlockLecture,
		Title:     "Wyklady",
	}
	if _, err := repos.TimeBlockRepository.Create(ctx, lecture); err != nil {
		lgr.Error().Err(err).Msg("Error seeding lecture block")
		finalErr = errors.Join(finalErr, err)
	}

	if _, err := repos.DayOffRepository.Toggle(ctx, now.AddDate(0, 0, 10)); err != nil {
		lgr.Error().Err(err).Msg("Error seeding day off")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().
		Int("users", len(created)).
		Msg("Demo data seeded")
	return finalErr
}
