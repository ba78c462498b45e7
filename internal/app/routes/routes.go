package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mcharewicz/oskplanner/internal/app/controllers"
	"github.com/mcharewicz/oskplanner/internal/app/models"
	"github.com/mcharewicz/oskplanner/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	calendarController *controllers.CalendarController,
	lessonController *controllers.LessonController,
	scheduleController *controllers.ScheduleController,
	userController *controllers.UserController,
	groupController *controllers.GroupController,
	schoolController *controllers.SchoolController,
	errorLogController *controllers.ErrorLogController,
	consoleController *controllers.ConsoleController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Calendar month grid, filtered per viewer role
		authenticated.GET("/calendar", calendarController.GetMonthGrid)

		// Lessons visible to every signed-in user; students book their own
		lessons := authenticated.Group("/lessons")
		{
			lessons.GET("", lessonController.ListLessons)
			lessons.POST("", lessonController.BookLesson)

			lessonsStaff := lessons.Group("")
			lessonsStaff.Use(authMiddleware.StaffRequired())
			{
				lessonsStaff.POST("/staff", lessonController.StaffBookLesson)
				lessonsStaff.GET("/unconfirmed-count", lessonController.UnconfirmedCount)
				lessonsStaff.PUT("/:id/confirm", lessonController.ConfirmLesson)
				lessonsStaff.PUT("/:id/reschedule", lessonController.RescheduleLesson)
			}

			// Students may cancel their own unconfirmed lessons, so no
			// staff gate here; the service enforces ownership.
			lessons.DELETE("/:id", lessonController.CancelLesson)
		}

		// Schedule blocks and days off; reads are open, writes are staff-only
		schedule := authenticated.Group("/schedule")
		{
			schedule.GET("/blocks", scheduleController.ListBlocks)
			schedule.GET("/days-off", scheduleController.ListDaysOff)

			scheduleStaff := schedule.Group("")
			scheduleStaff.Use(authMiddleware.StaffRequired())
			{
				scheduleStaff.POST("/blocks", scheduleController.AddBlock)
				scheduleStaff.PUT("/blocks/:id/reschedule", scheduleController.RescheduleBlock)
				scheduleStaff.DELETE("/blocks/:id", scheduleController.DeleteBlock)
				scheduleStaff.POST("/days-off/toggle", scheduleController.ToggleDayOff)
			}
		}

		// Account management is staff-only
		staff := authenticated.Group("")
		staff.Use(authMiddleware.StaffRequired())
		{
			staff.GET("/users", userController.ListUsers)
			staff.PUT("/users/:id", userController.UpdateUser)
			staff.DELETE("/users/:id", userController.DeleteUser)
			staff.GET("/students", userController.ListStudents)
			staff.PUT("/students/:id/progress", userController.UpdateStudentProgress)
		}

		// Course groups; reads are open to every signed-in user
		groups := authenticated.Group("/groups")
		{
			groups.GET("", groupController.ListGroups)

			groupsStaff := groups.Group("")
			groupsStaff.Use(authMiddleware.StaffRequired())
			{
				groupsStaff.POST("", groupController.CreateGroup)
				groupsStaff.PUT("/:id", groupController.RenameGroup)
				groupsStaff.DELETE("/:id", groupController.DeleteGroup)
			}
		}

		// School profile
		authenticated.GET("/school", schoolController.GetSchoolInfo)
		schoolStaff := authenticated.Group("/school")
		schoolStaff.Use(authMiddleware.StaffRequired())
		{
			schoolStaff.PUT("", schoolController.UpdateSchoolInfo)
		}

		// Error reports: any signed-in user may report, staff review
		authenticated.POST("/errors", errorLogController.LogError)
		staff.GET("/errors", errorLogController.ListErrors)

		// Raw store snapshots for administrative inspection
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/console", consoleController.Collections)
			admin.GET("/console/:collection", consoleController.Dump)
		}
	}
}
