package api

import (
	"github.com/gin-gonic/gin"

	"github.com/vta-edu/schedule-back/internal/db"

	_ "github.com/vta-edu/schedule-back/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Schedule API
// @version         1.0
// @description     Scheduling backend for a vocational school: sessions, conflicts, progress and completion.
// @host            localhost:8000
// @BasePath        /

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		if err := db.PingDB(); err != nil {
			c.JSON(500, gin.H{"status": "db_ping_error"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Entities
	r.GET("/teachers", ListTeachers)
	r.POST("/teachers", CreateTeacher)
	r.PUT("/teachers/:id", UpdateTeacher)
	r.DELETE("/teachers/:id", DeleteTeacher)

	r.GET("/subjects", ListSubjects)
	r.POST("/subjects", CreateSubject)
	r.PUT("/subjects/:id", UpdateSubject)
	r.DELETE("/subjects/:id", DeleteSubject)
	r.GET("/subjects/:id/teachers", GetSubjectTeachers)
	r.GET("/subjects/:id/eligible-classes", GetEligibleClasses)
	r.GET("/subjects/:id/finished", GetSubjectFinished)
	r.PATCH("/subjects/:id/completion", SetSubjectCompletion)

	r.GET("/classes", ListClasses)
	r.POST("/classes", CreateClass)
	r.PUT("/classes/:id", UpdateClass)
	r.DELETE("/classes/:id", DeleteClass)

	r.GET("/holidays", ListHolidays)
	r.POST("/holidays", CreateHoliday)
	r.DELETE("/holidays/:id", DeleteHoliday)

	// Schedules
	r.GET("/schedules", ListSchedules)
	r.POST("/schedules", CreateSchedule)
	r.POST("/schedules/continue-week", ContinueNextWeek)
	r.PUT("/schedules/:id", UpdateSchedule)
	r.DELETE("/schedules/:id", DeleteSchedule)
	r.GET("/schedules/:id/related", GetRelatedSchedules)
	r.PATCH("/schedules/:id/status", ChangeScheduleStatus)
	r.GET("/schedules/:id/sequence", GetScheduleSequence)

	// Progress
	r.GET("/progress", GetProgress)

	// Import
	r.POST("/import/schedules", ImportSchedules)

	return r
}
