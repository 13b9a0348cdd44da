package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/melroseheights/portfolio-backend/internal/api/handlers"
	"github.com/melroseheights/portfolio-backend/internal/api/middleware"
	"github.com/melroseheights/portfolio-backend/internal/models"
)

type Deps struct {
	Personal   *handlers.SingletonHandler[models.PersonalInfo, models.PersonalInfoUpdate]
	Social     *handlers.SingletonHandler[models.SocialLinks, models.SocialLinksUpdate]
	Skills     *handlers.CrudHandler[models.Skill, models.SkillCreate, models.SkillUpdate]
	Experience *handlers.CrudHandler[models.Experience, models.ExperienceCreate, models.ExperienceUpdate]
	Projects   *handlers.CrudHandler[models.Project, models.ProjectCreate, models.ProjectUpdate]
	Awards     *handlers.CrudHandler[models.Award, models.AwardCreate, models.AwardUpdate]
	Images     *handlers.ImageHandler
	Videos     *handlers.VideoHandler
	Files      *handlers.FileHandler
	Auth       *handlers.AuthHandler

	// AuthSecret guards mutating routes when non-empty; empty leaves every
	// endpoint open.
	AuthSecret string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Portfolio API is running!"})
	})
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"message":   "Portfolio API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	if d.AuthSecret != "" {
		api.POST("/auth/login", d.Auth.Login)
	}

	// Reads stay open.
	api.GET("/personal", d.Personal.Get)
	api.GET("/social", d.Social.Get)
	api.GET("/skills", d.Skills.List)
	api.GET("/experience", d.Experience.List)
	api.GET("/projects", d.Projects.List)
	api.GET("/awards", d.Awards.List)
	api.GET("/images", d.Images.List)
	api.GET("/videos", d.Videos.List)
	api.GET("/uploads/*filepath", d.Files.Serve)

	// Mutations, optionally behind the admin guard.
	mut := api.Group("")
	if d.AuthSecret != "" {
		mut.Use(middleware.RequireAdmin(d.AuthSecret))
	}

	mut.PUT("/personal", d.Personal.Update)
	mut.PUT("/social", d.Social.Update)

	mut.POST("/skills", d.Skills.Create)
	mut.PUT("/skills/:id", d.Skills.Update)
	mut.DELETE("/skills/:id", d.Skills.Delete)

	mut.POST("/experience", d.Experience.Create)
	mut.PUT("/experience/:id", d.Experience.Update)
	mut.DELETE("/experience/:id", d.Experience.Delete)

	mut.POST("/projects", d.Projects.Create)
	mut.PUT("/projects/:id", d.Projects.Update)
	mut.DELETE("/projects/:id", d.Projects.Delete)

	mut.POST("/awards", d.Awards.Create)
	mut.PUT("/awards/:id", d.Awards.Update)
	mut.DELETE("/awards/:id", d.Awards.Delete)

	mut.POST("/images", d.Images.Create)
	mut.POST("/images/upload", d.Images.Upload)
	mut.POST("/images/upload/bulk", d.Images.BulkUpload)
	mut.PUT("/images/:id", d.Images.Update)
	mut.DELETE("/images/:id", d.Images.Delete)

	mut.POST("/videos", d.Videos.Create)
	mut.POST("/videos/upload", d.Videos.Upload)
	mut.PUT("/videos/:id", d.Videos.Update)
	mut.DELETE("/videos/:id", d.Videos.Delete)
}
