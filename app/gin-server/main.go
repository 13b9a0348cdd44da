package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/melroseheights/portfolio-backend/config"
	"github.com/melroseheights/portfolio-backend/internal/api/handlers"
	"github.com/melroseheights/portfolio-backend/internal/api/middleware"
	"github.com/melroseheights/portfolio-backend/internal/api/routes"
	"github.com/melroseheights/portfolio-backend/internal/cache"
	"github.com/melroseheights/portfolio-backend/internal/logger"
	"github.com/melroseheights/portfolio-backend/internal/models"
	mongorepo "github.com/melroseheights/portfolio-backend/internal/repositories/mongo"
	"github.com/melroseheights/portfolio-backend/internal/seed"
	"github.com/melroseheights/portfolio-backend/internal/services"
	"github.com/melroseheights/portfolio-backend/internal/uploads"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	mongo, err := config.ConnectMongo(ctx)
	if err != nil {
		log.WithError(err).Fatal("mongodb init failed")
	}
	defer mongo.Close(ctx)
	log.Info("mongodb connected")

	if err := config.EnsureIndexes(mongo); err != nil {
		log.WithError(err).Fatal("mongodb index setup failed")
	}

	if err := seed.EnsureDefaults(ctx, mongo.DB, log); err != nil {
		log.WithError(err).Fatal("default data seeding failed")
	}

	var c cache.Cache = cache.NewNoopCache()
	if rdb, err := config.ConnectRedis(ctx); err != nil {
		log.WithError(err).Fatal("redis init failed")
	} else if rdb != nil {
		c = cache.NewRedisCache(rdb)
		log.Info("redis connected")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	store, err := uploads.NewStore(uploadDir)
	if err != nil {
		log.WithError(err).Fatal("upload store init failed")
	}
	ingest := uploads.NewIngestor(store, log)

	// Repositories.
	personalRepo := mongorepo.NewSingletonRepository[models.PersonalInfo](mongo.DB, mongorepo.ColPersonalInfo)
	socialRepo := mongorepo.NewSingletonRepository[models.SocialLinks](mongo.DB, mongorepo.ColSocialLinks)
	skillRepo := mongorepo.NewRepository[models.Skill](mongo.DB, mongorepo.ColSkills)
	expRepo := mongorepo.NewRepository[models.Experience](mongo.DB, mongorepo.ColExperience)
	projectRepo := mongorepo.NewRepository[models.Project](mongo.DB, mongorepo.ColProjects)
	awardRepo := mongorepo.NewRepository[models.Award](mongo.DB, mongorepo.ColAwards)
	imageRepo := mongorepo.NewRepository[models.PortfolioImage](mongo.DB, mongorepo.ColPortfolioImages)
	videoRepo := mongorepo.NewRepository[models.Video](mongo.DB, mongorepo.ColVideos)

	// Services.
	personalSvc := services.NewSingletonService(personalRepo, c, "portfolio:personal")
	socialSvc := services.NewSingletonService(socialRepo, c, "portfolio:social")
	mediaSvc := services.NewMediaService(imageRepo, videoRepo, ingest, store, log)
	authSvc := services.NewAuthService()

	// HTTP surface.
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	routes.RegisterRoutes(r, routes.Deps{
		Personal:   handlers.NewSingletonHandler[models.PersonalInfo, models.PersonalInfoUpdate](personalSvc, "PersonalInfo"),
		Social:     handlers.NewSingletonHandler[models.SocialLinks, models.SocialLinksUpdate](socialSvc, "SocialLinks"),
		Skills:     handlers.NewCrudHandler[models.Skill, models.SkillCreate, models.SkillUpdate](skillRepo, "Skill", nil),
		Experience: handlers.NewCrudHandler[models.Experience, models.ExperienceCreate, models.ExperienceUpdate](expRepo, "Experience", nil),
		Projects:   handlers.NewCrudHandler[models.Project, models.ProjectCreate, models.ProjectUpdate](projectRepo, "Project", nil),
		Awards:     handlers.NewCrudHandler[models.Award, models.AwardCreate, models.AwardUpdate](awardRepo, "Award", nil),
		Images:     handlers.NewImageHandler(imageRepo, mediaSvc),
		Videos:     handlers.NewVideoHandler(videoRepo, mediaSvc),
		Files:      handlers.NewFileHandler(store),
		Auth:       handlers.NewAuthHandler(authSvc),
		AuthSecret: authSvc.Secret(),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
