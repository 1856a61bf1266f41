package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"
	"time"

	intconfig "jobboard/internal/config"
	h "jobboard/internal/http/handlers"
	"jobboard/internal/http/middleware"
	"jobboard/internal/identity"
	"jobboard/internal/repositories"
	"jobboard/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// NewRouter wires repositories, services and handlers into the gin engine.
func NewRouter(env intconfig.Env, db *sql.DB, rdb *redis.Client) *gin.Engine {
	userRepo := repositories.UserRepository{DB: db}
	jobRepo := repositories.JobRepository{DB: db}
	appRepo := repositories.ApplicationRepository{DB: db}

	verifier := identity.NewClient(env.SubscanAPIURL, env.SubscanAPIKey, rdb)

	userSvc := services.NewUserService(userRepo, verifier)
	jobSvc := services.NewJobService(jobRepo, userRepo, appRepo)
	publicSvc := services.NewPublicService(jobRepo, userRepo)

	secureCookies := env.GinMode == gin.ReleaseMode
	users := h.NewUserHandler(userSvc, env.JWTSecret, secureCookies)
	jobs := h.NewJobHandler(jobSvc)
	public := h.NewPublicHandler(publicSvc, db)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.ServiceSecretHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"status":  "error",
			"code":    stdhttp.StatusNotFound,
			"message": "route not found",
		})
	})

	requireUser := middleware.RequireUser(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", public.Health)

		user := api.Group("/user")
		{
			user.POST("/auth", middleware.RequireServiceSecret(env.ServiceSecret), users.Auth)
			user.POST("/register", users.Register)
			user.POST("/login", users.Login)
			user.GET("/profile", requireUser, users.Profile)
			user.PATCH("/update-profile", requireUser, users.UpdateProfile)
			user.PATCH("/connect-wallet/:address", requireUser, users.ConnectWallet)
			user.POST("/logout", requireUser, users.Logout)
		}

		job := api.Group("/job", requireUser)
		{
			job.POST("/post-job", jobs.PostJob)
			job.GET("/fetch-jobs", jobs.FetchJobs)
			job.GET("/fetch-job/:jobId", jobs.FetchJob)
			job.GET("/fetch-job-by-user", jobs.FetchJobsByUser)
			job.PATCH("/update-job/:jobId", jobs.UpdateJob)
			job.PATCH("/deactivate-job/:jobId", jobs.DeactivateJob)
			job.DELETE("/delete-job/:jobId", jobs.DeleteJob)
			job.POST("/job-application", jobs.Apply)
			job.GET("/my-applications", jobs.MyApplications)
			job.GET("/get-applications-for-job/:jobId", jobs.ApplicationsForJob)
			job.GET("/get-applications-for-job/:jobId/export", jobs.ExportApplications)
			job.PATCH("/update-job-application", jobs.UpdateApplicationStatus)
		}

		pub := api.Group("/public")
		{
			pub.GET("/jobs", public.Jobs)
			pub.GET("/users", public.Users)
		}
	}

	return r
}
