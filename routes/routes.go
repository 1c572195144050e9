package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/pg-server/controllers"
	"github.com/vnkhanh/pg-server/middleware"
	"github.com/vnkhanh/pg-server/services"
)

// Handlers is everything SetupRoutes mounts. Admin-side fields stay nil in
// web mode, which leaves only the public surface registered.
type Handlers struct {
	Health  *controllers.HealthController
	PG      *controllers.PGController
	Intake  *controllers.IntakeController
	Auth    *controllers.AuthController
	Admin   *controllers.AdminController
	Content *controllers.ContentController
	Export  *controllers.ExportController

	Sessions   middleware.SessionResolver
	CookieName string

	IntakeLimiter *middleware.IPRateLimiter
	LoginLimiter  *middleware.IPRateLimiter
}

func (h Handlers) adminEnabled() bool {
	return h.Auth != nil && h.Admin != nil && h.Content != nil && h.Export != nil && h.Sessions != nil
}

func SetupRoutes(r *gin.Engine, h Handlers) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	r.GET("/health", h.Health.Check)

	api := r.Group("/api")
	{
		pg := api.Group("/pg")
		{
			pg.GET("/listings", h.PG.List)
			pg.GET("/featured", h.PG.Featured)
			pg.GET("/:id", h.PG.Detail)
		}
		intake := middleware.RateLimitByIP(h.IntakeLimiter)
		api.POST("/inquiry", intake, h.Intake.SubmitInquiry)
		api.POST("/owner-onboarding", intake, h.Intake.SubmitOnboarding)

		if !h.adminEnabled() {
			return
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimitByIP(h.LoginLimiter), h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/session", h.Auth.Session)
		}

		// Bootstrap: open until the first admin exists.
		api.POST("/admin/create-admin", middleware.OptionalAdmin(h.Sessions, h.CookieName), h.Auth.CreateAdmin)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(h.Sessions, h.CookieName))
		{
			pgs := admin.Group("/pgs")
			pgs.GET("", h.Admin.ListPGs)
			pgs.POST("", h.Admin.CreatePG)
			pgs.GET("/:id", h.Admin.GetPG)
			pgs.PATCH("/:id", h.Admin.UpdatePG)
			pgs.DELETE("/:id", h.Admin.DeletePG)

			pgs.POST("/:id/images", h.Content.AddImage)
			pgs.POST("/:id/videos", h.Content.AddVideo)
			pgs.POST("/:id/rent-plans", h.Content.AddRentPlan)
			pgs.POST("/:id/amenities", h.Content.AddAmenity)
			pgs.POST("/:id/rules", h.Content.AddRule)
			for _, kind := range []string{
				services.KindImages, services.KindVideos, services.KindRentPlans,
				services.KindAmenities, services.KindRules,
			} {
				pgs.DELETE("/:id/"+kind+"/:itemId", h.Content.RemoveItem(kind))
			}

			admin.GET("/owners", h.Admin.ListOwners)
			admin.POST("/owners", h.Admin.CreateOwner)

			inquiries := admin.Group("/inquiries")
			inquiries.GET("", h.Admin.ListInquiries)
			inquiries.GET("/export", h.Export.Inquiries)
			inquiries.PATCH("/:id", h.Admin.UpdateInquiry)

			onboarding := admin.Group("/owner-onboarding")
			onboarding.GET("", h.Admin.ListOnboardings)
			onboarding.GET("/export", h.Export.Onboardings)
			onboarding.PATCH("/:id", h.Admin.UpdateOnboarding)
		}
	}
}
