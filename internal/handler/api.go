package handler

import (
	"github.com/devfolio/internal/auth"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db       *gorm.DB
	sessions *auth.Manager
	profiles *service.ProfileService
	messages *service.MessageService

	articles    *resourceHandler[db.Article, articleCreateInput, articleUpdateInput]
	skills      *resourceHandler[db.Skill, skillCreateInput, skillUpdateInput]
	experiences *resourceHandler[db.Experience, experienceCreateInput, experienceUpdateInput]
	education   *resourceHandler[db.Education, educationCreateInput, educationUpdateInput]
	activities  *resourceHandler[db.Activity, activityCreateInput, activityUpdateInput]
	values      *resourceHandler[db.Value, valueCreateInput, valueUpdateInput]
	socialLinks *resourceHandler[db.SocialLink, socialLinkCreateInput, socialLinkUpdateInput]

	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, sessions *auth.Manager, uploadDir, uploadURL string) *API {
	return &API{
		db:          gdb,
		sessions:    sessions,
		profiles:    service.NewProfileService(gdb),
		messages:    service.NewMessageService(gdb),
		articles:    newArticleHandler(gdb),
		skills:      newSkillHandler(gdb),
		experiences: newExperienceHandler(gdb),
		education:   newEducationHandler(gdb),
		activities:  newActivityHandler(gdb),
		values:      newValueHandler(gdb),
		socialLinks: newSocialLinkHandler(gdb),
		uploadDir:   uploadDir,
		uploadURL:   uploadURL,
	}
}

// RegisterRoutes 在 /api 下挂载全部路由。
// 读接口公开；写接口除留言创建与发件人自助删除外都要求有效会话。
func (a *API) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", a.Health)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", a.Login)
		authRoutes.POST("/logout", a.Logout)
		authRoutes.GET("/status", a.AuthStatus)
	}

	requireAuth := a.RequireAuth()

	api.GET("/profile", a.GetProfile)
	api.PUT("/profile", requireAuth, a.UpdateProfile)

	a.articles.mount(api, "/articles", requireAuth)
	a.skills.mount(api, "/skills", requireAuth)
	a.experiences.mount(api, "/experiences", requireAuth)
	a.education.mount(api, "/education", requireAuth)
	a.activities.mount(api, "/activities", requireAuth)
	a.values.mount(api, "/values", requireAuth)
	a.socialLinks.mount(api, "/social-links", requireAuth)

	api.GET("/messages", requireAuth, a.ListMessages)
	api.GET("/messages/sender/:email", a.ListMessagesBySender)
	api.POST("/messages", a.CreateMessage)
	api.PUT("/messages/:id/read", requireAuth, a.MarkMessageRead)
	api.DELETE("/messages/:id", requireAuth, a.DeleteMessage)
	api.DELETE("/messages/:id/sender", a.DeleteMessageBySender)

	api.POST("/upload", requireAuth, a.Upload)
}
