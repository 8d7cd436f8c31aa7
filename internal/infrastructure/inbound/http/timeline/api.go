package timeline_http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	timeline_service "timeline-service/internal/domain/ports/input/timeline"
	ports "timeline-service/internal/domain/ports/output"
)

type TimelineHTTPService struct {
	login       *LoginHandler
	authCheck   *AuthCheckHandler
	getTimeline *GetTimelineHandler
	getNewPosts *GetNewPostsHandler
	createPost  *CreatePostHandler
	countPosts  *PostCountHandler
	logout      *LogoutHandler
}

func NewTimelineHTTPService(service timeline_service.Service, log ports.Logger) *TimelineHTTPService {
	validate := validator.New()
	return &TimelineHTTPService{
		login:       NewLoginHandler(service, validate, log),
		authCheck:   NewAuthCheckHandler(),
		getTimeline: NewGetTimelineHandler(service, log),
		getNewPosts: NewGetNewPostsHandler(service, log),
		createPost:  NewCreatePostHandler(service, validate, log),
		countPosts:  NewPostCountHandler(service, log),
		logout:      NewLogoutHandler(),
	}
}

// Register mounts the JSON API under /api.
func (s *TimelineHTTPService) Register(router fiber.Router) {
	api := router.Group("/api")
	api.Post("/login", s.login.Login)
	api.Get("/auth/check", s.authCheck.Check)
	api.Get("/timeline", s.getTimeline.GetTimeline)
	api.Get("/timeline/new", s.getNewPosts.GetNewPosts)
	api.Post("/posts", s.createPost.CreatePost)
	api.Get("/posts/count", s.countPosts.CountPosts)
	api.Post("/logout", s.logout.Logout)
}
