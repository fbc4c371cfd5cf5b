package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pantheon-service/internal/api/http/handlers"
	"github.com/spec-kit/pantheon-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Gods           *handlers.GodsHandler
	Posts          *handlers.PostsHandler
	Comments       *handlers.CommentsHandler
	Follows        *handlers.FollowsHandler
	Chat           *handlers.ChatHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	requireAuth := cfg.AuthMiddleware.RequireAuth

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", requireAuth, cfg.Auth.Logout)

	users := app.Group("/users", requireAuth)
	users.Get("/me", cfg.Users.Me)
	users.Patch("/me", cfg.Users.UpdateMe)
	users.Delete("/me", cfg.Users.DeleteMe)
	users.Get("/search", auth.RequireAdmin(), cfg.Users.Search)
	users.Get("/", auth.RequireAdmin(), cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Get("/:id/posts", cfg.Posts.ListByUser)
	users.Get("/:id/comments", cfg.Comments.ListByUser)
	users.Delete("/:id", auth.RequireAdmin(), cfg.Users.Delete)
	users.Patch("/:id/role", auth.RequireAdmin(), cfg.Users.ChangeRole)
	users.Patch("/:id/status", auth.RequireAdmin(), cfg.Users.ToggleStatus)

	gods := app.Group("/gods")
	gods.Get("/", cfg.Gods.List)
	gods.Post("/", requireAuth, auth.RequireAdmin(), cfg.Gods.Create)
	gods.Put("/:id", requireAuth, auth.RequireAdmin(), cfg.Gods.Update)
	gods.Delete("/:id", requireAuth, auth.RequireAdmin(), cfg.Gods.Delete)

	posts := app.Group("/posts", requireAuth)
	posts.Post("/", cfg.Posts.Create)
	posts.Get("/", cfg.Posts.List)
	posts.Get("/:id", cfg.Posts.Get)
	posts.Put("/:id", cfg.Posts.Update)
	posts.Delete("/:id", cfg.Posts.Delete)
	posts.Post("/:id/comments", cfg.Comments.Create)
	posts.Get("/:id/comments", cfg.Comments.ListByPost)

	comments := app.Group("/comments", requireAuth)
	comments.Put("/:id", cfg.Comments.Update)
	comments.Delete("/:id", cfg.Comments.Delete)

	follows := app.Group("/follows", requireAuth)
	follows.Get("/following", cfg.Follows.Following)
	follows.Get("/followers", cfg.Follows.Followers)
	follows.Post("/:id", cfg.Follows.Follow)
	follows.Delete("/:id", cfg.Follows.Unfollow)
	follows.Get("/:id/status", cfg.Follows.Status)
	follows.Get("/:id/following", cfg.Follows.FollowingOf)
	follows.Get("/:id/followers", cfg.Follows.FollowersOf)

	chat := app.Group("/chat", requireAuth)
	chat.Post("/sessions", cfg.Chat.CreateSession)
	chat.Get("/sessions", cfg.Chat.ListSessions)
	chat.Delete("/sessions/:id", cfg.Chat.DeleteSession)
	chat.Post("/sessions/:id/messages", cfg.Chat.SendMessage)
	chat.Get("/sessions/:id/messages", cfg.Chat.ListMessages)
	chat.Put("/sessions/:id/messages/:messageID", cfg.Chat.ModifyMessage)
	chat.Delete("/sessions/:id/messages/:messageID", cfg.Chat.DeleteMessage)

	admin := app.Group("/admin", requireAuth, auth.RequireAdmin())
	admin.Delete("/posts/:id", cfg.Posts.AdminDelete)
	admin.Get("/stats", cfg.Health.Stats)
}
