package routes

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App          *fiber.App
	UserHandler  handlers.UserHandler
	FoodHandler  handlers.FoodHandler
	ClaimHandler handlers.ClaimHandler
	GroupHandler handlers.GroupHandler
	Middleware   middleware.Middleware
	JWTService   jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Foods()
	c.Claims()
	c.Groups()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	// auth routes
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/foods", c.Middleware.AuthMiddleware(c.JWTService))

	foods.Post("/add", c.FoodHandler.AddFood)
	foods.Get("/mine", c.FoodHandler.GetMyFoods)
	foods.Get("/available", c.FoodHandler.GetAvailableFoods)
	foods.Get("/expiring", c.FoodHandler.GetExpiringFoods)
	foods.Put("/:id", c.FoodHandler.UpdateFood)
	foods.Delete("/:id", c.FoodHandler.DeleteFood)
	foods.Patch("/:id/status", c.FoodHandler.UpdateFoodStatus)
	foods.Post("/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Claims() {
	claims := c.App.Group("/api/claims", c.Middleware.AuthMiddleware(c.JWTService))

	claims.Get("/mine", c.ClaimHandler.GetMyClaims)
	claims.Get("/received", c.ClaimHandler.GetReceivedClaims)
	claims.Post("/:foodId", c.ClaimHandler.CreateClaim)
	claims.Patch("/:id/approve", c.ClaimHandler.ApproveClaim)
	claims.Patch("/:id/reject", c.ClaimHandler.RejectClaim)
}

func (c *Config) Groups() {
	groups := c.App.Group("/api/groups", c.Middleware.AuthMiddleware(c.JWTService))

	groups.Post("/create", c.GroupHandler.CreateGroup)
	groups.Post("/:groupId/invite/:userId", c.GroupHandler.InviteToGroup)
	groups.Get("/mine", c.GroupHandler.GetMyGroups)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
