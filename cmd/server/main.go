package main

import (
	"log"
	"net/http"
	"time"

	"booth-rally-backend/internal/config"
	"booth-rally-backend/internal/database"
	"booth-rally-backend/internal/handlers"
	"booth-rally-backend/internal/middleware"
	"booth-rally-backend/internal/services"
	"booth-rally-backend/internal/ws"

	_ "booth-rally-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Booth Rally API
// @version         1.0
// @description     Event gamification backend: booth scans, staff point allocation, rewards, lucky draw
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	gameService := services.NewGameService(db)
	authService := services.NewAuthService(db, gameService, cfg.JWTSecret, cfg.AdminPassword)
	participantService := services.NewParticipantService(db)
	scanService := services.NewScanService(db, gameService)
	allocationService := services.NewAllocationService(db, gameService)
	rewardService := services.NewRewardService(db)
	drawService := services.NewLuckyDrawService(db, cfg.Blacklist, cfg.LuckyWinnerCount)
	tokenService := services.NewTokenService(db, scanService, cfg.BaseURL,
		time.Duration(cfg.TokenSweepMinutes)*time.Minute)

	tokenService.StartSweeper()
	defer tokenService.StopSweeper()

	authHandler := handlers.NewAuthHandler(authService)
	boothHandler := handlers.NewBoothHandler(participantService, gameService)
	scanHandler := handlers.NewScanHandler(scanService, tokenService, hub)
	allocationHandler := handlers.NewAllocationHandler(allocationService, participantService, hub)
	rewardHandler := handlers.NewRewardHandler(rewardService)
	gameHandler := handlers.NewGameHandler(gameService, hub)
	tokenHandler := handlers.NewTokenHandler(tokenService)
	drawHandler := handlers.NewDrawHandler(drawService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/game", wsHandler.HandleGame)
	r.GET("/ws/leaderboard", wsHandler.HandleLeaderboard)
	r.GET("/ws/booth/:id", wsHandler.HandleBooth)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/admin", authHandler.AdminLogin)
		}

		api.GET("/booths", boothHandler.ListBooths)
		api.GET("/leaderboard", boothHandler.Leaderboard)
		api.GET("/state", boothHandler.State)

		me := api.Group("")
		me.Use(middleware.ParticipantAuth(authService))
		{
			me.GET("/me", boothHandler.Me)
			me.POST("/scan", scanHandler.Scan)
			me.POST("/tokens/:id/redeem", scanHandler.RedeemToken)
			me.POST("/codes/redeem", scanHandler.RedeemCode)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(authService))
		{
			admin.GET("/participants", allocationHandler.Roster)
			admin.GET("/booths/:id/allocations", allocationHandler.ListWaiting)
			admin.POST("/allocations/:id/complete", allocationHandler.Complete)
			admin.POST("/allocations/:id/cancel", allocationHandler.Cancel)
			admin.PUT("/participants/:handle/scores", allocationHandler.SetScore)
			admin.GET("/participants/:handle/rewards", rewardHandler.Status)
			admin.POST("/participants/:handle/rewards", rewardHandler.Claim)
			admin.DELETE("/participants/:handle/rewards/:tier_id", rewardHandler.Unclaim)
			admin.PUT("/game/status", gameHandler.SetStatus)
			admin.POST("/game/reset", gameHandler.Reset)
			admin.POST("/lucky-draw", drawHandler.Draw)
			admin.GET("/lucky-draw", drawHandler.Latest)
			admin.POST("/tokens", tokenHandler.Mint)
			admin.GET("/tokens/:id/qr.png", tokenHandler.QRImage)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
