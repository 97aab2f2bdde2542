package routes

import (
	"flota_ot/internal/adapter/http/handlers"
	"flota_ot/internal/usecase"

	"github.com/gin-gonic/gin"
)

const PathSessions = "/sessions"

func addSessionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, sessions usecase.ISessionUseCase) {
	group := rg.Group(PathSessions)
	{
		group.POST("", sessionHandler.Login)
		group.GET("/me", handlers.RequireSession(sessions), sessionHandler.Me)
		group.DELETE("", handlers.RequireSession(sessions), sessionHandler.Logout)
	}
}
