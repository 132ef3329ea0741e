package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/astropalm/backend-go/internal/handler"
)

// SetupRouter binds each handler to a named procedure under the /rpc
// prefix: GET for queries, POST for mutations. The router itself performs
// no business logic.
func SetupRouter(
	userHandler *handler.UserHandler,
	palmReadingHandler *handler.PalmReadingHandler,
	astrologyReadingHandler *handler.AstrologyReadingHandler,
	translationHandler *handler.TranslationHandler,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Cross-origin requests permitted from any origin
	r.Use(cors.Default())

	rpc := r.Group("/rpc")
	{
		rpc.GET("/healthcheck", handler.Healthcheck)

		// Users
		rpc.POST("/createUser", userHandler.CreateUser)
		rpc.POST("/updateUser", userHandler.UpdateUser)
		rpc.GET("/getUser", userHandler.GetUser)

		// Palm readings
		rpc.POST("/uploadPalmImage", palmReadingHandler.UploadPalmImage)
		rpc.GET("/getUserPalmReadings", palmReadingHandler.GetUserPalmReadings)
		rpc.GET("/getPalmReadingById", palmReadingHandler.GetPalmReadingByID)

		// Astrology readings
		rpc.POST("/createAstrologyReading", astrologyReadingHandler.CreateAstrologyReading)
		rpc.GET("/getUserAstrologyReadings", astrologyReadingHandler.GetUserAstrologyReadings)
		rpc.GET("/getAstrologyReadingById", astrologyReadingHandler.GetAstrologyReadingByID)

		// Translations
		rpc.POST("/createTranslation", translationHandler.CreateTranslation)
		rpc.GET("/getTranslations", translationHandler.GetTranslations)
	}

	return r
}
