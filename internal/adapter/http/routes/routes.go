package routes

import (
	"log"
	"strconv"

	_ "bizhub/docs" // This will be auto-generated
	"bizhub/internal/adapter/http/handlers"
	"bizhub/internal/adapter/persistence/repository"
	"bizhub/internal/infrastructure/database"
	"bizhub/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	contactRepo := repository.NewContactDynamoRepository(ddb)
	organisationRepo := repository.NewOrganisationDynamoRepository(ddb)
	organisationContactRepo := repository.NewOrganisationContactDynamoRepository(ddb)
	websiteRepo := repository.NewWebsiteDynamoRepository(ddb)
	fieldValueRepo := repository.NewFieldValueDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, organisationRepo, contactRepo)
	contactUseCase := usecase.NewContactUseCase(contactRepo)
	organisationUseCase := usecase.NewOrganisationUseCase(organisationRepo, organisationContactRepo, contactRepo)
	websiteUseCase := usecase.NewWebsiteUseCase(websiteRepo, organisationRepo)
	fieldValueUseCase := usecase.NewFieldValueUseCase(fieldValueRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	contactHandler := handlers.NewContactHandler(contactUseCase)
	organisationHandler := handlers.NewOrganisationHandler(organisationUseCase)
	websiteHandler := handlers.NewWebsiteHandler(websiteUseCase)
	fieldValueHandler := handlers.NewFieldValueHandler(fieldValueUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addHubRoutes(v1, quoteHandler, contactHandler, organisationHandler, websiteHandler, fieldValueHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
