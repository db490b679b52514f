package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/storeops/inventory-api/docs"
	v1 "github.com/storeops/inventory-api/internal/api/handler/v1"
	"github.com/storeops/inventory-api/internal/api/middleware"
	"github.com/storeops/inventory-api/internal/config"
	"github.com/storeops/inventory-api/internal/repository"
	"github.com/storeops/inventory-api/internal/repository/dao"
	"github.com/storeops/inventory-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	inventoryHandler := s.initInventoryHandler(db)
	s.MountHandlers(inventoryHandler)

	return s
}

func (s *Server) initInventoryHandler(db *gorm.DB) *v1.InventoryHandler {
	inventoryDAO := dao.NewInventoryDAO(db)
	repo := repository.NewInventoryRepository(inventoryDAO)
	svc := service.NewInventoryService(repo)
	handler := v1.NewInventoryHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.RequireJSON())
}

func (s *Server) MountHandlers(inventoryHandler *v1.InventoryHandler) {
	inventory := s.Router.Group("/inventory")
	{
		inventory.POST("", inventoryHandler.HandleCreateInventory)
		inventory.GET("", inventoryHandler.HandleListInventories)
		inventory.GET("/:inventoryID", inventoryHandler.HandleGetInventory)
		inventory.PUT("/:inventoryID", inventoryHandler.HandleUpdateInventory)
		inventory.DELETE("/:inventoryID", inventoryHandler.HandleDeleteInventory)
		inventory.PUT("/:inventoryID/restock/:delta", inventoryHandler.HandleRestockInventory)
	}

	s.Router.GET("/", v1.HandleIndex)
	s.Router.GET("/health", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = v1.ServiceName
	docs.SwaggerInfo.Description = "A RESTful inventory-tracking service."
	docs.SwaggerInfo.Version = v1.ServiceVersion
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
