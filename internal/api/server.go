package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/ecoleta-app/api/docs"
	v1 "github.com/ecoleta-app/api/internal/api/handler/v1"
	"github.com/ecoleta-app/api/internal/api/middleware"
	"github.com/ecoleta-app/api/internal/config"
	"github.com/ecoleta-app/api/internal/repository"
	"github.com/ecoleta-app/api/internal/repository/dao"
	"github.com/ecoleta-app/api/internal/service"
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

	pointHandler := s.initPointHandler(db)
	itemHandler := s.initItemHandler(db)
	locationHandler := s.initLocationHandler()
	s.MountHandlers(pointHandler, itemHandler, locationHandler)

	return s
}

func (s *Server) initPointHandler(db *gorm.DB) *v1.PointHandler {
	pointDAO := dao.NewPointDAO(db)
	repo := repository.NewPointRepository(pointDAO)
	svc := service.NewPointService(repo, s.Config.API.DefaultPointImage)
	handler := v1.NewPointHandler(svc)

	return handler
}

func (s *Server) initItemHandler(db *gorm.DB) *v1.ItemHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)
	svc := service.NewItemService(repo)
	handler := v1.NewItemHandler(svc)

	return handler
}

func (s *Server) initLocationHandler() *v1.LocationHandler {
	svc := service.NewLocationService(s.Config.IBGE.BaseURL)
	handler := v1.NewLocationHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.Config.API.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))
}

func (s *Server) MountHandlers(pointHandler *v1.PointHandler, itemHandler *v1.ItemHandler, locationHandler *v1.LocationHandler) {
	s.Router.GET("/items", itemHandler.HandleListItems)
	s.Router.GET("/points", pointHandler.HandleListPoints)
	s.Router.GET("/points/:id", pointHandler.HandleGetPoint)
	s.Router.POST("/points", pointHandler.HandleCreatePoint)

	locations := s.Router.Group("/locations")
	{
		locations.GET("/ufs", locationHandler.HandleListUFs)
		locations.GET("/ufs/:uf/cities", locationHandler.HandleListCities)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Ecoleta API"
	docs.SwaggerInfo.Description = "Registry of recyclable-material collection points."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
