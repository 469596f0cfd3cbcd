// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/self-bank/internal/beneficiarydelivery"
	"github.com/go-petr/self-bank/internal/beneficiaryrepo"
	"github.com/go-petr/self-bank/internal/beneficiaryservice"
	"github.com/go-petr/self-bank/internal/ledgerrepo"
	"github.com/go-petr/self-bank/internal/middleware"
	"github.com/go-petr/self-bank/internal/savingsrepo"
	"github.com/go-petr/self-bank/internal/templaterepo"
	"github.com/go-petr/self-bank/internal/templateservice"
	"github.com/go-petr/self-bank/internal/transferdelivery"
	"github.com/go-petr/self-bank/internal/transferexec"
	"github.com/go-petr/self-bank/internal/transferservice"
	"github.com/go-petr/self-bank/internal/userrepo"
	"github.com/go-petr/self-bank/pkg/configpkg"
	"github.com/go-petr/self-bank/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	savingsRepo := savingsrepo.NewRepoPGS(conn)
	beneficiaryRepo := beneficiaryrepo.NewRepoPGS(conn)
	templateRepo := templaterepo.NewRepoPGS(conn)
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	beneficiaryService := beneficiaryservice.New(beneficiaryRepo, savingsRepo)
	templateService := templateservice.New(templateRepo, beneficiaryRepo)
	transferService := transferservice.New(
		templateService,
		beneficiaryRepo,
		ledgerRepo,
		transferexec.New(config.LedgerBaseURL),
		transferservice.ConfigLimits{Config: config},
	)

	beneficiaryHandler := beneficiarydelivery.NewHandler(beneficiaryService)
	transferHandler := transferdelivery.NewHandler(transferService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker, userRepo))

	authRoutes.POST("/beneficiaries/tpt", beneficiaryHandler.Create)
	authRoutes.GET("/beneficiaries/tpt", beneficiaryHandler.List)
	authRoutes.GET("/beneficiaries/tpt/template", beneficiaryHandler.Template)
	authRoutes.PUT("/beneficiaries/tpt/:id", beneficiaryHandler.Update)
	authRoutes.DELETE("/beneficiaries/tpt/:id", beneficiaryHandler.Delete)

	authRoutes.POST("/account-transfers", transferHandler.Create)
	authRoutes.GET("/account-transfers/template", transferHandler.Template)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("currency", beneficiarydelivery.ValidCurrency)
		if err != nil {
			return nil, errors.New("cannot register currency validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
