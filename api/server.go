package api

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	db "github.com/CreditPe/CreditPe-Backend/db/sqlc"
	"github.com/CreditPe/CreditPe-Backend/models"
	"github.com/CreditPe/CreditPe-Backend/providers"
	"github.com/CreditPe/CreditPe-Backend/providers/eligibility"
	"github.com/CreditPe/CreditPe-Backend/providers/esign"
	"github.com/CreditPe/CreditPe-Backend/providers/otp"
	"github.com/CreditPe/CreditPe-Backend/providers/payment"
	"github.com/CreditPe/CreditPe-Backend/services"
	application_service "github.com/CreditPe/CreditPe-Backend/services/application"
	"github.com/CreditPe/CreditPe-Backend/services/flow"
	"github.com/CreditPe/CreditPe-Backend/services/monitoring/logging"
	"github.com/CreditPe/CreditPe-Backend/services/security"
	"github.com/CreditPe/CreditPe-Backend/services/session"
	"github.com/CreditPe/CreditPe-Backend/services/storage"
	"github.com/CreditPe/CreditPe-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// / If there's a better place to access this
// / TODO, I feel the config should be the one accessible like this
var TokenController *utils.JWTToken

type Server struct {
	router   *gin.Engine
	store    *db.Store
	config   *utils.Config
	logger   *logging.Logger
	provider *providers.ProviderService
	sessions *session.Service
	flow     *flow.Service
	storage  storage.ObjectStore
	apps     *application_service.ApplicationService
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	conn, err := sql.Open(c.DBDriver, utils.GetDBSource(c, c.DBName))
	if err != nil {
		panic(fmt.Sprintf("Could not load DB: %v", err))
	}

	m, err := migrate.New(
		"file://db/migrations",
		utils.GetDBSource(c, c.DBName),
	)
	if err != nil {
		log.Fatalf("Unable to instantiate the database schema migrator - %v", err)
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			log.Fatalf("Unable to migrate up to the latest database schema - %v", err)
		}
	}

	store := db.NewStore(conn)
	g := gin.Default()
	l := logging.NewLogger()

	redisService, err := services.NewRedisService(&services.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
	})
	if err != nil {
		log.Fatalf("Unable to connect to the session store - %v", err)
	}

	sessions := session.NewService(redisService)
	cache := security.NewCache()

	p := providers.NewProviderService()
	if c.OTPProvider == "stub" {
		p.AddProvider(otp.NewStubProvider(cache, 500*time.Millisecond))
	} else {
		p.AddProvider(otp.NewTwilioProvider(c, l))
	}
	p.AddProvider(eligibility.NewStubProvider(500 * time.Millisecond))
	p.AddProvider(esign.NewStubProvider(cache, 2*time.Second))
	p.AddProvider(payment.NewStubGateway(3 * time.Second))

	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())

	TokenController = utils.NewJWTToken(c)

	return &Server{
		router:   g,
		store:    store,
		config:   c,
		logger:   l,
		provider: p,
		sessions: sessions,
		flow:     flow.NewService(sessions, l),
		storage:  storage.NewS3Storage(c),
		apps:     application_service.NewApplicationService(store.Queries, l),
	}
}

func (s *Server) Start() {

	dr := models.SuccessResponse{
		Status:  "success",
		Message: "Welcome to CreditPe!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	/// Register Object Routers Below
	Auth{}.router(s)
	KYC{}.router(s)
	Documents{}.router(s)
	Eligibility{}.router(s)
	Offer{}.router(s)
	ESign{}.router(s)
	Payment{}.router(s)
	Dashboard{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}

// otpProvider resolves the configured phone verification provider.
func (s *Server) otpProvider() (otp.Provider, bool) {
	name := providers.Twilio
	if s.config.OTPProvider == "stub" {
		name = providers.StubOTP
	}

	p, exists := s.provider.GetProvider(name)
	if !exists {
		return nil, false
	}

	op, ok := p.(otp.Provider)
	return op, ok
}
