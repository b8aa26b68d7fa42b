package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/expertise-hunt/internal/handlers"
	"github.com/sbilibin2017/expertise-hunt/internal/identity"
	"github.com/sbilibin2017/expertise-hunt/internal/jwt"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/middlewares"
	"github.com/sbilibin2017/expertise-hunt/internal/repositories"
	"github.com/sbilibin2017/expertise-hunt/internal/services"
	"github.com/sbilibin2017/expertise-hunt/internal/txmanager"
	"github.com/sbilibin2017/expertise-hunt/internal/workers"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	appHost, appPort, logLevel string
	grpcPort                   string

	pgHost                         string
	pgPort                         int
	pgUser, pgPassword, pgDB       string
	pgMaxOpenConns, pgMaxIdleConns int

	redisHost                        string
	redisPort, redisDB               int
	redisPassword                    string
	redisPoolSize, redisMinIdleConns int
	redisCacheTTLSecond              int

	kafkaBrokers []string
	kafkaTopic   string

	outboxPollIntervalMS, outboxBatchSize int

	jwtSecretKey string
	jwtExpSecond int

	humanIDMaxAttempts int
}

// @title expertise-hunt API
// @version 1.0.0
// @description Friends, friend requests, profiles, the market-value guessing game and category quizzes
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, outbox, JWT and allocator settings.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.grpcPort = getEnv("GRPC_PORT", "50051")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.redisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.redisCacheTTLSecond, err = getInt("REDIS_CACHE_TTL_SECOND", "300"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
		}
	}
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "friend-graph-events")

	// Outbox relay config
	if cfg.outboxPollIntervalMS, err = getInt("OUTBOX_POLL_INTERVAL_MS", "1000"); err != nil {
		return
	}
	if cfg.outboxBatchSize, err = getInt("OUTBOX_BATCH_SIZE", "100"); err != nil {
		return
	}

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getInt("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}

	if cfg.humanIDMaxAttempts, err = getInt("HUMAN_ID_MAX_ATTEMPTS", strconv.Itoa(services.DefaultMaxAllocationAttempts)); err != nil {
		return
	}

	return
}

// friendRequests serves account deletion, which needs both sides of the
// friend request store.
type friendRequests struct {
	*repositories.FriendRequestReadRepository
	*repositories.FriendRequestWriteRepository
}

// run initializes the logger, database, Redis, Kafka, the outbox relay and
// the HTTP and gRPC servers. It sets up routes, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer; connections are opened on the first publish
	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.kafkaBrokers...),
		Topic:                  cfg.kafkaTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	defer func() {
		if err := kafkaWriter.Close(); err != nil {
			logger.Log.Errorw("Kafka writer close error", "error", err)
		}
	}()

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	txManager := txmanager.New(db)
	txGetter := repositories.TxGetter(txmanager.GetTxFromContext)

	accountReadRepo := repositories.NewAccountReadRepository(db, txGetter)
	accountWriteRepo := repositories.NewAccountWriteRepository(db, txGetter)
	humanIDRepo := repositories.NewHumanIDRepository(db, txGetter)
	humanIDCacheRepo := repositories.NewHumanIDCacheRepository(rdb, time.Duration(cfg.redisCacheTTLSecond)*time.Second)
	requestReadRepo := repositories.NewFriendRequestReadRepository(db, txGetter)
	requestWriteRepo := repositories.NewFriendRequestWriteRepository(db, txGetter)
	imageRepo := repositories.NewProfileImageRepository(db, txGetter)
	playerRepo := repositories.NewPlayerRepository(db)
	guessRepo := repositories.NewGuessRepository(db, txGetter)
	questionRepo := repositories.NewQuestionRepository(db)
	answerRepo := repositories.NewQuizAnswerRepository(db, txGetter)
	outboxRepo := repositories.NewOutboxRepository(db, txGetter)
	notificationRepo := repositories.NewRequestNotificationRepository(rdb)

	// Initialize services
	identityProvider := identity.NewContextProvider()
	allocator := services.NewHumanIDAllocator(humanIDRepo, cfg.humanIDMaxAttempts, services.WithCache(humanIDCacheRepo))

	authService := services.NewAuthService(
		txManager, identityProvider,
		accountReadRepo, accountWriteRepo,
		allocator,
		friendRequests{requestReadRepo, requestWriteRepo},
		imageRepo, outboxRepo, jwtSvc,
	)
	friendService := services.NewFriendService(
		txManager, identityProvider,
		allocator,
		accountReadRepo, accountWriteRepo,
		requestReadRepo, requestWriteRepo,
		outboxRepo, notificationRepo,
	)
	profileService := services.NewProfileService(txManager, identityProvider, accountReadRepo, accountWriteRepo, imageRepo)
	gameService := services.NewGameService(txManager, identityProvider, playerRepo, guessRepo, accountWriteRepo)
	quizService := services.NewQuizService(txManager, identityProvider, questionRepo, answerRepo, accountWriteRepo)

	relay := workers.NewOutboxRelay(txManager, outboxRepo, kafkaWriter, notificationRepo,
		workers.WithPollInterval(time.Duration(cfg.outboxPollIntervalMS)*time.Millisecond),
		workers.WithBatchSize(cfg.outboxBatchSize),
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc))

			r.Delete("/account", handlers.NewDeleteAccountHandler(authService))

			r.Get("/profile/{accountID}", handlers.NewGetProfileHandler(profileService))
			r.Get("/profile/{accountID}/image", handlers.NewGetProfileImageHandler(profileService))
			r.Patch("/profile/username", handlers.NewUpdateUsernameHandler(profileService))
			r.Put("/profile/image", handlers.NewUploadProfileImageHandler(profileService))

			r.Post("/friends/requests", handlers.NewSendFriendRequestHandler(friendService))
			r.Get("/friends/requests/incoming", handlers.NewListIncomingRequestsHandler(friendService))
			r.Get("/friends/requests/incoming/stream", handlers.NewIncomingRequestsStreamHandler(friendService))
			r.Get("/friends/requests/outgoing", handlers.NewListOutgoingRequestsHandler(friendService))
			r.Post("/friends/requests/{requestID}/accept", handlers.NewAcceptFriendRequestHandler(friendService))
			r.Post("/friends/requests/{requestID}/reject", handlers.NewRejectFriendRequestHandler(friendService))
			r.Delete("/friends/requests/{requestID}", handlers.NewCancelFriendRequestHandler(friendService))
			r.Get("/friends/{accountID}", handlers.NewListFriendsHandler(friendService))
			r.Delete("/friends/{accountID}", handlers.NewRemoveFriendHandler(friendService))

			r.Get("/game/players", handlers.NewListPlayersHandler(gameService))
			r.Post("/game/guess", handlers.NewGuessHandler(gameService))

			r.Get("/quiz/categories", handlers.NewListCategoriesHandler(quizService))
			r.Get("/quiz/categories/{category}/questions", handlers.NewListQuestionsHandler(quizService))
			r.Post("/quiz/answer", handlers.NewAnswerHandler(quizService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// gRPC health endpoint
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.appHost, cfg.grpcPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	relayDone := make(chan struct{})
	go func() {
		relay.Run(ctxShutdown)
		close(relayDone)
	}()

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		logger.Log.Errorw("server failed, shutting down", "error", serveErr)
		stop()
	}

	healthSrv.Shutdown()
	grpcSrv.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	<-relayDone

	logger.Log.Info("Servers stopped gracefully")
	return serveErr
}
