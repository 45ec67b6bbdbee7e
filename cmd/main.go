package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"goarmazem/config"
	"goarmazem/internal/pkg/cache"
	"goarmazem/internal/pkg/database"
	"goarmazem/internal/pkg/logger"
	"goarmazem/internal/pkg/metrics"
	"goarmazem/internal/pkg/token"

	// Núcleo do armazém
	"goarmazem/internal/allocation"
	"goarmazem/internal/domain"
	"goarmazem/internal/jobs"
	"goarmazem/internal/warehouse"

	// Camadas para Injeção de Dependências
	"goarmazem/internal/api/auth"
	"goarmazem/internal/api/router"
	apiwarehouse "goarmazem/internal/api/warehouse"
	"goarmazem/internal/repository/journalrepo"
	"goarmazem/internal/service/authservice"
	"goarmazem/internal/service/warehouseservice"

	_ "goarmazem/docs"
)

// @title GoArmazém API
// @version 1.0
// @description Alocação de itens numa grade de armazém (fileira, prateleira, nível, zona).
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço GoArmazém...")
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	appLog, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Falha ao inicializar o logger: %v", err)
	}
	defer appLog.Sync()
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Núcleo: estratégia e grade
	strategy, err := allocation.New(cfg.AllocationStrategy)
	if err != nil {
		appLog.Fatal("Estratégia de alocação inválida.", err)
	}
	dims := domain.Dimensions{Rows: cfg.GridRows, Shelves: cfg.GridShelves, Levels: cfg.GridLevels, Zones: cfg.GridZones}
	store, err := warehouse.NewStore(dims, warehouse.WithStrategy(strategy))
	if err != nil {
		appLog.Fatal("Dimensões da grade inválidas.", err)
	}
	appLog.Info("Grade inicializada.", map[string]interface{}{
		"dimensions": dims, "strategy": store.StrategyName(), "capacity": dims.Capacity(),
	})

	// 3. Conexão com Recursos de Infraestrutura

	// A. Diário de movimentos: PostgreSQL quando configurado, memória caso contrário.
	var journal warehouseservice.MovementJournal
	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL, cfg.DBTimeout, database.DefaultPool)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao banco de dados.", err)
		}
		defer db.Close()
		journal = journalrepo.NewPostgresJournal(db, cfg.DBTimeout, appLog)
		appLog.Info("Diário de movimentos em PostgreSQL.", nil)
	} else {
		journal = journalrepo.NewMemoryJournal(journalrepo.DefaultMemoryCapacity)
		appLog.Warn("DATABASE_URL vazio. Diário de movimentos em memória.", map[string]interface{}{"capacity": journalrepo.DefaultMemoryCapacity})
	}

	// B. Cache (Redis) para o rate limiting, opcional.
	var rateCache cache.Client
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao Redis.", err)
		}
		defer redisClient.Close()
		rateCache = redisClient
		appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	} else {
		appLog.Warn("REDIS_ADDR vazio. Rate limiting desligado.", nil)
	}

	// 4. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	m := metrics.New()

	warehouseSvc := warehouseservice.NewService(store, journal, appLog, warehouseservice.WithMetrics(m))
	warehouseHandler := apiwarehouse.NewHandler(warehouseSvc, appLog)
	appLog.Debug("Serviço e Handler do armazém inicializados.", nil)

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	if cfg.OperatorPasswordHash == "" {
		appLog.Warn("OPERATOR_PASSWORD_HASH vazio. Login desabilitado; rotas de escrita inacessíveis.", nil)
	}
	authSvc := authservice.NewService(domain.Operator{
		Email:        cfg.OperatorEmail,
		PasswordHash: cfg.OperatorPasswordHash,
		Role:         domain.RoleOperator,
	}, tokenSvc, appLog)
	authHandler := auth.NewHandler(authSvc, appLog)
	appLog.Debug("Serviço de autenticação inicializado.", nil)

	// 5. Varredura periódica de validade
	expiryJob := jobs.NewExpirationJob(warehouseSvc, cfg.ExpiryScanCron, appLog)
	if err := expiryJob.Start(); err != nil {
		appLog.Fatal("Falha ao agendar a varredura de validade.", err)
	}
	defer expiryJob.Stop()

	// 6. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(router.Deps{
		Warehouse:       warehouseHandler,
		Auth:            authHandler,
		Tokens:          tokenSvc,
		Metrics:         m.Handler(),
		Logger:          appLog,
		RateLimit:       rateCache,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 7. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor GoArmazém ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
