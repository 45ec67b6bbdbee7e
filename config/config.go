package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config armazena todas as configurações do GoArmazém.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Grade do armazém
	GridRows           int
	GridShelves        int
	GridLevels         int
	GridZones          int
	AllocationStrategy string

	// Journal de movimentações (PostgreSQL). Vazio usa o journal em memória.
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis) para o rate limiting. Vazio desliga o limitador.
	RedisAddr    string
	CacheTimeout time.Duration

	// Segurança (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Operador autorizado a colocar e retirar itens
	OperatorEmail        string
	OperatorPasswordHash string

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Varredura periódica de validade (expressão cron, 5 campos)
	ExpiryScanCron string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Grade
		GridRows:           getIntEnv("GRID_ROWS", 5),
		GridShelves:        getIntEnv("GRID_SHELVES", 5),
		GridLevels:         getIntEnv("GRID_LEVELS", 5),
		GridZones:          getIntEnv("GRID_ZONES", 5),
		AllocationStrategy: getEnv("ALLOCATION_STRATEGY", "usage"),

		// 3. Journal
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second, // 5s padrão

		// 4. Cache (Redis)
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		CacheTimeout: getDurationEnv("CACHE_TIMEOUT_SEC", 10) * time.Second,

		// 5. Segurança (JWT)
		// mustGetEnv garante que a aplicação não inicie sem chave de assinatura
		JWTSecretKey: mustGetEnv("JWT_SECRET_KEY"),
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute, // 60 min padrão

		// 6. Operador
		OperatorEmail:        getEnv("OPERATOR_EMAIL", "operador@goarmazem.local"),
		OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),

		// 7. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute, // 1 min padrão

		// 8. Varredura de validade: todo dia às 06:00
		ExpiryScanCron: getEnv("EXPIRY_SCAN_CRON", "0 6 * * *"),
	}

	return cfg
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv lê a variável de ambiente, fatal se não estiver presente.
func mustGetEnv(key string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Fatalf("❌ Erro de Configuração: A variável de ambiente %s deve ser definida.", key)
	return ""
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
