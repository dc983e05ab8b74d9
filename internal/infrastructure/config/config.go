package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Debug    bool // habilita detalhes de depuração nas respostas de erro
	Server   ServerConfig
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
	Minio    MinioConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Seeding  SeedingConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type RabbitMQConfig struct {
	URL string // vazio desabilita a publicação de eventos
}

type MinioConfig struct {
	Endpoint    string
	AccessKey   string
	SecretKey   string
	UseSSL      bool
	Bucket      string
	ExternalURL string // URL pública para montar links de perfil
}

type RedisConfig struct {
	URL        string // vazio desabilita o cache de leitura
	TTLSeconds int
}

type JWTConfig struct {
	Enabled bool
	Secret  string
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

type SeedingConfig struct {
	Enabled bool
}

// Load carrega as configurações do arquivo .env e do ambiente.
// A ausência do arquivo não é um erro: variáveis de ambiente bastam.
func Load() (*Config, error) {
	// popula o ambiente do processo a partir do .env, quando presente
	_ = godotenv.Load()

	viper.AutomaticEnv()
	setDefaults()

	config := &Config{
		Env:   viper.GetString("ENV"),
		Debug: viper.GetBool("DEBUG"),
		Server: ServerConfig{
			Port:    viper.GetString("PORT"),
			Host:    viper.GetString("HOST"),
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetInt("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSL_MODE"),
			MaxConns:    viper.GetInt("DB_MAX_CONNS"),
			MinConns:    viper.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: viper.GetInt("DB_MAX_IDLE_TIME"),
		},
		RabbitMQ: RabbitMQConfig{
			URL: viper.GetString("RABBITMQ_URL"),
		},
		Minio: MinioConfig{
			Endpoint:    viper.GetString("MINIO_ENDPOINT"),
			AccessKey:   viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey:   viper.GetString("MINIO_SECRET_KEY"),
			UseSSL:      viper.GetBool("MINIO_USE_SSL"),
			Bucket:      viper.GetString("MINIO_BUCKET"),
			ExternalURL: viper.GetString("MINIO_EXTERNAL_URL"),
		},
		Redis: RedisConfig{
			URL:        viper.GetString("REDIS_URL"),
			TTLSeconds: viper.GetInt("REDIS_TTL_SECONDS"),
		},
		JWT: JWTConfig{
			Enabled: viper.GetBool("JWT_ENABLED"),
			Secret:  viper.GetString("JWT_SECRET"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetString("CORS_ALLOWED_ORIGINS"),
		},
		Seeding: SeedingConfig{
			Enabled: viper.GetBool("USER_SEEDING_ENABLED"),
		},
	}

	if config.JWT.Enabled && config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_ENABLED requires JWT_SECRET")
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("ENV", "development")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 20)
	viper.SetDefault("DB_MIN_CONNS", 2)
	viper.SetDefault("DB_MAX_IDLE_TIME", 300)
	viper.SetDefault("MINIO_BUCKET", "fitcore-profiles")
	viper.SetDefault("REDIS_TTL_SECONDS", 300)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
