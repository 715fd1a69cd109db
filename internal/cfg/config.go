package cfg

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisAddr     string
	RedisPassword string
	KafkaBrokers  string
	KafkaTopic    string
	JWTSecret     string
	JWTTTL        string
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func LoadConfig() Config {

	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using environment variables")
	}

	cfg := Config{
		HTTPPort:      os.Getenv("HTTP_PORT"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		KafkaBrokers:  os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        os.Getenv("JWT_TTL"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminName:     os.Getenv("ADMIN_NAME"),
	}

	return cfg
}

// BrokerList splits KAFKA_BROKERS into addresses; empty when unconfigured.
func (c Config) BrokerList() []string {
	raw := strings.TrimSpace(c.KafkaBrokers)
	if raw == "" {
		return nil
	}
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
