package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

// InitRedis is deliberately non-fatal: without Redis the cache falls back
// to its in-process memory layer, so a missing cache server degrades the
// app instead of killing it.
func InitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis unavailable, running with memory cache only:", err)
		return nil
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

// SyncInterval reads SYNC_INTERVAL_MS; zero or garbage falls through to
// the scheduler's default.
func SyncInterval() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("SYNC_INTERVAL_MS"))
	if err != nil || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func Addr(envVar, fallback string) string {
	if addr := os.Getenv(envVar); addr != "" {
		return addr
	}
	return fallback
}

// PublicBaseURL is the prefix relative image paths resolve against.
func PublicBaseURL() string {
	return os.Getenv("PUBLIC_BASE_URL")
}

// AdminSessionToken is the session token the admin app validates against
// the backend before it starts syncing.
func AdminSessionToken() string {
	return os.Getenv("ADMIN_SESSION_TOKEN")
}
