package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret           string
	StripeSecretKey     string
	StripeWebhookSecret string
	BaseURL             string
	EmailUser           string
	EmailPassword       string
	SMTPHost            string
	SMTPPort            int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	StripeSecretKey = GetEnv("STRIPE_SECRET_KEY")
	StripeWebhookSecret = GetEnv("STRIPE_WEBHOOK_SECRET")
	BaseURL = GetEnv("BASE_URL", "http://localhost:3000")
	EmailUser = GetEnv("EMAIL_USER")
	EmailPassword = GetEnv("EMAIL_PASSWORD")
	SMTPHost = GetEnv("SMTP_HOST", "smtp.gmail.com")
	SMTPPort = getEnvInt("SMTP_PORT", 587)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}
	if StripeSecretKey == "" {
		log.Println("❌ STRIPE_SECRET_KEY belum diset!")
	}
	if StripeWebhookSecret == "" {
		log.Println("❌ STRIPE_WEBHOOK_SECRET belum diset! Webhook akan selalu 400.")
	}
	if EmailUser == "" || EmailPassword == "" {
		log.Println("⚠️ EMAIL_USER / EMAIL_PASSWORD kosong, email konfirmasi tidak akan terkirim")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
