package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultCommissionRate = 0.10

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// CommissionRate returns the platform's cut of every transaction.
// Falls back to the default when PLATFORM_COMMISSION_RATE is unset or
// not a sane fraction.
func CommissionRate() float64 {
	rate, err := strconv.ParseFloat(Config("PLATFORM_COMMISSION_RATE"), 64)
	if err != nil || rate < 0 || rate >= 1 {
		return defaultCommissionRate
	}
	return rate
}
