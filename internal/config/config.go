package config

import "os"

// Config is the process configuration, read once from the environment.
// MongoURI and RedisAddr are optional: empty disables the Mongo question
// source and the Redis leaderboard mirror respectively.
type Config struct {
	HTTPPort     string
	QuestionFile string
	MongoURI     string
	RedisAddr    string
	PublicURL    string
	StaticDir    string
}

func Load() *Config {
	return &Config{
		HTTPPort:     getEnv("PORT", "8080"),
		QuestionFile: getEnv("QUESTION_FILE", "data/database.json"),
		MongoURI:     getEnv("MONGO_URI", ""),
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		PublicURL:    getEnv("PUBLIC_URL", "http://localhost:8080"),
		StaticDir:    getEnv("STATIC_DIR", "public"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
