package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMongo    = "mongo"
)

type Config struct {
	Server    Server
	Storage   Storage
	Database  Database
	Mongo     Mongo
	Redis     Redis
	Gemini    Gemini
	Interview Interview
	Audio     Audio
}

type Server struct {
	Port string
	Env  string
}

// IsProduction gates diagnostic detail in error responses.
func (s Server) IsProduction() bool {
	return strings.EqualFold(s.Env, "production")
}

type Storage struct {
	Driver string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Mongo struct {
	URI      string
	Database string
}

// Redis with an empty Addr means sessions are kept in process memory.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Gemini struct {
	ApiKey string
	Model  string
}

type Interview struct {
	QuestionCount         int
	RecognitionMaxRetries int
	SessionTTL            time.Duration
	AnswerTimeLimit       time.Duration
}

// Audio with an empty CloudinaryURL stores recordings under LocalDir.
type Audio struct {
	CloudinaryURL string
	Folder        string
	LocalDir      string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "mockview")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("INTERVIEW_QUESTION_COUNT", 5)
	viper.SetDefault("RECOGNITION_MAX_RETRIES", 3)
	viper.SetDefault("SESSION_TTL_MINUTES", 120)
	viper.SetDefault("ANSWER_TIME_LIMIT_SECONDS", 180)
	viper.SetDefault("AUDIO_FOLDER", "mockview/answers")
	viper.SetDefault("AUDIO_LOCAL_DIR", "./data/audio")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Env = viper.GetString("APP_ENV")

	config.Storage.Driver = strings.ToLower(viper.GetString("STORAGE_DRIVER"))

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Mongo.URI = viper.GetString("MONGO_URI")
	config.Mongo.Database = viper.GetString("MONGO_DATABASE")

	config.Redis.Addr = strings.TrimPrefix(viper.GetString("REDIS_ADDR"), "redis://")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")

	config.Interview.QuestionCount = viper.GetInt("INTERVIEW_QUESTION_COUNT")
	config.Interview.RecognitionMaxRetries = viper.GetInt("RECOGNITION_MAX_RETRIES")
	config.Interview.SessionTTL = time.Duration(viper.GetInt("SESSION_TTL_MINUTES")) * time.Minute
	config.Interview.AnswerTimeLimit = time.Duration(viper.GetInt("ANSWER_TIME_LIMIT_SECONDS")) * time.Second

	config.Audio.CloudinaryURL = viper.GetString("CLOUDINARY_URL")
	config.Audio.Folder = viper.GetString("AUDIO_FOLDER")
	config.Audio.LocalDir = viper.GetString("AUDIO_LOCAL_DIR")

	log.Info().
		Str("port", config.Server.Port).
		Str("env", config.Server.Env).
		Str("storage", config.Storage.Driver).
		Bool("redis", config.Redis.Addr != "").
		Bool("gemini", config.Gemini.ApiKey != "").
		Bool("cloudinary", config.Audio.CloudinaryURL != "").
		Msg("Config loaded")
	return &config, nil

}
