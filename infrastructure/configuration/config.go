package configuration

import (
	"fmt"
	"os"
	"strconv"

	"videotube/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	Auth        Auth        `json:"auth"`
	Media       Media       `json:"media"`
	RedisClient RedisClient `json:"redisClient"`
	Cors        Cors        `json:"cors"`
}

type App struct {
	Port    int    `json:"port"`
	TempDir string `json:"tempDir"`
}

type Database struct {
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type Auth struct {
	AccessTokenSecret  string `json:"accessTokenSecret"`
	RefreshTokenSecret string `json:"refreshTokenSecret"`
	AccessTokenExpiry  int    `json:"accessTokenExpiry"`  // minutes
	RefreshTokenExpiry int    `json:"refreshTokenExpiry"` // days
}

type Media struct {
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Cors struct {
	AllowOrigins []string `json:"allowOrigins"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initAuth(&C)
	initMedia(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = os.Getenv("MONGO_DB_NAME")
	}
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = "videotube"
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = "localhost"
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = os.Getenv("MONGO_PORT")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = "27017"
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}

	if C.RedisClient.Host == "" {
		C.RedisClient.Host = os.Getenv("REDIS_HOST")
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = os.Getenv("REDIS_PORT")
	}
	if C.RedisClient.Port == "" {
		C.RedisClient.Port = "6379"
	}
	if C.RedisClient.Username == "" {
		C.RedisClient.Username = os.Getenv("REDIS_USERNAME")
	}
	if C.RedisClient.Password == "" {
		C.RedisClient.Password = os.Getenv("REDIS_PASSWORD")
	}
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 8000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 8000
	}
	if C.App.TempDir == "" {
		C.App.TempDir = os.Getenv("TEMP_DIR")
	}
	if C.App.TempDir == "" {
		C.App.TempDir = os.TempDir()
	}
	if len(C.Cors.AllowOrigins) == 0 {
		if v := os.Getenv("CORS_ORIGIN"); v != "" {
			C.Cors.AllowOrigins = []string{v}
		} else {
			C.Cors.AllowOrigins = []string{"http://localhost:3000"}
		}
	}
}

func initAuth(C *Config) {
	if v := os.Getenv("ACCESS_TOKEN_SECRET"); v != "" {
		C.Auth.AccessTokenSecret = v
	}
	if v := os.Getenv("REFRESH_TOKEN_SECRET"); v != "" {
		C.Auth.RefreshTokenSecret = v
	}
	if v := os.Getenv("ACCESS_TOKEN_EXPIRY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			C.Auth.AccessTokenExpiry = n
		}
	}
	if C.Auth.AccessTokenExpiry == 0 {
		C.Auth.AccessTokenExpiry = 15 // minutes
	}
	if v := os.Getenv("REFRESH_TOKEN_EXPIRY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			C.Auth.RefreshTokenExpiry = n
		}
	}
	if C.Auth.RefreshTokenExpiry == 0 {
		C.Auth.RefreshTokenExpiry = 10 // days
	}
	if C.Auth.AccessTokenSecret == "" || C.Auth.RefreshTokenSecret == "" {
		logger.GetLogger().Warn("Token secrets not set; authentication will fail. Provide ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET via environment.")
	}
}

func initMedia(C *Config) {
	if v := os.Getenv("CLOUDINARY_CLOUD_NAME"); v != "" {
		C.Media.CloudName = v
	}
	if v := os.Getenv("CLOUDINARY_API_KEY"); v != "" {
		C.Media.APIKey = v
	}
	if v := os.Getenv("CLOUDINARY_API_SECRET"); v != "" {
		C.Media.APISecret = v
	}
	if C.Media.CloudName == "" {
		logger.GetLogger().Warn("Media host not configured; uploads will fail. Provide CLOUDINARY_* via environment.")
	}
}
