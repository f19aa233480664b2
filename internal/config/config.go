package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

var Config *ServerConfig

// ServerConfig is a struct that contains configuration values for the server.
type ServerConfig struct {
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	AllowedOrigins []string
	// SessionCookieName is the name to use for the session cookie.
	SessionCookieName string
	// SessionCookieExpiration is the amount of time a session cookie is valid. Max 5 days.
	SessionCookieExpiration time.Duration
	// Port is the port the server should run on.
	Port int
	// FirebaseCredentialsFile is the path to the Firebase service account key.
	FirebaseCredentialsFile string
	// StorageBucket is the Firebase storage bucket used for video and image uploads.
	StorageBucket string
}

// Load reads the server configuration, applying LMS_-prefixed environment
// overrides on top of the defaults.
func Load() *ServerConfig {
	v := viper.New()
	v.SetEnvPrefix("lms")
	v.AutomaticEnv()

	v.SetDefault("allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("session_cookie_name", "lms-admin-session")
	v.SetDefault("session_cookie_expiration", time.Hour*24*5)
	v.SetDefault("port", 8080)
	v.SetDefault("firebase_credentials_file", "firebase-config.json")
	v.SetDefault("storage_bucket", "lms-italian-studies.appspot.com")

	return &ServerConfig{
		AllowedOrigins:          v.GetStringSlice("allowed_origins"),
		SessionCookieName:       v.GetString("session_cookie_name"),
		SessionCookieExpiration: v.GetDuration("session_cookie_expiration"),
		Port:                    v.GetInt("port"),
		FirebaseCredentialsFile: v.GetString("firebase_credentials_file"),
		StorageBucket:           v.GetString("storage_bucket"),
	}
}

func init() {
	Config = Load()
	log.Println("🙂️ Loaded server configuration.")
}
