package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend names accepted in STORE_BACKEND.
const (
	BackendSQL    = "sql"
	BackendDisk   = "disk"
	BackendMemory = "memory"
)

// Config stores runtime configuration loaded from the environment, an
// optional .env file and an optional .studyplanner.yaml.
type Config struct {
	StoreBackend         string
	DatabaseURL          string
	SQLitePath           string
	DataDir              string
	LocalTimezone        *time.Location
	CheckInterval        time.Duration
	DueWindow            time.Duration
	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string
	NotifyWhatsAppTo     string
	OpenAIAPIKey         string
}

// Load reads configuration values and prepares defaults where applicable.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("store_backend", BackendSQL)
	v.SetDefault("sqlite_path", "studyplanner.db")
	v.SetDefault("data_dir", ".studyplanner")
	v.SetDefault("local_timezone", "Local")
	v.SetDefault("check_interval", time.Minute)
	v.SetDefault("due_window", 5*time.Minute)
	v.SetConfigName(".studyplanner") // .yaml is implicit
	v.AutomaticEnv()

	if override := os.Getenv("STUDYPLANNER_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("config: ignoring unreadable config file: %v", err)
		}
	}

	timezoneName := v.GetString("local_timezone")
	location, err := time.LoadLocation(timezoneName)
	if err != nil {
		log.Printf("config: invalid LOCAL_TIMEZONE %q, defaulting to system local: %v", timezoneName, err)
		location = time.Local
	}

	backend := strings.ToLower(strings.TrimSpace(v.GetString("store_backend")))
	switch backend {
	case BackendSQL, BackendDisk, BackendMemory:
	default:
		log.Printf("config: unknown STORE_BACKEND %q, using %s", backend, BackendSQL)
		backend = BackendSQL
	}

	return &Config{
		StoreBackend:         backend,
		DatabaseURL:          v.GetString("database_url"),
		SQLitePath:           v.GetString("sqlite_path"),
		DataDir:              v.GetString("data_dir"),
		LocalTimezone:        location,
		CheckInterval:        durationOr(v, "check_interval", time.Minute),
		DueWindow:            durationOr(v, "due_window", 5*time.Minute),
		TwilioAccountSID:     v.GetString("twilio_account_sid"),
		TwilioAuthToken:      v.GetString("twilio_auth_token"),
		TwilioWhatsAppNumber: v.GetString("twilio_whatsapp_number"),
		NotifyWhatsAppTo:     v.GetString("notify_whatsapp_to"),
		OpenAIAPIKey:         v.GetString("openai_api_key"),
	}
}

// NotificationsEnabled reports whether due reminders should be sent over WhatsApp.
func (c *Config) NotificationsEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" &&
		c.TwilioWhatsAppNumber != "" && c.NotifyWhatsAppTo != ""
}

func durationOr(v *viper.Viper, key string, def time.Duration) time.Duration {
	d := v.GetDuration(key)
	if d <= 0 {
		log.Printf("config: unable to parse %s=%q as a positive duration, using %s", strings.ToUpper(key), v.GetString(key), def)
		return def
	}
	return d
}
