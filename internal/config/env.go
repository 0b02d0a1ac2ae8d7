package config

import (
	"github.com/JaimeStill/handnotes/internal/vision"
	"github.com/JaimeStill/handnotes/pkg/database"
	"github.com/JaimeStill/handnotes/pkg/logging"
	"github.com/JaimeStill/handnotes/pkg/storage"
)

var databaseEnv = &database.Env{
	Host:            "DATABASE_HOST",
	Port:            "DATABASE_PORT",
	Name:            "DATABASE_NAME",
	User:            "DATABASE_USER",
	Password:        "DATABASE_PASSWORD",
	SSLMode:         "DATABASE_SSL_MODE",
	MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
	MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
	ConnTimeout:     "DATABASE_CONN_TIMEOUT",
}

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
}

var storageEnv = &storage.Env{
	Backend:         "STORAGE_BACKEND",
	BasePath:        "STORAGE_BASE_PATH",
	Bucket:          "STORAGE_BUCKET",
	CredentialsFile: "STORAGE_CREDENTIALS_FILE",
	PublicURL:       "STORAGE_PUBLIC_URL",
	MaxUploadSize:   "STORAGE_MAX_UPLOAD_SIZE",
}

var visionEnv = &vision.Env{
	Provider:      "VISION_PROVIDER",
	Model:         "VISION_MODEL",
	AgentProvider: "VISION_AGENT_PROVIDER",
	BaseURL:       "VISION_BASE_URL",
	Token:         "OPENAI_API_KEY",
	Project:       "VISION_PROJECT",
	Region:        "VISION_REGION",
	Detail:        "VISION_DETAIL",
	Timeout:       "VISION_TIMEOUT",
}
