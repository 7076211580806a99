package utils

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Development gets a
// human readable console writer, everything else JSON.
func InitLogger(env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	switch strings.ToLower(env) {
	case "development", "dev", "local":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	case "test":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}

func PrintLogInfo(username *string, statusCode int, functionName string, err *error) {
	user := "Unknown"
	if username != nil {
		user = *username
	}

	var event *zerolog.Event
	switch {
	case statusCode >= http.StatusInternalServerError:
		event = log.Error()
	case statusCode >= http.StatusBadRequest:
		event = log.Warn()
	default:
		event = log.Info()
	}

	event = event.Str("user", user).Int("status", statusCode).Str("function", functionName)
	if err != nil && *err != nil {
		event = event.Err(*err)
	}
	event.Msg(fmt.Sprintf("User: %s | Status: %s | Function: %s", user, ColorStatus(statusCode), functionName))
}
