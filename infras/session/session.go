package session

import (
	"net/http"
	"time"

	"cruisevoyager/config"
	"cruisevoyager/shared/constant"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New builds the cookie session manager. Sessions live in Redis when a
// client is available and in process memory otherwise.
func New(cfg *config.Config, redisClient *goRedis.Client) *scs.SessionManager {
	manager := scs.New()
	manager.Lifetime = time.Duration(cfg.Session.LifetimeMinutes) * time.Minute
	manager.Cookie.Name = cfg.Session.CookieName
	manager.Cookie.HttpOnly = true
	manager.Cookie.SameSite = http.SameSiteLaxMode
	manager.Cookie.Secure = cfg.Server.Env == constant.ServerEnvProduction

	if redisClient != nil {
		manager.Store = NewRedisStore(redisClient, cfg.Session.CookieName)
		log.Info().Msg("Session store backed by Redis")
	} else {
		manager.Store = memstore.New()
		log.Warn().Msg("Session store backed by process memory, sessions reset on restart")
	}

	return manager
}
