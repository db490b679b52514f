package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func ConfigCORS(allowedCORSDomains string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	conf.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	conf.MaxAge = 12 * time.Hour

	var domains []string
	for _, domain := range strings.Split(allowedCORSDomains, ",") {
		domains = append(domains, strings.TrimSpace(domain))
	}

	if len(domains) == 1 && domains[0] == "*" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = domains
	}

	return cors.New(conf)
}
