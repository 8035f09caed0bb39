package api

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2/middleware/cors"
)

var localhostOriginPattern = regexp.MustCompile(`^http://localhost(:\d+)?$`)

// OriginPolicy decides which browser origins may call the API: an explicit
// allow-list, any http://localhost[:port], and any https subdomain of the
// hosting domain.
type OriginPolicy struct {
	allowList []string
	hosted    *regexp.Regexp
}

func NewOriginPolicy(allowList []string, hostingDomain string) *OriginPolicy {
	policy := &OriginPolicy{}
	for _, origin := range allowList {
		if trimmed := strings.TrimRight(strings.TrimSpace(origin), "/"); trimmed != "" {
			policy.allowList = append(policy.allowList, trimmed)
		}
	}

	domain := strings.Trim(strings.TrimSpace(hostingDomain), ".")
	if domain != "" {
		policy.hosted = regexp.MustCompile(`^https://[^/]+\.` + regexp.QuoteMeta(domain) + `$`)
	}
	return policy
}

func (policy *OriginPolicy) Allows(origin string) bool {
	for _, allowed := range policy.allowList {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	if localhostOriginPattern.MatchString(origin) {
		return true
	}
	return policy.hosted != nil && policy.hosted.MatchString(origin)
}

// CORSConfig leaves AllowOrigins empty so every decision goes through the
// policy; Fiber only falls back to "*" when both fields are unset.
func CORSConfig(policy *OriginPolicy) cors.Config {
	return cors.Config{
		AllowOriginsFunc: policy.Allows,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type",
		AllowCredentials: false,
	}
}
