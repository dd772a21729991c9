package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"revenda_veiculos/internal/infrastructure/config"
	"revenda_veiculos/internal/infrastructure/logger"
	"revenda_veiculos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var errTooManyRequests = pkg.NewDomainErrorSimple("TOO_MANY_REQUESTS", "Too many requests", http.StatusTooManyRequests)

// WebhookLimiter throttles payment provider callbacks. Every sender gets its
// own token bucket per webhook route, so a noisy notification topic does not
// starve direct status callbacks from the same address.
//
// Buckets untouched for idleTTL are dropped during later calls.
type WebhookLimiter struct {
	mu        sync.Mutex
	buckets   map[senderRoute]*senderBucket
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type senderRoute struct {
	sender string
	route  string
}

type senderBucket struct {
	tokens   *rate.Limiter
	lastSeen time.Time
}

func NewWebhookLimiter(cfg config.Webhook) *WebhookLimiter {
	return &WebhookLimiter{
		buckets: make(map[senderRoute]*senderBucket),
		limit:   rate.Limit(cfg.RateLimitRPS),
		burst:   cfg.RateLimitBurst,
		idleTTL: cfg.RateLimitIdleTTL,
		now:     time.Now,
	}
}

// wait takes one token for sender on route. It returns zero when the request
// may proceed, otherwise how long the sender has to back off. A refused
// request does not consume a token.
func (l *WebhookLimiter) wait(sender, route string) time.Duration {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	key := senderRoute{sender: sender, route: route}
	b, ok := l.buckets[key]
	if !ok {
		b = &senderBucket{tokens: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	r := b.tokens.ReserveN(now, 1)
	if !r.OK() {
		return l.idleTTL
	}
	delay := r.DelayFrom(now)
	if delay > 0 {
		r.CancelAt(now)
	}
	return delay
}

func (l *WebhookLimiter) sweep(now time.Time) {
	if l.idleTTL <= 0 || now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	l.lastSweep = now
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.idleTTL {
			delete(l.buckets, key)
		}
	}
}

func (l *WebhookLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Middleware answers 429 with a Retry-After hint once the sender's bucket for
// the matched webhook route is empty.
func (l *WebhookLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sender, route := c.ClientIP(), c.FullPath()
		delay := l.wait(sender, route)
		if delay == 0 {
			c.Next()
			return
		}

		retryAfter := int(math.Ceil(delay.Seconds()))
		logger.FromContext(c.Request.Context()).Warn("[webhook][ratelimit] callback throttled",
			zap.String("sender", sender),
			zap.String("route", route),
			zap.Int("retry_after_s", retryAfter),
		)
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
	}
}
