package bot

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Nessyi/pumpkin-management/internal/constants"
)

// commandLimiter: 길드+사용자 단위 명령어 호출 제한
// 조회 명령어는 REST 호출(멤버 페이지 조회 등)을 유발하므로 연속 호출을 막는다.
type commandLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	every    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newCommandLimiter() *commandLimiter {
	return &commandLimiter{
		limiters: make(map[string]*limiterEntry),
		every:    rate.Every(constants.CommandRateLimit.Interval),
		burst:    constants.CommandRateLimit.Burst,
		idle:     constants.CommandRateLimit.IdleTimeout,
		now:      time.Now,
	}
}

// Allow: 호출을 허용할지 판정한다. 호출할 때마다 오래된 항목을 정리한다.
func (l *commandLimiter) Allow(guildID, userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	key := guildID + ":" + userID

	entry, ok := l.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.every, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now

	l.cleanup(now)
	return entry.limiter.AllowN(now, 1)
}

func (l *commandLimiter) cleanup(now time.Time) {
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > l.idle {
			delete(l.limiters, key)
		}
	}
}
