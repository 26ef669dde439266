package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/MuzzammilShah/Minecraft-World/internal/logging"
)

// Запросы наблюдательного API должны укладываться в единицы миллисекунд:
// мир целиком в памяти. Всё, что дольше порога, логируется как WARN.
const slowRequestThreshold = 250 * time.Millisecond

// RequestLogger пишет итоговую строку по каждому запросу в логгер
// своего компонента и прокидывает trace-id в контекст gin.
type RequestLogger struct {
	log *logging.Logger
}

// NewRequestLogger создаёт middleware, пишущее в указанный логгер
func NewRequestLogger(log *logging.Logger) *RequestLogger {
	return &RequestLogger{log: log}
}

func (rl *RequestLogger) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Пытаемся извлечь trace-id из OpenTelemetry, если уже создан.
		span := trace.SpanFromContext(c.Request.Context())
		var traceID string
		if span.SpanContext().IsValid() {
			traceID = span.SpanContext().TraceID().String()
		} else {
			traceID = uuid.NewString()
		}
		c.Set("trace_id", traceID)

		start := time.Now()

		c.Next()

		if rl.log == nil {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()
		latency := time.Since(start)

		if latency > slowRequestThreshold {
			rl.log.Warn("[HTTP] медленный запрос %s %s %d %s trace=%s",
				c.Request.Method, path, status, latency, traceID)
			return
		}
		rl.log.Info("[HTTP] %s %s %d %s trace=%s", c.Request.Method, path, status, latency, traceID)
	}
}
