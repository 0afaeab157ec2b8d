package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	QuizAttemptCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_attempts_total",
			Help: "Total number of recorded quiz attempts",
		},
		[]string{"lesson", "certificate"},
	)

	QuizScore = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quiz_attempt_score",
			Help:    "Scores of recorded quiz attempts",
			Buckets: []float64{20, 40, 60, 70, 80, 90, 100},
		},
		[]string{"lesson"},
	)

	QuizRejectedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_submissions_rejected_total",
			Help: "Quiz submissions rejected before being stored",
		},
		[]string{"reason"},
	)

	registerOnce sync.Once
)

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(QuizAttemptCounter)
		prometheus.MustRegister(QuizScore)
		prometheus.MustRegister(QuizRejectedCounter)
	})
}

// OtherLessonLabel 题库以外的课程统一归到该标签下
const OtherLessonLabel = "other"

func ObserveQuizAttempt(lessonID string, score float64, certificate bool) {
	QuizAttemptCounter.WithLabelValues(lessonID, strconv.FormatBool(certificate)).Inc()
	QuizScore.WithLabelValues(lessonID).Observe(score)
}

func ObserveQuizRejected(reason string) {
	QuizRejectedCounter.WithLabelValues(reason).Inc()
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
