package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type loggingWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *loggingWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func Logging(logger *logrus.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Infof("--> %s %s", r.Method, r.URL.RequestURI())
			start := time.Now()

			wrapped := &loggingWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			logger.WithFields(logrus.Fields{
				"statusCode": wrapped.statusCode,
				"remoteAddr": r.RemoteAddr,
				"method":     r.Method,
				"uri":        r.URL.RequestURI(),
				"durationMs": int64(time.Since(start) / time.Millisecond),
			}).Infof("<-- %d %s", wrapped.statusCode, http.StatusText(wrapped.statusCode))
		})
	}
}
