package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/listing-evaluator/backend/logging"
)

// Stats tracks visitors and evaluation outcomes for the statistics endpoint
func Stats(stats *logging.Statistics) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Track unique visitor by real IP
		stats.TrackVisitor(c.ClientIP())

		c.Next()

		// Only track evaluation requests; the handler records language and
		// score in the context when it succeeds
		if c.Request.URL.Path == "/api/evaluate" && c.Request.Method == "POST" {
			language := c.GetString("evaluationLanguage")
			score := c.GetInt("evaluationScore")
			stats.TrackEvaluation(language, score, c.Writer.Status() >= 400)
		}

		// Periodically save statistics (every 100 requests)
		if stats.GetStatistics()["totalRequests"].(int)%100 == 0 {
			go stats.Save() // Save asynchronously to not block the request
		}
	}
}
