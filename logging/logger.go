package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Environment variable name for controlling statistics visibility
const ENV_DEV_MODE = "DEV_MODE"

// Statistics represents the collected usage statistics
type Statistics struct {
	UniqueVisitors     map[string]time.Time `json:"uniqueVisitors"`     // IP -> Last Visit Time
	EvaluationRequests int                  `json:"evaluationRequests"` // Total number of evaluation requests
	ErrorCount         int                  `json:"errorCount"`         // Number of errors
	LanguageCounts     map[string]int       `json:"languageCounts"`     // Language -> Count
	AverageScore       float64              `json:"averageScore"`       // Average overall score across evaluations
	TotalScore         float64              `json:"-"`                  // Used to calculate average
	ScoredCount        int                  `json:"-"`                  // Used to calculate average
	LastPersisted      time.Time            `json:"lastPersisted"`      // Last time stats were saved
	mutex              sync.RWMutex         `json:"-"`
}

var (
	stats *Statistics
	once  sync.Once
)

// Initialize creates or loads the statistics
func Initialize() *Statistics {
	once.Do(func() {
		stats = &Statistics{
			UniqueVisitors: make(map[string]time.Time),
			LanguageCounts: make(map[string]int),
			LastPersisted:  time.Now(),
		}

		// Try to load existing statistics
		if err := stats.Load(); err != nil {
			fmt.Printf("Could not load existing statistics: %v\n", err)
		}
	})
	return stats
}

// TrackVisitor records a unique visitor
func (s *Statistics) TrackVisitor(ip string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.UniqueVisitors[ip] = time.Now()
}

// TrackEvaluation records an evaluation request and its outcome
func (s *Statistics) TrackEvaluation(language string, score int, hasError bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.EvaluationRequests++

	if language != "" {
		s.LanguageCounts[language]++
	}

	if hasError {
		s.ErrorCount++
		return
	}

	// Update average score over successful evaluations only
	s.TotalScore += float64(score)
	s.ScoredCount++
	s.AverageScore = s.TotalScore / float64(s.ScoredCount)
}

// GetUniqueVisitorsCount returns the number of unique visitors in the last 24 hours
func (s *Statistics) GetUniqueVisitorsCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	count := 0
	cutoff := time.Now().Add(-24 * time.Hour)

	for _, lastVisit := range s.UniqueVisitors {
		if lastVisit.After(cutoff) {
			count++
		}
	}

	return count
}

// GetLanguageCounts returns a copy of the per-language request counts
func (s *Statistics) GetLanguageCounts() map[string]int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make(map[string]int, len(s.LanguageCounts))
	for language, count := range s.LanguageCounts {
		result[language] = count
	}

	return result
}

// GetErrorRate returns the error rate as a percentage
func (s *Statistics) GetErrorRate() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.EvaluationRequests == 0 {
		return 0
	}

	return (float64(s.ErrorCount) / float64(s.EvaluationRequests)) * 100
}

// Save persists the statistics to a file
func (s *Statistics) Save() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.LastPersisted = time.Now()

	file, err := os.Create("statistics.json")
	if err != nil {
		return fmt.Errorf("could not create statistics file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("could not encode statistics: %v", err)
	}

	return nil
}

// Load reads the statistics from a file
func (s *Statistics) Load() error {
	file, err := os.Open("statistics.json")
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Not an error if file doesn't exist yet
		}
		return fmt.Errorf("could not open statistics file: %v", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(s); err != nil {
		return fmt.Errorf("could not decode statistics: %v", err)
	}

	return nil
}

// GetStatistics returns a copy of the current statistics, but only in development mode
func (s *Statistics) GetStatistics() map[string]interface{} {
	// Check if we're in development mode
	if os.Getenv(ENV_DEV_MODE) != "true" {
		// In production, return limited statistics without sensitive data
		s.mutex.RLock()
		defer s.mutex.RUnlock()

		return map[string]interface{}{
			"uniqueVisitors24h": s.GetUniqueVisitorsCount(),
			"totalRequests":     s.EvaluationRequests,
			"errorRate":         s.GetErrorRate(),
			"averageScore":      s.AverageScore,
		}
	}

	// In development mode, return full statistics
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return map[string]interface{}{
		"uniqueVisitors24h": s.GetUniqueVisitorsCount(),
		"totalRequests":     s.EvaluationRequests,
		"errorRate":         s.GetErrorRate(),
		"averageScore":      s.AverageScore,
		"languageCounts":    s.GetLanguageCounts(), // Per-language detail only shown in dev mode
	}
}
