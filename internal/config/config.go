package config

import "fmt"

type Config struct {
	Video        VideoConfig        `yaml:"video"`
	Matching     MatchingConfig     `yaml:"matching"`
	Segmentation SegmentationConfig `yaml:"segmentation"`
	Gemini       GeminiConfig       `yaml:"gemini"`
	Performance  PerformanceConfig  `yaml:"performance"`
	Paths        PathsConfig        `yaml:"paths"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// VideoConfig identifies the source recording so summaries can deep-link
// back into it.
type VideoConfig struct {
	ViewerURL string `yaml:"viewer_url"`
}

// MatchingConfig tunes how topic mentions are anchored to speaker
// occurrences.
type MatchingConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	MaxTimeGapMinutes   int     `yaml:"max_time_gap_minutes"`
	ContextWindow       int     `yaml:"context_window"`
	TopKeywords         int     `yaml:"top_keywords"`
}

type SegmentationConfig struct {
	TargetMinutes  int `yaml:"target_minutes"`
	MinimumMinutes int `yaml:"minimum_minutes"`
}

type GeminiConfig struct {
	Model              string `yaml:"model"`
	APIKey             string `yaml:"api_key"`
	KeyFile            string `yaml:"key_file"`
	MaxAttempts        int    `yaml:"max_attempts"`
	BackoffBaseMs      int    `yaml:"backoff_base_ms"`
	BackoffMaxMs       int    `yaml:"backoff_max_ms"`
	CallTimeoutSeconds int    `yaml:"call_timeout_seconds"`
	SegmentPrompt      string `yaml:"segment_prompt"`
	TopicPrompt        string `yaml:"topic_prompt"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.Video.ViewerURL == "" {
		return fmt.Errorf("video.viewer_url is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Matching.SimilarityThreshold < 0 || c.Matching.SimilarityThreshold > 1 {
		return fmt.Errorf("matching.similarity_threshold must be in [0,1]")
	}

	if c.Matching.SimilarityThreshold == 0 {
		c.Matching.SimilarityThreshold = 0.25
	}
	if c.Matching.MaxTimeGapMinutes == 0 {
		c.Matching.MaxTimeGapMinutes = 30
	}
	if c.Matching.ContextWindow == 0 {
		c.Matching.ContextWindow = 2
	}
	if c.Matching.TopKeywords == 0 {
		c.Matching.TopKeywords = 10
	}
	if c.Segmentation.TargetMinutes == 0 {
		c.Segmentation.TargetMinutes = 40
	}
	if c.Segmentation.MinimumMinutes == 0 {
		c.Segmentation.MinimumMinutes = 5
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.MaxAttempts == 0 {
		c.Gemini.MaxAttempts = 3
	}
	if c.Gemini.BackoffBaseMs == 0 {
		c.Gemini.BackoffBaseMs = 1000
	}
	if c.Gemini.BackoffMaxMs == 0 {
		c.Gemini.BackoffMaxMs = 30000
	}
	if c.Gemini.CallTimeoutSeconds == 0 {
		c.Gemini.CallTimeoutSeconds = 60
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
