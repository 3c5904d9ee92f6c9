package domain

import "time"

// SleepQualityAnalysis is the per-session scoring result.
// All narrative fields are user-facing Spanish sentences; Score and Metrics
// carry the structured values they were formatted from.
// @Description Quality analysis for a single sleep session.
type SleepQualityAnalysis struct {
	// Overall quality score (0-100)
	Score int `json:"score" example:"87"`
	// Qualitative label banded from the score
	Label string `json:"label" example:"Muy buena"`
	// Narrative about the stage distribution
	StageAnalysis string `json:"stage_analysis"`
	// Narrative about the session duration
	DurationAnalysis string `json:"duration_analysis"`
	// Narrative about sleep continuity (awakenings)
	ContinuityAnalysis string `json:"continuity_analysis"`
	// Up to four targeted recommendations
	Recommendations []string `json:"recommendations"`
	// One scientific fact relevant to this session
	ScientificFact string `json:"scientific_fact"`
	// Open metrics mapping for extensions and clients
	Metrics map[string]float64 `json:"metrics"`
}

// SleepTrendAnalysis is the multi-day trend result.
// @Description Trend and consistency analysis over a window of sessions.
type SleepTrendAnalysis struct {
	// Overall trend narrative
	OverallTrend string `json:"overall_trend"`
	// Consistency score (0-100) from bedtime/wake-time dispersion
	ConsistencyScore int `json:"consistency_score" example:"82"`
	// Qualitative consistency level
	ConsistencyLevel string `json:"consistency_level" example:"Alta"`
	// Mean session duration (minute precision)
	AverageDuration time.Duration `json:"average_duration" swaggertype:"integer" example:"27000000000000"`
	// Circular mean bedtime as HH:MM local time
	AverageBedtime string `json:"average_bedtime" example:"23:15"`
	// Circular mean wake time as HH:MM local time
	AverageWakeTime string `json:"average_wake_time" example:"06:45"`
	// Duration trend over the window halves
	DurationTrend string `json:"duration_trend"`
	// Quality (efficiency) trend over the window halves
	QualityTrend string `json:"quality_trend"`
	// Weekday versus weekend comparison narrative
	WeekdayWeekend string `json:"weekday_weekend"`
	// Trend-derived recommendations
	Recommendations []string `json:"recommendations"`
}

// NapAnalysis is the classification result for one daytime nap.
// @Description Nap classification with quality and night-sleep impact.
type NapAnalysis struct {
	// The originating session
	Session SessionResponse `json:"session"`
	// Nap quality label: Excelente, Buena, Regular or Mala
	Quality string `json:"quality" example:"Buena"`
	// Recommended nap window
	IdealWindow string `json:"ideal_window" example:"13:00 - 15:00"`
	// Nap-specific recommendations
	Recommendations []string `json:"recommendations"`
	// Estimated impact on the following night's sleep
	NightImpact string `json:"night_impact"`
}

// SleepRecommendations is the final merged output of the analysis pipeline.
// @Description Prioritized recommendations synthesized from all analyses.
type SleepRecommendations struct {
	// Most important actions (at most 3)
	Priority []string `json:"priority"`
	// General advice (at most 5)
	General []string `json:"general"`
	// Positive reinforcement (at most 2)
	Positive []string `json:"positive"`
	// One scientific fact
	ScientificFact string `json:"scientific_fact"`
	// Suggested bedtime as HH:MM
	IdealBedtime string `json:"ideal_bedtime" example:"22:30"`
	// Suggested wake time as HH:MM
	IdealWakeTime string `json:"ideal_wake_time" example:"06:30"`
	// Suggested nap window
	IdealNapTime string `json:"ideal_nap_time" example:"13:00 - 15:00"`
}

// SleepReport bundles one full pipeline run over a window of sessions.
// @Description Complete sleep analysis report for a time window.
type SleepReport struct {
	// Analysis window
	Window struct {
		From time.Time `json:"from" example:"2024-01-09T00:00:00Z"`
		To   time.Time `json:"to" example:"2024-01-16T00:00:00Z"`
	} `json:"window"`
	// Consolidated nightly sessions (one per sleep night)
	Sessions []SessionResponse `json:"sessions"`
	// Quality analysis of the most recent consolidated session (absent without sessions)
	Quality *SleepQualityAnalysis `json:"quality,omitempty"`
	// Multi-day trend analysis
	Trend *SleepTrendAnalysis `json:"trend,omitempty"`
	// Nap classifications
	Naps []NapAnalysis `json:"naps"`
	// Synthesized recommendations
	Recommendations SleepRecommendations `json:"recommendations"`
}

// ReportRequest contains query parameters for the report endpoint.
type ReportRequest struct {
	WindowDays int `json:"window_days" validate:"omitempty,min=1,max=90"`
}

// AdviceOutput is the structured output of the remote advice service.
// @Description LLM-generated free-text sleep advice.
type AdviceOutput struct {
	// Practical tips (3-5 items)
	Tips []string `json:"tips"`
	// Warnings about detected problems (0-3 items)
	Warnings []string `json:"warnings"`
	// Positive reinforcement (1-2 items)
	PositiveReinforcement []string `json:"positive_reinforcement"`
	// Short narrative about the weekly trend
	WeeklyTrend string `json:"weekly_trend"`
}

// AdviceContext is the data snapshot sent to the advice service.
// @Description Context data for advice generation.
type AdviceContext struct {
	Sessions []SessionResponse   `json:"sessions"`
	Trend    *SleepTrendAnalysis `json:"trend,omitempty"`
}

// AdviceResponse is the response for the advice endpoint.
// @Description Advice service response.
type AdviceResponse struct {
	Advice AdviceOutput `json:"advice"`
	// Trace ID for feedback (present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// AdviceFeedbackRequest is the request body for scoring an advice trace.
// @Description User feedback on generated advice.
type AdviceFeedbackRequest struct {
	// Rating from 1 (useless) to 5 (very helpful)
	Rating int `json:"rating" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional free-text comment
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}
