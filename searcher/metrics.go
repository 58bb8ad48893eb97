package searcher

import "time"

// SearchMetrics describes one completed FindMove invocation.
type SearchMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Episodes     int
	FullPlayouts int
}

type MetricsCollector interface {
	Start()
	AddEpisode()
	AddFullPlayout()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime    time.Time
	episodes     int
	fullPlayouts int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.episodes = 0
	m.fullPlayouts = 0
}

func (m *metricsCollector) AddEpisode() {
	m.episodes++
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		FullPlayouts: m.fullPlayouts,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddEpisode()             {}
func (m *noMetricsCollector) AddFullPlayout()         {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
