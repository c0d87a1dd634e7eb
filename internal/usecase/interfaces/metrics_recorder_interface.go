package interfaces

// IMetricsRecorder receives business events for instrumentation.
type IMetricsRecorder interface {
	ObserveTransition(from, to, outcome string)
	ObservePhotos(bucket string, accepted, rejected int)
	ObservePublish(kind, outcome string)
	ObservePayment(outcome string)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) ObserveTransition(string, string, string) {}
func (NopMetrics) ObservePhotos(string, int, int)           {}
func (NopMetrics) ObservePublish(string, string)            {}
func (NopMetrics) ObservePayment(string)                    {}
