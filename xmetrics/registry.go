package xmetrics

import (
	"fmt"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Registry is a Prometheus registry that also hands out go-kit metrics.  Metrics
// are cached by name: asking for the same name twice yields a wrapper over the
// same underlying collector, while asking for the same name as a different kind
// panics.
type Registry interface {
	prometheus.Gatherer
	prometheus.Registerer

	// NewCounter returns a go-kit counter backed by this registry.
	NewCounter(name string) metrics.Counter

	// NewGauge returns a go-kit gauge backed by this registry.
	NewGauge(name string) metrics.Gauge

	// NewHistogram returns a go-kit histogram backed by this registry.
	NewHistogram(name string, buckets []float64) metrics.Histogram
}

// NewRegistry constructs a Registry from a (possibly nil) set of options.
func NewRegistry(o *Options) Registry {
	return &registry{
		Registry:  o.registry(),
		logger:    o.logger(),
		namespace: o.namespace(),
		subsystem: o.subsystem(),
		cache:     make(map[string]prometheus.Collector),
	}
}

// registry is the internal Registry implementation
type registry struct {
	*prometheus.Registry

	logger    *zap.Logger
	namespace string
	subsystem string
	cache     map[string]prometheus.Collector
}

func (r *registry) register(name string, c prometheus.Collector) prometheus.Collector {
	if err := r.Registry.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector
		}

		panic(err)
	}

	r.logger.Debug("registered metric",
		zap.String("namespace", r.namespace),
		zap.String("subsystem", r.subsystem),
		zap.String("name", name),
	)

	r.cache[name] = c
	return c
}

func (r *registry) NewCounter(name string) metrics.Counter {
	var counterVec *prometheus.CounterVec

	if existing, ok := r.cache[name]; ok {
		if counterVec, ok = existing.(*prometheus.CounterVec); !ok {
			panic(fmt.Errorf("the metric %s is not a counter", name))
		}
	} else {
		counterVec = r.register(name, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})).(*prometheus.CounterVec)
	}

	return gokitprometheus.NewCounter(counterVec)
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	var gaugeVec *prometheus.GaugeVec

	if existing, ok := r.cache[name]; ok {
		if gaugeVec, ok = existing.(*prometheus.GaugeVec); !ok {
			panic(fmt.Errorf("the metric %s is not a gauge", name))
		}
	} else {
		gaugeVec = r.register(name, prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})).(*prometheus.GaugeVec)
	}

	return gokitprometheus.NewGauge(gaugeVec)
}

func (r *registry) NewHistogram(name string, buckets []float64) metrics.Histogram {
	var histogramVec *prometheus.HistogramVec

	if existing, ok := r.cache[name]; ok {
		if histogramVec, ok = existing.(*prometheus.HistogramVec); !ok {
			panic(fmt.Errorf("the metric %s is not a histogram", name))
		}
	} else {
		histogramVec = r.register(name, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
			Buckets:   buckets,
		}, []string{})).(*prometheus.HistogramVec)
	}

	return gokitprometheus.NewHistogram(histogramVec)
}
