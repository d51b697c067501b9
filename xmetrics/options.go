package xmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	DefaultNamespace = "lockstep"
	DefaultSubsystem = "sync"
)

// Options is the configurable options for creating a Prometheus-backed registry
type Options struct {
	// Logger is the zap logger used to report metric registration.  If unset,
	// sallust.Default() is used.
	Logger *zap.Logger

	// Namespace is the default namespace for metrics created through the registry.
	// If not supplied, DefaultNamespace is used.
	Namespace string

	// Subsystem is the default subsystem for metrics created through the registry.
	// If not supplied, DefaultSubsystem is used.
	Subsystem string

	// Pedantic indicates whether the registry is created via prometheus.NewPedanticRegistry().
	// By default this is false.  Set to true for testing or development.
	Pedantic bool
}

func (o *Options) logger() *zap.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}

	return sallust.Default()
}

func (o *Options) namespace() string {
	if o != nil && len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o *Options) subsystem() string {
	if o != nil && len(o.Subsystem) > 0 {
		return o.Subsystem
	}

	return DefaultSubsystem
}

func (o *Options) registry() *prometheus.Registry {
	if o != nil && o.Pedantic {
		return prometheus.NewPedanticRegistry()
	}

	return prometheus.NewRegistry()
}
