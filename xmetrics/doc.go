/*
Package xmetrics bridges go-kit metrics and Prometheus for the instrumented
primitives in this library.  The small Adder/Setter/Observer interfaces are
what the decorators accept, so callers can supply go-kit metrics, raw
prometheus metrics, or test doubles interchangeably.
*/
package xmetrics
