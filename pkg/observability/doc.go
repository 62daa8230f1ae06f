/*
Package observability exposes Prometheus metrics for wrapped function calls.

Metrics implements pipeline.Observer; attach it with registry.WithObserver and
serve it with Handler:

	metrics := observability.NewMetrics()
	reg, _ := functions.NewRegistry(registry.WithObserver(metrics))
	http.Handle("/metrics", metrics.Handler())
*/
package observability
