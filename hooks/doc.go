// Package hooks adapts avl.Hooks to common observability back ends.
//
// What:
//
//   - Logger: one structured log/slog record per node creation, removal,
//     rotation and rewrite.
//   - Metrics: Prometheus counters and a node gauge, registered on a caller
//     supplied prometheus.Registerer so several trees can share or separate
//     their series.
//   - Chain: fan one event out to several hook sets.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	m, err := hooks.NewMetrics(reg, "orders")
//	if err != nil {
//		return err
//	}
//	tr := avl.New(avl.WithHooks(hooks.Chain(
//		hooks.Logger[int](logger, slog.LevelDebug),
//		hooks.MetricsHooks[int](m),
//	)))
//
// Hooks never change tree behavior; a tree built without them produces the
// same shape and values.
package hooks
