// Package helper provides test doubles and factories shared by the tests of the persistence packages.
//
// LogHandlerSpy captures slog records so tests can assert on log output, MetricsCollectorSpy
// captures metrics calls, and the store factory creates a postgresstore.Store for the adapter
// selected with the ADAPTER_TYPE environment variable.
package helper
