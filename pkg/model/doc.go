// Package model defines the typed parameter-overview document consumed by
// renderers. Aggregators in pkg/docs build a ParamsDoc per call; nothing in
// this package is mutated after construction, so a single document can be
// handed to several renderers safely.
package model
