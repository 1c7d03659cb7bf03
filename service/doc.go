// Package service defines the document service boundary and its HTTP
// implementation.
//
// The service owns the document: it is the sole authority on current text
// offsets, and it applies a batchUpdate as one ordered transaction. This
// package deliberately exposes only two calls - [Service.Document] for a
// fresh structural snapshot and [Service.BatchUpdate] for an atomic write -
// because everything the planner does reduces to read-fresh-then-write.
package service
