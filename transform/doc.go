// Package transform implements the shape transform catalog: pure functions
// from shape descriptors to shape descriptors (deep readonly/partial marking,
// callable signature extraction, union merging, field partitioning, array
// flattening, path enumeration) plus the kind predicates.
//
// Every transform is stateless, leaves its input untouched, and signals
// "no valid result" by returning the never shape rather than an error; the
// only operation with an error path is Merge under the ConflictError policy.
package transform
