// Package request translates logical edit intents into the low-level
// mutation records the document service applies.
//
// A [Record] is one atomic edit instruction, modeled as a tagged variant
// whose JSON shape maps 1:1 to the service's request union. An [Operation]
// is a caller-supplied logical intent (insert_text, replace_text, ...)
// that [Build] validates against its required-field schedule and expands
// into one or more ordered records plus a human-readable description.
//
// Expansion is order-sensitive. A replace_text intent becomes exactly two
// records, delete-range followed by insert-text: the delete boundaries are
// computed against the pre-insert document state, so reversing the pair
// would delete freshly inserted text.
package request
