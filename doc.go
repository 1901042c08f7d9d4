// Package seqquery provides a set of query operations on finite sequences of elements.
// Queries form a pipeline of operations that elements are being passed through.
//
// Queries are constructed by creating an initial ProducerFunc, which can produce elements from slices,
// ranges, repeated values, or any arbitrary finite source.
//
// Elements may then be operated upon using mapping, filtering, ordering, grouping, joining, set,
// and partitioning operations (which are intermediate ProducerFuncs). Intermediate operations are deferred:
// they do not do any work until the resulting producer is iterated, and every iteration is an
// independent pass that re-runs all upstream operations.
//
// Finally, the elements are consumed by terminal operations, such as collecting them into slices or maps,
// aggregating them, checking for matching elements, accessing single elements, or simply iterating over them.
// Terminal operations do their work immediately.
//
// Query operations will receive a context.CancelCauseFunc. Calling the cancel function will
// cancel the entire pass, thus short-circuiting processing elements. Terminal operations return the cause
// of the cancelation as their error, unless it is ErrShortCircuit. Depending on the intermediate
// operations and the terminal operation, the result may be undefined in that case.
// Producer implementations must be prepared to be canceled at any time by checking the provided context.Context,
// and must return as soon as yielding an element returns false.
package seqquery
