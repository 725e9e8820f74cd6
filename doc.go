// Package goarrays provides lazy operations on arrays of a fixed length.
//
// An Array carries its length N at the type level, as a Len type parameter such as N4.
// Operations form a chain of producers that each yield exactly N elements.
//
// Chains are constructed by turning an Array into an initial Producer, either by moving it
// (IntoIter), or by borrowing it read-only (Borrow) or exclusively (BorrowMut).
//
// Elements may then be transformed using Map, or combined pairwise with the elements of
// another producer of the same length using Zip. Producers of different lengths cannot be
// zipped, the compiler rejects it.
//
// Finally, a chain is drained by a terminal consumer, such as collecting it into a new
// Array (Collect), splitting pairs into two Arrays (Unzip), or folding it (Reduce).
//
// Chains are always lazy, meaning that no element is pulled and no function is called
// until a terminal consumer drains the chain.
//
// Elements implementing Releaser own resources that must be released exactly once.
// If a function in the chain panics, the panic propagates out of the terminal consumer,
// and on the way the collected prefix and the not yet pulled suffix of every moved Array
// are released. The element handed to the panicking function is owned by that function.
package goarrays
