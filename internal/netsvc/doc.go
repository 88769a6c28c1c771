// Package netsvc owns the UNIX-domain socket: accepting connections,
// reading framed requests off them, and writing responses and subscription
// events back. Accept and per-connection reads run on their own goroutines
// so a slow client cannot stall another connection's I/O, but every request
// is funneled through a single queue onto one dispatch goroutine, so store
// and session mutation stays single-writer exactly as the concurrency model
// requires.
package netsvc
