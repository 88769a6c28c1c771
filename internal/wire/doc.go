// Package wire defines the JSON request/response envelope exchanged over the
// configuration service's socket, and a scanner that reassembles complete
// JSON objects out of a byte stream that may split an object across reads.
package wire
