package wire

import (
	"encoding/json"
	"errors"
	"io"
)

// Reader decodes one JSON object at a time off a connection, reassembling
// objects that arrive split across multiple reads. encoding/json.Decoder
// already buffers partial input and tracks string/escape/brace state
// internally when asked to decode a single value from a stream, so Reader
// is a thin wrapper rather than a hand-rolled brace counter: it is the
// reassembly behavior the wire format calls for, reusing the standard
// library's own incremental scanner instead of reimplementing one.
type Reader struct {
	dec *json.Decoder
}

// NewReader wraps r for request decoding.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: json.NewDecoder(r)}
}

// ErrMalformed wraps any JSON syntax or structural error encountered while
// decoding a request, distinguishing it from a clean io.EOF at the top of a
// frame (connection closed between requests, not mid-object).
var ErrMalformed = errors.New("malformed request")

// Next reads and decodes the next complete JSON object as a Request. It
// returns io.EOF when the underlying connection is closed with no partial
// object pending, and ErrMalformed (wrapping the decode error) on any
// structural problem — including a full object that isn't valid JSON or
// whose REQUEST_NAME is present but not a string.
func (r *Reader) Next() (Request, error) {
	var req Request
	if err := r.dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return Request{}, io.EOF
		}
		return Request{}, errors.Join(ErrMalformed, err)
	}
	return req, nil
}

// Writer serializes responses and subscription events onto a connection.
// Successive writes are simply concatenated JSON objects, matching the
// wire format's lack of a length prefix.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w for response/event encoding.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteResponse encodes resp as a single JSON object.
func (w *Writer) WriteResponse(resp Response) error {
	return json.NewEncoder(w.w).Encode(resp)
}

// WriteEvent encodes ev as a single JSON object, to be interleaved with
// responses on the same socket per the fan-out contract.
func (w *Writer) WriteEvent(ev SubscriptionEvent) error {
	return json.NewEncoder(w.w).Encode(ev)
}
