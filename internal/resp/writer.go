package resp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Encoder serializes reply Values onto an output stream using the five
// reply shapes glowkv supports: simple string, integer, error, null
// bulk, and array of simple strings. Write only buffers; call Flush to
// push buffered replies to the wire.
type Encoder struct {
	writer *bufio.Writer
}

// NewEncoder wraps w in a buffered RESP encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{writer: bufio.NewWriter(w)}
}

// Write serializes v into the internal buffer.
func (e *Encoder) Write(v Value) error {
	switch v.Type {
	case TypeInteger:
		return e.writeHeader(':', v.Integer)

	case TypeSimpleString:
		return e.writeRaw('+', v.Str)

	case TypeError:
		return e.writeRaw('-', v.Str)

	case TypeNilBulk:
		_, err := e.writer.WriteString("$-1\r\n")
		return err

	case TypeArray:
		if err := e.writeHeader('*', int64(len(v.Array))); err != nil {
			return err
		}
		for _, el := range v.Array {
			if err := e.Write(el); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("resp: unknown reply type %q", v.Type)
	}
}

// Flush pushes any buffered replies to the underlying writer.
func (e *Encoder) Flush() error {
	return e.writer.Flush()
}

// writeHeader writes the type prefix, decimal value, and CRLF.
func (e *Encoder) writeHeader(prefix byte, n int64) error {
	if err := e.writer.WriteByte(prefix); err != nil {
		return err
	}
	b := e.writer.AvailableBuffer()
	b = strconv.AppendInt(b, n, 10)
	if _, err := e.writer.Write(b); err != nil {
		return err
	}
	_, err := e.writer.WriteString("\r\n")
	return err
}

func (e *Encoder) writeRaw(prefix byte, b []byte) error {
	if err := e.writer.WriteByte(prefix); err != nil {
		return err
	}
	if _, err := e.writer.Write(b); err != nil {
		return err
	}
	_, err := e.writer.WriteString("\r\n")
	return err
}
