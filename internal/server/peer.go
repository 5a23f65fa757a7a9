package server

import (
	"net"
	"sync"

	"github.com/glowkv/glowkv/internal/resp"
)

// Peer represents a connected client: a network connection paired with
// a line reader for requests and a buffered encoder for replies.
// Writes are synchronized so a future out-of-band push (there are none
// today) could share the connection safely with the read loop.
type Peer struct {
	conn   net.Conn
	reader *resp.LineReader
	writer *resp.Encoder
	mu     sync.Mutex
}

// NewPeer wraps conn as a Peer.
func NewPeer(conn net.Conn) *Peer {
	return &Peer{
		conn:   conn,
		reader: resp.NewLineReader(conn),
		writer: resp.NewEncoder(conn),
	}
}

// ReadLine reads the next raw request line, with its terminator
// stripped. Tokenizing it into a command and arguments is the caller's
// job (via resp.ParseLine) so that a syntax error, unlike a read
// error, never ends the connection.
func (p *Peer) ReadLine() (string, error) {
	return p.reader.ReadLine()
}

// Send encodes and buffers a reply. Call Flush to push it to the wire.
func (p *Peer) Send(v resp.Value) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writer.Write(v)
}

// Flush pushes any buffered replies to the client.
func (p *Peer) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writer.Flush()
}

// InputBuffered reports how many bytes are already available to read
// without blocking, used to decide whether to flush after each reply
// or wait for a batch of pipelined requests to drain first.
func (p *Peer) InputBuffered() int {
	return p.reader.Buffered()
}

// Close closes the underlying connection.
func (p *Peer) Close() error {
	return p.conn.Close()
}

// RemoteAddr returns the client's address, for logging.
func (p *Peer) RemoteAddr() net.Addr {
	return p.conn.RemoteAddr()
}
