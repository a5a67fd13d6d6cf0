// Package dbtest provides an in-process stand-in for a Postgres server.
// It speaks just enough of the wire protocol for a client to connect,
// authenticate without a password, and run an empty query.
package dbtest

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

const (
	sslRequestCode = 80877103
	gssRequestCode = 80877104
)

// Postgres is a plaintext-only fake server. SSL requests are declined
// with 'N', the way a stock postgres container answers them.
type Postgres struct {
	ln     net.Listener
	opened atomic.Int64
	closed atomic.Int64
	wg     sync.WaitGroup

	mu    sync.Mutex
	conns []net.Conn
}

// NewPostgres starts a server on a loopback port. It is shut down when
// the test ends.
func NewPostgres(t testing.TB) *Postgres {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	p := &Postgres{ln: ln}
	p.wg.Add(1)
	go p.serve()
	t.Cleanup(func() {
		_ = ln.Close()
		p.mu.Lock()
		for _, c := range p.conns {
			_ = c.Close()
		}
		p.mu.Unlock()
		p.wg.Wait()
	})
	return p
}

// Addr is the host:port the server listens on.
func (p *Postgres) Addr() string { return p.ln.Addr().String() }

// URI returns a postgres:// URI for the server with rawQuery appended
// when non-empty.
func (p *Postgres) URI(rawQuery string) string {
	uri := "postgres://app:secret@" + p.Addr() + "/app"
	if rawQuery != "" {
		uri += "?" + rawQuery
	}
	return uri
}

// Opened counts accepted client connections.
func (p *Postgres) Opened() int { return int(p.opened.Load()) }

// Closed counts client connections that have gone away.
func (p *Postgres) Closed() int { return int(p.closed.Load()) }

// WaitReleased waits until every accepted connection has been closed by
// the client and reports whether that happened before the timeout.
func (p *Postgres) WaitReleased(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if p.Closed() == p.Opened() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return p.Closed() == p.Opened()
}

func (p *Postgres) serve() {
	defer p.wg.Done()
	for {
		conn, err := p.ln.Accept()
		if err != nil {
			return
		}
		p.opened.Add(1)
		p.mu.Lock()
		p.conns = append(p.conns, conn)
		p.mu.Unlock()
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			defer p.closed.Add(1)
			defer conn.Close()
			_ = handle(conn)
		}()
	}
}

func handle(conn net.Conn) error {
	r := bufio.NewReader(conn)

	// Startup phase: untyped messages, possibly preceded by SSL/GSS requests.
	for {
		body, err := readUntyped(r)
		if err != nil {
			return err
		}
		if len(body) < 4 {
			return errors.New("short startup message")
		}
		code := binary.BigEndian.Uint32(body[:4])
		if code == sslRequestCode || code == gssRequestCode {
			if _, err := conn.Write([]byte{'N'}); err != nil {
				return err
			}
			continue
		}
		break
	}

	// AuthenticationOk, then ReadyForQuery(idle).
	if err := writeMsg(conn, 'R', []byte{0, 0, 0, 0}); err != nil {
		return err
	}
	if err := writeMsg(conn, 'Z', []byte{'I'}); err != nil {
		return err
	}

	for {
		typ, err := r.ReadByte()
		if err != nil {
			return err
		}
		if _, err := readUntyped(r); err != nil {
			return err
		}
		switch typ {
		case 'Q':
			if err := writeMsg(conn, 'I', nil); err != nil {
				return err
			}
			if err := writeMsg(conn, 'Z', []byte{'I'}); err != nil {
				return err
			}
		case 'X':
			return nil
		default:
			// ErrorResponse with a bare message field, then back to idle.
			msg := append([]byte("Mfake server: unsupported message"), 0, 0)
			if err := writeMsg(conn, 'E', msg); err != nil {
				return err
			}
			if err := writeMsg(conn, 'Z', []byte{'I'}); err != nil {
				return err
			}
		}
	}
}

// readUntyped reads a length-prefixed message body.
func readUntyped(r io.Reader) ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	n := int(binary.BigEndian.Uint32(hdr[:])) - 4
	if n < 0 || n > 1<<20 {
		return nil, errors.New("bad message length")
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}

func writeMsg(w io.Writer, typ byte, body []byte) error {
	out := make([]byte, 5+len(body))
	out[0] = typ
	binary.BigEndian.PutUint32(out[1:5], uint32(4+len(body)))
	copy(out[5:], body)
	_, err := w.Write(out)
	return err
}
