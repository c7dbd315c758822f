package listener

import (
	"errors"
	"io"
	"net"
	"sync"

	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/queryrunner"
	"github.com/ryogrid/QueryRunner/server/wire"
)

// TCPServer answers framed queries. Every connection is served on its own
// goroutine against one shared QueryRunner, one query at a time per
// connection.
type TCPServer struct {
	qr        *queryrunner.QueryRunner
	listener  net.Listener
	conns     map[net.Conn]struct{}
	mutex     *sync.Mutex
	wg        *sync.WaitGroup
	isStopped bool
}

func NewTCPServer(qr *queryrunner.QueryRunner) *TCPServer {
	return &TCPServer{qr, nil, make(map[net.Conn]struct{}), new(sync.Mutex), new(sync.WaitGroup), false}
}

func (s *TCPServer) ListenAndServe(addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Serve accepts connections on l until Shutdown is called.
func (s *TCPServer) Serve(l net.Listener) error {
	s.mutex.Lock()
	if s.isStopped {
		s.mutex.Unlock()
		l.Close()
		return net.ErrClosed
	}
	s.listener = l
	s.mutex.Unlock()
	common.ShPrintf(common.INFO, "TCPServer: listening on %s\n", l.Addr())

	for {
		conn, err := l.Accept()
		if err != nil {
			if s.stopped() {
				return nil
			}
			return err
		}
		if !s.track(conn) {
			conn.Close()
			return nil
		}
		go s.handleConn(conn)
	}
}

func (s *TCPServer) Addr() net.Addr {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown stops accepting, closes open connections and waits for their
// goroutines to return.
func (s *TCPServer) Shutdown() {
	s.mutex.Lock()
	s.isStopped = true
	if s.listener != nil {
		s.listener.Close()
	}
	for conn := range s.conns {
		conn.Close()
	}
	s.mutex.Unlock()
	s.wg.Wait()
}

func (s *TCPServer) stopped() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.isStopped
}

// track registers conn and counts its handler in wg, both under the mutex
// Shutdown takes before waiting.
func (s *TCPServer) track(conn net.Conn) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.isStopped {
		return false
	}
	s.conns[conn] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *TCPServer) untrack(conn net.Conn) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.conns, conn)
}

func (s *TCPServer) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer s.untrack(conn)
	defer conn.Close()

	peer := conn.RemoteAddr().String()
	common.ShPrintf(common.INFO, "TCPServer: connection established: %s\n", peer)
	for {
		query, err := wire.ReceiveMsg(conn)
		if err != nil {
			if errors.Is(err, io.EOF) || s.stopped() {
				common.ShPrintf(common.INFO, "TCPServer: connection closed: %s\n", peer)
				return
			}
			common.ShPrintf(common.WARN, "TCPServer: %s: %v\n", peer, err)
			// the stream is out of sync after a broken frame
			wire.SendMsg(conn, wire.FailedToReadMessage)
			return
		}

		common.ShPrintf(common.DEBUG_INFO, "TCPServer: %s: %s\n", peer, query)
		if err = wire.SendMsg(conn, s.qr.Execute(query)); err != nil {
			common.ShPrintf(common.WARN, "TCPServer: %s: send failed: %v\n", peer, err)
			return
		}
	}
}
