package wire

import (
	"bytes"
	"errors"
	"io"
	"net"
	"testing"

	testingpkg "github.com/ryogrid/QueryRunner/testing/testing_assert"
)

func TestMakeMsg(t *testing.T) {
	msg := MakeMsg("FROM a.csv")
	testingpkg.Equals(t, []byte{0, 0, 0, 10}, msg[:4])
	testingpkg.Equals(t, "FROM a.csv", string(msg[4:]))

	// the header counts bytes, not characters
	msg = MakeMsg("名前")
	testingpkg.Equals(t, []byte{0, 0, 0, 6}, msg[:4])

	testingpkg.Equals(t, []byte{0, 0, 0, 0}, MakeMsg(""))
}

func TestSendAndReceiveOverConn(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		SendMsg(client, "FROM a.csv COUNTBY id")
		SendMsg(client, "")
		SendMsg(client, "id,count\n1,2\n")
		client.Close()
	}()

	for _, expected := range []string{"FROM a.csv COUNTBY id", "", "id,count\n1,2\n"} {
		msg, err := ReceiveMsg(server)
		testingpkg.Ok(t, err)
		testingpkg.Equals(t, expected, msg)
	}
	_, err := ReceiveMsg(server)
	testingpkg.Equals(t, io.EOF, err)
}

func TestReceiveShortHeader(t *testing.T) {
	_, err := ReceiveMsg(bytes.NewReader([]byte{0, 0}))
	testingpkg.Assert(t, errors.Is(err, ErrFailedToRead), "expected read failure, got %v", err)
}

func TestReceiveShortBody(t *testing.T) {
	msg := MakeMsg("FROM a.csv")
	_, err := ReceiveMsg(bytes.NewReader(msg[:len(msg)-3]))
	testingpkg.Assert(t, errors.Is(err, ErrFailedToRead), "expected read failure, got %v", err)
}

func TestReceiveTooLarge(t *testing.T) {
	_, err := ReceiveMsg(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff}))
	testingpkg.Assert(t, errors.Is(err, ErrFailedToRead), "expected read failure, got %v", err)
}
