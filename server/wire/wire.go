package wire

import (
	"errors"
	"fmt"
	"io"

	"github.com/ryogrid/QueryRunner/common"
)

// FailedToReadMessage is sent back to a peer whose message could not be read.
const FailedToReadMessage = "[ERROR] Failed to read message."

var ErrFailedToRead = errors.New(FailedToReadMessage)

// MakeMsg frames body: a common.HeaderSize byte big-endian length followed by
// the UTF-8 body.
func MakeMsg(body string) []byte {
	msg := make([]byte, common.HeaderSize+len(body))
	common.ByteOrder.PutUint32(msg[:common.HeaderSize], uint32(len(body)))
	copy(msg[common.HeaderSize:], body)
	return msg
}

func SendMsg(w io.Writer, body string) error {
	_, err := w.Write(MakeMsg(body))
	return err
}

// ReceiveMsg reads one framed message. It returns io.EOF when the peer closed
// the stream between messages and an error wrapping ErrFailedToRead when the
// header or the body is cut short.
func ReceiveMsg(r io.Reader) (string, error) {
	header := make([]byte, common.HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.EOF {
			return "", io.EOF
		}
		return "", fmt.Errorf("%w: header: %v", ErrFailedToRead, err)
	}

	size := common.ByteOrder.Uint32(header)
	if size > common.MaxMessageSize {
		return "", fmt.Errorf("%w: body of %d bytes is too large", ErrFailedToRead, size)
	}
	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return "", fmt.Errorf("%w: body: %v", ErrFailedToRead, err)
	}
	return string(body), nil
}
