package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"

	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/server/wire"
)

func main() {
	host := flag.String("host", "127.0.0.1", "server host")
	port := flag.String("port", "19998", "server port")
	flag.Parse()

	conn, err := net.Dial("tcp", net.JoinHostPort(*host, *port))
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	fmt.Printf("Client: %s\n", conn.LocalAddr())
	fmt.Printf("Connection established: %s\n", conn.RemoteAddr())

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, common.SourceLineBufferSize), common.MaxMessageSize)
	for {
		fmt.Print("> Query: ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		if err = wire.SendMsg(conn, scanner.Text()); err != nil {
			log.Fatal(err)
		}
		result, err := wire.ReceiveMsg(conn)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println("Connection closed by server")
				return
			}
			fmt.Printf("\033[91m%s\033[0m\n", wire.FailedToReadMessage)
			return
		}
		fmt.Println(result)
	}
}
