package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/execution/executors"
	"github.com/ryogrid/QueryRunner/queryrunner"
	"github.com/ryogrid/QueryRunner/server/listener"
	"github.com/ryogrid/QueryRunner/server/signal_handle"
)

func loadConfig() *common.ServerConfig {
	configPath := flag.String("config", "", "path of a YAML config file")
	port := flag.String("port", "", "framed TCP listen address (overrides config)")
	httpAddr := flag.String("http", "", "HTTP listen address, \"off\" disables it (overrides config)")
	dataDir := flag.String("data", "", "directory relative source names are resolved against (overrides config)")
	join := flag.String("join", "", "join strategy: hash or merge (overrides config)")
	logLevel := flag.String("log", "", "log level: debug_detail, debug, info, warn, error or silent (overrides config)")
	flag.Parse()

	conf, err := common.LoadServerConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *port != "" {
		conf.TCPAddr = *port
	}
	if *httpAddr != "" {
		conf.HTTPAddr = *httpAddr
	}
	if *dataDir != "" {
		conf.DataDir = *dataDir
	}
	if *join != "" {
		conf.JoinStrategy = *join
	}
	if *logLevel != "" {
		conf.LogLevel = *logLevel
	}
	if err = conf.Validate(); err != nil {
		log.Fatal(err)
	}
	conf.Apply()
	return conf
}

func main() {
	conf := loadConfig()

	strategy, err := executors.ParseJoinStrategy(conf.JoinStrategy)
	if err != nil {
		log.Fatal(err)
	}
	qr := queryrunner.NewQueryRunnerWithDataDir(conf.DataDir, strategy)
	tcpServer := listener.NewTCPServer(qr)

	exitNotifyCh := make(chan bool, 1)

	// start signal handler thread
	go signal_handle.SignalHandlerTh(func() {
		tcpServer.Shutdown()
		qr.Shutdown()
	}, &exitNotifyCh)

	// start servers
	go func() {
		if err := tcpServer.ListenAndServe(conf.TCPAddr); err != nil {
			log.Fatal(err)
		}
	}()
	if conf.HTTPAddr != "off" {
		handler, err := listener.NewRestHandler(qr, signal_handle.IsStopped)
		if err != nil {
			log.Fatal(err)
		}
		go func() {
			common.ShPrintf(common.INFO, "HTTP server listening on %s\n", conf.HTTPAddr)
			log.Fatal(http.ListenAndServe(conf.HTTPAddr, handler))
		}()
	}
	common.ShPrintf(common.INFO, "Server started (join strategy: %s)\n", strategy)

	// wait shutdown operation finished notification
	<-exitNotifyCh

	fmt.Println("Server is stopped gracefully")
	// exit process
	os.Exit(0)
}
