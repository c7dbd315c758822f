package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/execution/executors"
	"github.com/ryogrid/QueryRunner/queryrunner"
)

// Runs queries read from stdin against sources on the local file system,
// one query per line, until EOF.
func main() {
	dataDir := flag.String("data", "", "directory relative source names are resolved against")
	join := flag.String("join", common.DefaultJoinStrategy, "join strategy: hash or merge")
	logLevel := flag.String("log", "warn", "log level")
	values := flag.Bool("values", false, "print bare cell values instead of the rendered result")
	flag.Parse()

	lvl, err := common.ParseLogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	common.LogLevelSetting = lvl
	strategy, err := executors.ParseJoinStrategy(*join)
	if err != nil {
		log.Fatal(err)
	}

	qr := queryrunner.NewQueryRunnerWithDataDir(*dataDir, strategy)
	defer qr.Shutdown()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> Query: ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		if !*values {
			fmt.Println(qr.Execute(scanner.Text()))
			continue
		}
		result, err := qr.ExecuteQuery(scanner.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}
		queryrunner.PrintExecuteResults(os.Stdout, queryrunner.ConvRelationToValues(result))
	}
}
