// Command jugadas-cli is a demonstration harness over the jugadas core:
// it reads a ticket file and prints a parsed report. It is not part of
// the library's contract — a real consumer imports pkg/jugadas directly.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jugadas/parser/pkg/jugadas"
	"github.com/jugadas/parser/pkg/jugadas/analyze"
	"github.com/jugadas/parser/pkg/jugadas/config"
)

func main() {
	ticketPath := flag.String("ticket", "", "Path to a ticket text file (required)")
	configPath := flag.String("config", "", "Path to an optional YAML ParserConfig override")
	flag.Parse()

	if *ticketPath == "" {
		log.Fatal("--ticket required")
	}

	cfg, err := (&config.Loader{Path: *configPath}).Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	data, err := os.ReadFile(*ticketPath)
	if err != nil {
		log.Fatalf("read ticket: %v", err)
	}

	result := jugadas.Parse(string(data), cfg)
	if !result.Success {
		fmt.Println("Parse failed:")
		for _, e := range result.Metadata.Errors {
			fmt.Println(" -", e)
		}
		os.Exit(1)
	}

	analyzer := analyze.New()
	for _, j := range result.Jugadas {
		analyzer.Process(j)
		fmt.Printf("%s: %d details, calculated=%s, valid=%v, parsed_at=%s\n",
			j.PlayerName, len(j.Details), j.TotalCalculated.StringFixed(2), j.IsValid, j.Metadata.FormattedTimestamp())
		for _, w := range j.Warnings {
			fmt.Println("   warning:", w)
		}
		for _, e := range j.Errors {
			fmt.Println("   error:", e)
		}
	}

	fmt.Println(analyzer.Summary(result.Summary.TotalCalculated.StringFixed(2)))
	fmt.Printf("confidence=%.2f parse_time_ms=%d\n", result.Summary.Confidence, result.Metadata.ParseTimeMS)
}
