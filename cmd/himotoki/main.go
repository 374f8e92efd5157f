package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/himotoki/himotoki"
)

func main() {
	dictFlag := flag.String("dict", himotoki.DefaultDictPath, "Path to the lexicon artifact")
	textFlag := flag.String("text", "", "Text to tokenize (reads stdin lines when empty)")
	kFlag := flag.Int("k", 1, "Number of candidate segmentations to print")
	jsonFlag := flag.Bool("json", false, "Emit JSON instead of tab-separated columns")
	flag.Parse()

	himotoki.SetDictPath(*dictFlag)

	report, err := himotoki.WarmUp()
	if err != nil {
		log.Fatalf("Failed to load lexicon: %v", err)
	}
	fmt.Fprintf(os.Stderr, "lexicon %s loaded in %s\n", report.Path, report.LoadTime)

	if *textFlag != "" {
		process(*textFlag, *kFlag, *jsonFlag)
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		process(line, *kFlag, *jsonFlag)
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("Failed to read stdin: %v", err)
	}
}

func process(text string, k int, asJSON bool) {
	results, err := himotoki.Analyze(text, k)
	if err != nil {
		log.Fatalf("Failed to analyze %q: %v", text, err)
	}
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Fatalf("Failed to encode output: %v", err)
		}
		return
	}
	for i, r := range results {
		if k > 1 {
			fmt.Printf("# candidate %d (score %.1f)\n", i+1, r.Score)
		}
		for _, t := range r.Tokens {
			fmt.Printf("%s\t%s\t%s\t%s\t%d-%d\n",
				t.Surface, t.Reading, t.POS, t.BaseForm, t.Start, t.End)
		}
	}
}
