package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Wybxc/cgrammar"
)

func main() {
	var (
		inputPath    = flag.String("input", "", "Path to the C source file")
		seedTypedefs = flag.String("seed-typedefs", "", "Comma-separated typedef names to seed into the outermost scope")
		diagsOnly    = flag.Bool("diagnostics-only", false, "Only print collected diagnostics, not the AST")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("Input file not informed")
	}

	src, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Can't read input file: %s", err.Error())
	}

	var seeds []string
	if *seedTypedefs != "" {
		seeds = strings.Split(*seedTypedefs, ",")
	}

	result := cgrammar.ParseFile(src, *inputPath, seeds)

	for _, d := range result.Diagnostics {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", result.Sources.Render(d.Span), d.Severity, d.Message)
	}
	if *diagsOnly {
		return
	}

	fmt.Println(cgrammar.PrintTree(result.Tree))
}
