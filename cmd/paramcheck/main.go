package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	j "github.com/goccy/go-json"

	paramcheck "github.com/reoring/paramcheck"
	_ "github.com/reoring/paramcheck/source"
	yamlsrc "github.com/reoring/paramcheck/source/yaml"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "paramcheck CLI\n\nUsage:\n  paramcheck validate -schema schema.yaml [-in input.json] [-yaml] [-max-depth N] [-max-bytes N]\n\nReads input from stdin when -in is omitted. Prints the canonical value on\nsuccess, or an RFC 7807 problem document on failure (exit 1).")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	var inPath string
	var inYAML bool
	var maxDepth int
	var maxBytes int64
	fs.StringVar(&schemaPath, "schema", "", "schema definition file (YAML)")
	fs.StringVar(&inPath, "in", "", "input file (defaults to stdin)")
	fs.BoolVar(&inYAML, "yaml", false, "treat input as YAML instead of JSON")
	fs.IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth (0 = unlimited)")
	fs.Int64Var(&maxBytes, "max-bytes", 0, "maximum input size in bytes (0 = unlimited)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	desc, err := loadSchema(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "paramcheck: %v\n", err)
		os.Exit(2)
	}

	data, err := readInput(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "paramcheck: %v\n", err)
		os.Exit(2)
	}

	var src paramcheck.Source
	if inYAML {
		src = yamlsrc.NewBytes(data)
	} else {
		src = paramcheck.JSONBytes(data)
	}

	opt := paramcheck.ParseOpt{MaxDepth: maxDepth, MaxBytes: maxBytes}
	v, err := paramcheck.ParseFrom[any](context.Background(), desc, src, opt)
	if err != nil {
		if p, ok := paramcheck.AsProblem(err); ok {
			out, merr := j.MarshalIndent(p, "", "  ")
			if merr != nil {
				fmt.Fprintf(os.Stderr, "paramcheck: %v\n", merr)
				os.Exit(2)
			}
			fmt.Println(string(out))
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "paramcheck: %v\n", err)
		os.Exit(2)
	}

	out, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "paramcheck: %v\n", err)
		os.Exit(2)
	}
	fmt.Println(string(out))
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
