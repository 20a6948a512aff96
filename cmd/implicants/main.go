// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The implicants command enumerates the (prime) implicants of a boolean
// function given as a small expression over the vertex variable v.
package main

// example query: implicants -arity=3 -expr="v % 3 == 0"

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/benwiederhake/go-implicants/engine"
	"github.com/benwiederhake/go-implicants/exprlang"
	"github.com/benwiederhake/go-implicants/internal/diagnostics"
)

var (
	formatFlag = flag.String("format", "plain", "output in 'plain' or 'json'")
	helpFlag   = flag.Bool("h", false, "prints usage")
	arityFlag  = flag.Uint("arity", 0, "number of variables of the function, e.g. -arity=3")
	exprFlag   = flag.String("expr", "", "boolean expression over v, e.g. -expr=\"v % 3 == 0\"")
	primeFlag  = flag.Bool("prime-only", false, "only report implicants that are prime")
	batchFlag  = flag.String("batch", "", "file with one 'arity expression' per line, run concurrently")
)

func usage() {
	fmt.Fprintf(os.Stderr,
		`usage of %s:

  %s -arity=<n> -expr=<expression> [<flag> ...]
  %s -batch=<file> [<flag> ...]

Enumerates the implicants of the boolean function described by
<expression>, a small expression over the vertex variable v (see the
exprlang package for its grammar), evaluated over all 2^<n> vertices.

In -batch mode, every line of <file> is "<arity> <expression>"; all
lines run concurrently and are reported in file order.

The <flag> arguments are:

`, os.Args[0], os.Args[0], os.Args[0])
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Parse()

	if *helpFlag {
		usage()
	}

	if *formatFlag != "plain" && *formatFlag != "json" {
		printError(fmt.Errorf("invalid -format %q, want 'plain' or 'json'", *formatFlag))
	}

	if *batchFlag != "" {
		runBatch(*batchFlag)
		return
	}

	if *exprFlag == "" {
		printError(fmt.Errorf("missing -expr, see -h"))
	}

	result, err := runOne(uint32(*arityFlag), *exprFlag)
	if err != nil {
		printError(err)
	}
	printResults([]namedResult{{label: *exprFlag, result: result}})
}

// job is one line of work: an arity and an oracle expression.
type job struct {
	arity uint32
	expr  string
}

// jobResult is the outcome of running Generate over one job's compiled
// oracle.
type jobResult struct {
	triples []triple
	log     *diagnostics.Log
}

type triple struct {
	M       uint32 `json:"m"`
	F       uint32 `json:"f"`
	IsPrime bool   `json:"isPrime"`
}

type namedResult struct {
	label  string
	result jobResult
}

// runOne compiles expr and runs the engine over it once, collecting
// every reported triple (or only the prime ones, under -prime-only).
func runOne(arity uint32, expr string) (jobResult, error) {
	log := diagnostics.NewLog()
	sample, err := exprlang.Compile(expr, arity)
	if err != nil {
		log.Error(err.Error())
		return jobResult{log: log}, err
	}

	var triples []triple
	engine.Generate(sample, func(m, f uint32, isPrime bool) {
		if *primeFlag && !isPrime {
			return
		}
		triples = append(triples, triple{M: m, F: f, IsPrime: isPrime})
	}, arity)

	log.Info(fmt.Sprintf("%d vertices, %d implicants reported", uint64(1)<<arity, len(triples)))
	return jobResult{triples: triples, log: log}, nil
}

// runBatch reads one "<arity> <expression>" job per line from path and
// runs every job concurrently with an errgroup, demonstrating that
// separate engine.Generate calls over disjoint arguments may safely run
// at once — engine.Generate keeps no package-level state. Results are
// printed back out in the original file order once every job finishes.
func runBatch(path string) {
	jobs, err := readJobs(path)
	if err != nil {
		printError(err)
	}

	results := make([]jobResult, len(jobs))
	var g errgroup.Group
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			r, err := runOne(j.arity, j.expr)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		printError(err)
	}

	named := make([]namedResult, len(jobs))
	for i, j := range jobs {
		named[i] = namedResult{label: fmt.Sprintf("%s (arity %d)", j.expr, j.arity), result: results[i]}
	}
	printResults(named)
}

func readJobs(path string) ([]job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var jobs []job
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expected '<arity> <expression>', got %q", path, lineNo, line)
		}
		arity, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid arity %q", path, lineNo, fields[0])
		}
		jobs = append(jobs, job{arity: uint32(arity), expr: strings.TrimSpace(fields[1])})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// jobReport is one job's worth of output, shaped directly for JSON
// marshaling: a label identifying the job, its reported triples, and the
// diagnostics collected while running it.
type jobReport struct {
	Label      string              `json:"label"`
	Implicants []triple            `json:"implicants"`
	Log        []diagnostics.Entry `json:"log"`
}

func printError(err error) {
	switch *formatFlag {
	case "json":
		b, _ := json.MarshalIndent(struct {
			Error string `json:"error"`
		}{Error: err.Error()}, "", "\t")
		fmt.Fprintf(os.Stderr, "%s\n", b)
	default:
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(2)
}

func printResults(named []namedResult) {
	exitCode := 0
	for i := range named {
		sortTriples(named[i].result.triples)
		if named[i].result.log.ContainsErrors() {
			exitCode = 1
		}
	}

	switch *formatFlag {
	case "json":
		fmt.Println(formatJSON(named))
	default:
		fmt.Println(formatAllPlain(named))
	}
	os.Exit(exitCode)
}

func formatAllPlain(named []namedResult) string {
	blocks := make([]string, len(named))
	for i, nr := range named {
		blocks[i] = formatPlain(nr.label, nr.result)
	}
	return strings.Join(blocks, "\n")
}

func formatJSON(named []namedResult) string {
	reports := make([]jobReport, len(named))
	for i, nr := range named {
		reports[i] = jobReport{
			Label:      nr.label,
			Implicants: nr.result.triples,
			Log:        nr.result.log.Entries,
		}
	}
	doc := struct {
		Results []jobReport `json:"results"`
	}{Results: reports}
	b, _ := json.MarshalIndent(doc, "", "\t")
	return string(b)
}

func formatPlain(label string, r jobResult) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s:\n", label)
	for _, e := range r.log.Entries {
		fmt.Fprintf(&buf, "  %s\n", e.String())
	}
	for _, tr := range r.triples {
		kind := "implicant"
		if tr.IsPrime {
			kind = "prime implicant"
		}
		fmt.Fprintf(&buf, "  %s: mask=%#x fixed=%#x\n", kind, tr.M, tr.F)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func sortTriples(ts []triple) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].M != ts[j].M {
			return ts[i].M < ts[j].M
		}
		return ts[i].F < ts[j].F
	})
}
