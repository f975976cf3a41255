package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/toyz/propgen/internal/cli"
	"github.com/toyz/propgen/pkg/propgen"
)

func main() {
	// Define command-line flags
	var (
		seedFlag    = flag.Int64("seed", 0, "Seed for the randomness source (0 uses the current time)")
		countFlag   = flag.Int("count", 0, "Number of sample values per expression")
		profileFlag = flag.String("profile", "", "Path to a YAML profile with seed, count and expressions")
		explainFlag = flag.Bool("explain", false, "Print the resolved generator tree instead of sampling values")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <type-expressions...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Propgen Generator Explorer\n")
		fmt.Fprintf(os.Stderr, "Resolves type expressions against the standard universe and samples values.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s Int                                # Sample plain ints\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s '[]Int' 'List<String>'             # Arrays and parameterized containers\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s 'List<? extends Number>'           # Upper-bounded wildcard\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --seed 42 --count 10 'Map<String, Int>'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --explain 'Map<String, ? super Int>'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --profile profile.yaml             # Expressions and seed from a file\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	var diagnostics *cli.Diagnostics
	if *quietFlag {
		diagnostics = cli.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = cli.NewVerboseDiagnostics()
	} else {
		diagnostics = cli.NewDiagnostics(cli.DiagnosticInfo)
	}

	seed := *seedFlag
	count := *countFlag
	expressions := flag.Args()

	if *profileFlag != "" {
		profile, err := cli.LoadProfile(*profileFlag)
		if err != nil {
			diagnostics.Error("%v", err)
			os.Exit(1)
		}
		if seed == 0 {
			seed = profile.Seed
		}
		if count == 0 {
			count = profile.Count
		}
		expressions = append(expressions, profile.Expressions...)
	}
	if count == 0 {
		count = cli.DefaultSampleCount
	}

	if len(expressions) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one type expression is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	source := propgen.NewSource(seed)
	diagnostics.Verbose("seed: %d", source.Seed())

	repository := propgen.StandardRepository(source)
	runner := cli.NewRunner(repository, diagnostics)

	failed := false
	for _, expression := range expressions {
		var err error
		if *explainFlag {
			err = runner.Explain(expression)
		} else {
			err = runner.Sample(expression, count)
		}
		if err != nil {
			diagnostics.Error("%v", err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
