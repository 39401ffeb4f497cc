// ace-translate converts a file of controlled-English statements into
// logic-program text, one report line per input statement.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cognicore/acelog/pkg/acelog/config"
	"github.com/cognicore/acelog/pkg/acelog/lexicon"
	"github.com/cognicore/acelog/pkg/acelog/statement"
	"github.com/cognicore/acelog/pkg/acelog/translate"
)

func main() {
	var (
		inPath      = flag.String("in", "", "Input file (default: stdin)")
		lexiconPath = flag.String("lexicon", "", "Lexicon override YAML (optional)")
	)
	flag.Parse()

	var lex *lexicon.Lexicon
	if *lexiconPath != "" {
		cfg, err := config.LoadLexicon(*lexiconPath)
		if err != nil {
			log.Fatal("load lexicon: ", err)
		}
		lex = lexicon.FromConfig(cfg)
	}

	text, err := readInput(*inPath)
	if err != nil {
		log.Fatal(err)
	}

	trans := translate.New(lex)
	results := trans.ParseText(text)

	failures := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failures++
			fmt.Printf("line %d: FAIL  %s\n    %v\n", res.Line, res.Statement.Raw, res.Err)
		case res.Statement.Kind == statement.KindQuery:
			fmt.Printf("line %d: %-5s %s\n    %s  [%s]\n",
				res.Line, res.Statement.Kind, res.Statement.Raw, res.Translation, res.QueryType)
		default:
			fmt.Printf("line %d: %-5s %s\n    %s\n",
				res.Line, res.Statement.Kind, res.Statement.Raw, res.Translation)
		}
	}

	fmt.Printf("\n%d statements, %d failed\n", len(results), failures)
	if failures > 0 {
		os.Exit(1)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
