// ace-repl is an interactive knowledge-base shell: facts and rules are
// asserted into an embedded Prolog engine, queries are answered with variable
// bindings.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/cognicore/acelog/pkg/acelog"
	"github.com/cognicore/acelog/pkg/acelog/config"
	"github.com/cognicore/acelog/pkg/acelog/engine"
	"github.com/cognicore/acelog/pkg/acelog/engine/prologdb"
	"github.com/cognicore/acelog/pkg/acelog/lexicon"
	"github.com/cognicore/acelog/pkg/acelog/statement"
	"github.com/cognicore/acelog/pkg/acelog/store"
	"github.com/cognicore/acelog/pkg/acelog/store/sqlite"
)

func main() {
	var (
		dbPath      = flag.String("db", "", "Journal database path (optional)")
		lexiconPath = flag.String("lexicon", "", "Lexicon override YAML (optional)")
		kbPath      = flag.String("kb", "", "Knowledge-base file preloaded at start (optional)")
	)
	flag.Parse()

	ctx := context.Background()

	var lex *lexicon.Lexicon
	if *lexiconPath != "" {
		cfg, err := config.LoadLexicon(*lexiconPath)
		if err != nil {
			log.Fatal("load lexicon: ", err)
		}
		lex = lexicon.FromConfig(cfg)
	}

	var journal store.Store
	if *dbPath != "" {
		var err error
		journal, err = sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatal("open journal: ", err)
		}
	}

	session := acelog.New(acelog.Options{
		Lexicon: lex,
		Engine:  prologdb.New(),
		Journal: journal,
	})
	defer session.Close()

	if *kbPath != "" {
		text, err := os.ReadFile(*kbPath)
		if err != nil {
			log.Fatal("read kb: ", err)
		}
		results, err := session.LoadText(ctx, string(text))
		if err != nil {
			log.Fatal("load kb: ", err)
		}
		for _, res := range results {
			if res.Err != nil {
				fmt.Printf("kb line %d: %v\n", res.Line, res.Err)
			}
		}
		fmt.Printf("Loaded %d statements from %s\n", len(results), *kbPath)
	}

	fmt.Println("===========================================")
	fmt.Println("  acelog REPL")
	fmt.Println("  Controlled English -> logic program")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Facts and rules are asserted, queries answered.")
	fmt.Println("Commands: :history, :reset  (Ctrl+D to exit)")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case ":history":
			showHistory(ctx, session)
			continue
		case ":reset":
			if err := session.Reset(ctx); err != nil {
				fmt.Println("Error:", err)
			} else {
				fmt.Println("Knowledge base cleared.")
			}
			continue
		}

		handleLine(ctx, session, line)
	}

	fmt.Println("\nGoodbye!")
}

func handleLine(ctx context.Context, session *acelog.Session, line string) {
	if statement.Classify(line).Kind == statement.KindQuery {
		res, bindings, err := session.Ask(ctx, line)
		if err != nil {
			fmt.Println("Error:", err)
			return
		}
		fmt.Printf("?- %s  [%s]\n", res.Translation, res.QueryType)
		printBindings(bindings)
		return
	}

	res, err := session.Tell(ctx, line)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Added %s: %s\n", res.Statement.Kind, res.Translation)
}

func printBindings(bindings []engine.Binding) {
	if len(bindings) == 0 {
		fmt.Println("No.")
		return
	}

	for _, b := range bindings {
		if len(b) == 0 {
			fmt.Println("Yes.")
			continue
		}
		names := make([]string, 0, len(b))
		for name := range b {
			names = append(names, name)
		}
		sort.Strings(names)

		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, name+" = "+b[name])
		}
		fmt.Println("  " + strings.Join(parts, ", "))
	}
}

func showHistory(ctx context.Context, session *acelog.Session) {
	entries, err := session.History(ctx, 0)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No history (run with -db to enable the journal).")
		return
	}

	for _, e := range entries {
		if e.Failure != "" {
			fmt.Printf("  [%s] %s  -> FAIL: %s\n", e.Kind, e.Raw, e.Failure)
			continue
		}
		fmt.Printf("  [%s] %s  -> %s\n", e.Kind, e.Raw, e.Translation)
	}
}
