package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/logica/pkg/logica"
	"github.com/cognicore/logica/pkg/logica/config"
	"github.com/cognicore/logica/pkg/logica/store"
	"github.com/cognicore/logica/pkg/logica/store/sqlite"
)

func main() {
	var (
		kbPath  = flag.String("kb", "", "Path to YAML knowledge file (required)")
		goalStr = flag.String("goal", "", "Goal predicate, e.g. 'Criminal(West)' (required)")
		mode    = flag.String("mode", "backward", "Inference mode: backward or forward")
		max     = flag.Int("max", 0, "Maximum number of solutions (0 = all)")
		dbPath  = flag.String("db", "", "Optional: SQLite path to persist knowledge and the query log")
	)
	flag.Parse()

	if *kbPath == "" {
		log.Fatal("--kb required")
	}
	if *goalStr == "" {
		log.Fatal("--goal required")
	}

	ctx := context.Background()

	clauses, err := config.LoadKnowledge(*kbPath)
	if err != nil {
		log.Fatalf("load knowledge: %v", err)
	}
	goal, err := config.ParsePredicate(*goalStr)
	if err != nil {
		log.Fatalf("parse goal: %v", err)
	}

	var st store.Store
	if *dbPath != "" {
		st, err = sqlite.OpenSQLite(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
	}

	eng := logica.New(logica.Options{Store: st})
	defer eng.Close()

	for _, hc := range clauses {
		if hc.IsFact() {
			err = eng.TellFact(ctx, hc.Conclusion)
		} else {
			err = eng.TellRule(ctx, hc)
		}
		if err != nil {
			log.Fatalf("tell %s: %v", hc, err)
		}
	}

	switch *mode {
	case "forward":
		s, ok, err := eng.Derive(ctx, goal)
		if err != nil {
			log.Fatalf("derive: %v", err)
		}
		if !ok {
			fmt.Println("not derivable")
			return
		}
		fmt.Printf("derived with %s\n", s)
	case "backward":
		solutions, err := eng.Prove(ctx, goal, *max)
		if err != nil {
			log.Fatalf("prove: %v", err)
		}
		if len(solutions) == 0 {
			fmt.Println("no proof")
			return
		}
		for i, s := range solutions {
			fmt.Printf("%d: %s\n", i+1, s)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}
