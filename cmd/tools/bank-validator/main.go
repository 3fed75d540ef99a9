// cmd/tools/bank-validator/main.go
//
// Validates a question-bank registry file before it is deployed as an
// override for the built-in interview bank.
//
//	go run ./cmd/tools/bank-validator -path configs/question-bank.json
package main

import (
	"flag"
	"fmt"
	"os"

	"zone-platform/internal/interview/catalog"
)

func main() {
	path := flag.String("path", "configs/question-bank.json", "Path to question-bank registry file")
	flag.Parse()

	cat, err := catalog.LoadRegistry(*path)
	if err != nil {
		fmt.Printf("Bank validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Bank validation passed.")
	fmt.Printf("  categories: %d\n", len(cat.Categories()))
	fmt.Printf("  questions:  %d\n", cat.QuestionCount())
	for _, q := range cat.Questions() {
		fmt.Printf("    - %s (%d options)\n", q.ID, len(q.Options))
	}
}
