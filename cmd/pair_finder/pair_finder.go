package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	classwork "github.com/DumpsterDom/cse212-ClassWork"
)

// readWords reads one word per line, trimming whitespace and dropping blank
// lines.
func readWords(reader io.Reader) []string {
	words := make([]string, 0)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

func main() {
	inputPath := flag.String("input", "",
		"input file, one word per line (default stdin)")
	proseBool := flag.Bool("prose", false,
		"treat input as running text and extract words with the tokenizer")
	wordLen := flag.Int("length", 2,
		"word length to keep when -prose is set")
	flag.Parse()

	var reader io.Reader = os.Stdin
	if *inputPath != "" {
		file, err := os.Open(*inputPath)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		reader = file
	}

	var words []string
	if *proseBool {
		data, readErr := io.ReadAll(reader)
		if readErr != nil {
			log.Fatal(readErr)
		}
		text := string(data)
		tokens, tokErr := classwork.WordTokens(&text)
		if tokErr != nil {
			log.Fatal(tokErr)
		}
		words = classwork.WordsOfLength(*tokens, *wordLen)
	} else {
		words = readWords(reader)
	}

	pairs := classwork.FindPairs(words)
	sort.Strings(pairs)
	for _, pair := range pairs {
		fmt.Println(pair)
	}
	log.Printf("%d words in, %d symmetric pairs found", len(words),
		len(pairs))
}
