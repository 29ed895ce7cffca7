package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/DumpsterDom/cse212-ClassWork/summary"
)

func main() {
	inputPath := flag.String("input", "", "delimited input file")
	column := flag.Int("column", 0, "zero-based column to summarize")
	delimiter := flag.String("delimiter", ",", "field delimiter")
	noHeader := flag.Bool("no_header", false,
		"treat the first line as data rather than a header")
	flag.Parse()
	if *inputPath == "" {
		flag.Usage()
		log.Fatal("Must provide -input for file source")
	}

	result, err := summary.Summarize(*inputPath, summary.Options{
		Delimiter: *delimiter,
		Column:    *column,
		Header:    !*noHeader,
	})
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "Count"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, category := range result.Categories() {
		table.Append([]string{category,
			strconv.Itoa(result.Counts[category])})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(result.Total())})
	table.Render()

	if result.Skipped > 0 {
		log.Printf("Skipped %d malformed or empty rows", result.Skipped)
	}
}
