package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/carbocation/heredity"
)

func main() {
	format := flag.String("format", "text", "Output format: text, table or json")
	flag.Parse()

	f, err := heredity.ParseFormat(*format)
	if err != nil {
		log.Fatalln(err)
	}

	// Harry's father James is known to have the trait and his mother Lily is
	// known not to.
	pedigree := heredity.Pedigree{
		"Harry": {Name: "Harry", Mother: "Lily", Father: "James"},
		"James": {Name: "James", Trait: heredity.Present},
		"Lily":  {Name: "Lily", Trait: heredity.Absent},
	}

	engine, err := heredity.New(heredity.DefaultTable())
	if err != nil {
		log.Fatalln(err)
	}

	d, err := engine.Infer(context.Background(), pedigree)
	if err != nil {
		log.Fatalln(err)
	}

	if err := heredity.Write(os.Stdout, d, f); err != nil {
		log.Fatalln(err)
	}
}
