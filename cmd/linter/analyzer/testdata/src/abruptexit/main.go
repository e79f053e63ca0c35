package main

import (
	"log"
	"os"
)

func main() {
	if err := setup(); err != nil {
		log.Fatalf("setup failed: %v", err) // allowed in main
	}
	if len(os.Args) > 1 {
		panic("unexpected arguments") // allowed in main
	}
	os.Exit(0) // allowed in main
}

func setup() error {
	return nil
}

func shutdown() {
	os.Exit(1) // want `os.Exit is forbidden outside main function`
}

func mustSetup() {
	if err := setup(); err != nil {
		panic(err) // want `panic is forbidden outside main function`
	}
}

func fail(err error) {
	log.Fatal(err)                    // want `log.Fatal is forbidden outside main function`
	log.Fatalf("error: %v", err)      // want `log.Fatalf is forbidden outside main function`
	log.Fatalln("fatal error:", err)  // want `log.Fatalln is forbidden outside main function`
	log.Printf("recovered: %v", err)  // fine
}
