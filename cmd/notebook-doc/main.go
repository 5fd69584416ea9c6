package main

import (
	"context"
	"log"
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdout)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("notebook-doc: %v", err)
	}
}
