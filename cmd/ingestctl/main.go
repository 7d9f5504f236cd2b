package main

import "github.com/vatesfr/ingestion-sdk-go/internal/cmd"

func main() {
	cmd.Execute()
}
