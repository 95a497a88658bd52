package main

import (
	"fasta-fetcher-workers/src/application"
)

func main() {
	app := application.NewApp()
	app.Start()
	app.Wait()
}
