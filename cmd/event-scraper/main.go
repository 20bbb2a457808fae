package main

import "github.com/civicminder/event-scraper/internal/cli"

func main() {
	cli.Execute()
}
