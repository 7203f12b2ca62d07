package main

import (
	_ "github.com/joho/godotenv/autoload"

	"moviedb/internal/cli"
)

func main() {
	cli.Execute()
}
