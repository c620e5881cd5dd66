package main

import (
	"github.com/theirongolddev/spendwise/cmd"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
