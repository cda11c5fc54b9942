package main

import (
	"github.com/joho/godotenv"

	"github.com/mkvale/clashwatch/cmd"
)

func main() {
	// Load .env if present so CLASH_API_TOKEN can live next to the binary
	// during development. Environment reads happen only from here on down
	// through config loading; the client itself never touches the environment.
	_ = godotenv.Load()

	cmd.Execute()
}
