package main

import (
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for SNIPEX_LOG_LEVEL / SNIPEX_LOG_FILE; a missing file
	// is not an error.
	_ = godotenv.Load()

	Execute()
}
