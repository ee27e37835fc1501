/*
Copyright © 2025 tieubaoca
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/tieubaoca/pdf-insight-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional; real deployments pass config through the environment.
	godotenv.Load()
}
