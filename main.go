// @title Happy Thoughts API
// @version 1.0
// @description Post short thoughts, read the feed, and send hearts.
// @host localhost:8080
// @BasePath /

package main

import (
	_ "happy-thoughts-api/docs"

	"happy-thoughts-api/cmd"
)

func main() {
	cmd.Execute()
}
