// cmd/seqmatch/main.go
package main

import (
	"seqmatch/internal/appshell"
	"seqmatch/internal/cli"
)

func main() {
	appshell.Main(cli.Execute)
}
