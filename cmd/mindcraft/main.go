package main

import (
	"fmt"
	"os"

	"github.com/humanapp/mindcraft-lang-sub000/cmd/mindcraft/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
