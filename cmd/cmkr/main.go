package main

import "github.com/cmkr/cmkr/cmd/cmkr/internal"

func main() {
	internal.Execute()
}
