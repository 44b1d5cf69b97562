package main

import "github.com/nfrund/petimages/cmd/petimages-cli/cmd"

func main() {
	cmd.Execute()
}
