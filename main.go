package main

import "github.com/naka-gawa/github-profile-assets/cmd"

func main() {
	cmd.Execute()
}
