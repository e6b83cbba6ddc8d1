package main

import "zola-posts/cli"

func main() {
	cli.Execute()
}
