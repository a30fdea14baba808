package main

import "strive/cmd/strive/root"

func main() {
	root.Execute()
}
