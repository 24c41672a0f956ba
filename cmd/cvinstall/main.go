package main

import "github.com/cvtools/cvinstall/cmd/cvinstall/internal"

func main() {
	internal.Execute()
}
