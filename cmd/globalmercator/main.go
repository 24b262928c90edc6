package main

import "github.com/MeKo-Tech/globalmercator/internal/cmd"

func main() {
	cmd.Execute()
}
