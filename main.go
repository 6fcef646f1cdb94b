package main

import "github.com/fundacionaurora/clinica_backend/cmd"

func main() {
	cmd.Execute()
}
