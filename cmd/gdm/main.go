package main

import "github.com/Akkadate/gdm-app-sub001/cmd/gdm/command"

func main() {
	command.Execute()
}
