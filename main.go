package main

import "sshexec/cmd"

func main() {
	cmd.Execute()
}
