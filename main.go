package main

import "github.com/skysheng7/sea-otter-social-analysis/cmd"

func main() {
	cmd.Execute()
}
