package main

import (
	"github.com/NIHAAL084/ultimate-ai-assistant/cmd/zora/cmd"
)

func main() {
	cmd.Execute()
}
