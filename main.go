package main

import (
	"github.com/mj1618/uia-mcp/cmd"
	_ "github.com/mj1618/uia-mcp/internal/platform/win32"
)

func main() {
	cmd.Execute()
}
