//go:build windows

package win32

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	"github.com/mj1618/uia-mcp/internal/platform"
)

// Inputter implements platform.Inputter with robotgo.
type Inputter struct{}

// NewInputter creates a new Windows inputter.
func NewInputter() *Inputter {
	return &Inputter{}
}

func (i *Inputter) Click(x, y int, button platform.MouseButton, count int) error {
	if count < 1 {
		count = 1
	}
	robotgo.Move(x, y)
	robotgo.MilliSleep(30)
	robotgo.Click(button.String(), count > 1)
	return nil
}

func (i *Inputter) TypeText(text string, delayMs int) error {
	if text == "" {
		return fmt.Errorf("nothing to type")
	}
	if delayMs <= 0 {
		robotgo.TypeStr(text)
		return nil
	}
	for _, r := range text {
		robotgo.TypeStr(string(r))
		robotgo.MilliSleep(delayMs)
	}
	return nil
}
