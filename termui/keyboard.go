package termui

import (
	"io"

	"github.com/axelmagn/mvcloop/mvc"
)

var _ mvc.InputSource = (*Keyboard)(nil)

// Quit keystrokes. In raw mode Ctrl-C arrives as a plain byte rather than a
// signal, so it's handled here.
const (
	keyQuit      = 'q'
	keyQuitUpper = 'Q'
	keyCtrlC     = 0x03
)

// Keyboard reads keystrokes from a terminal and reports quit requests.
//
// Reading happens on an internal goroutine draining into a buffered channel,
// so [Keyboard.Poll] never blocks the engine's single-threaded loop. End of
// input is treated as a quit request.
type Keyboard struct {
	keys chan byte
	eof  bool
}

// NewKeyboard starts reading keystrokes from in.
func NewKeyboard(in io.Reader) *Keyboard {
	k := &Keyboard{keys: make(chan byte, 64)}
	go k.read(in)
	return k
}

func (k *Keyboard) read(in io.Reader) {
	defer close(k.keys)
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			select {
			case k.keys <- buf[0]:
			default:
				// Nobody is draining, drop the keystroke.
			}
		}
		if err != nil {
			return
		}
	}
}

// Poll drains buffered keystrokes without blocking and reports whether a
// quit key was seen.
func (k *Keyboard) Poll() (bool, error) {
	if k.eof {
		return true, nil
	}
	for {
		select {
		case b, more := <-k.keys:
			if !more {
				k.eof = true
				return true, nil
			}
			switch b {
			case keyQuit, keyQuitUpper, keyCtrlC:
				return true, nil
			}
		default:
			return false, nil
		}
	}
}
