package async

import (
	"bufio"
	"os"
)

// EnterKey returns a channel that closes once the user presses Enter.
func EnterKey() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		bufio.NewReader(os.Stdin).ReadBytes('\n')
		close(done)
	}()
	return done
}
