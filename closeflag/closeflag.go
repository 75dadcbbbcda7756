package closeflag

import (
	"errors"
	"sync"
)

// CloseFlag remembers whether an object was closed and runs CloseFunc exactly once
type CloseFlag struct {
	mutex  sync.Mutex
	closed bool

	// CloseFunc will be called the first time Close is called. It is allowed to call Close itself
	CloseFunc func() error
}

var (
	// ErrorClosed is returned when the object is used or closed after it was closed
	ErrorClosed = errors.New("Already closed")
)

// IsClosed reports whether Close has been called
func (c *CloseFlag) IsClosed() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.closed
}

// Close marks the flag closed. Only the first call runs CloseFunc, later calls return ErrorClosed.
func (c *CloseFlag) Close() error {
	c.mutex.Lock()
	closed := c.closed
	c.closed = true
	c.mutex.Unlock()

	if closed {
		return ErrorClosed
	}

	if c.CloseFunc != nil {
		return c.CloseFunc()
	}

	return nil
}
