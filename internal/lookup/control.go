package lookup

import (
	"context"
	"sync"
	"sync/atomic"
)

// Handler is the action bound to a DownloadControl.
type Handler func(ctx context.Context) error

// DownloadControl is a UI control that holds at most one activation handler.
// Rebinding replaces whatever was attached, so handlers from earlier lookups never fire.
type DownloadControl struct {
	mu          sync.Mutex
	handler     Handler
	rebinds     uint64
	downloading atomic.Bool
}

// Rebind detaches every existing handler and attaches h.
func (c *DownloadControl) Rebind(h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handler = h
	c.rebinds++
}

// Detach removes the bound handler.
func (c *DownloadControl) Detach() {
	c.Rebind(nil)
}

// Bound reports whether a handler is attached.
func (c *DownloadControl) Bound() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.handler != nil
}

// generation increases on every Rebind or Detach.
func (c *DownloadControl) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.rebinds
}

// Downloading reports whether an activation is running.
func (c *DownloadControl) Downloading() bool {
	return c.downloading.Load()
}

// Activate runs the bound handler once: Idle -> Downloading -> Idle.
func (c *DownloadControl) Activate(ctx context.Context) error {
	c.mu.Lock()
	h := c.handler
	c.mu.Unlock()

	if h == nil {
		return ErrNothingToDownload
	}

	if !c.downloading.CompareAndSwap(false, true) {
		return ErrDownloadInProgress
	}
	defer c.downloading.Store(false)

	return h(ctx)
}
