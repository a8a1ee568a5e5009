package mcpserve

import (
	"context"
	"os"
	"time"

	"devinabox/internal/logging"
)

// watchInterval is how often the watchdog re-checks the parent PID.
const watchInterval = 2 * time.Second

// WatchParent monitors for parent process death in a background
// goroutine. When the parent PID changes (the MCP client exited or
// restarted), it calls cancelFn so the stdio server shuts down instead
// of lingering as an orphan.
//
// IMPORTANT: this must NOT read from stdin. The SDK's StdioTransport
// owns stdin exclusively; stealing bytes there corrupts the JSON-RPC
// stream.
//
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	ppid := os.Getppid()
	log := logging.New("mcp")
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(watchInterval):
				if os.Getppid() != ppid {
					log.Warn("parent process died, shutting down", "was_pid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
