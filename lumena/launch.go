package lumena

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/cenkalti/backoff"
)

// EnvExecutable is the environment variable consulted first when
// looking for the Lumena executable.
const EnvExecutable = "LUMENA_EXE"

// ErrExecutableNotFound is returned by FindExecutable when no Lumena
// binary can be located.
var ErrExecutableNotFound = errors.New("lumena executable not found; set " + EnvExecutable)

// installPaths are conventional install locations probed after the
// environment and PATH.
var installPaths = map[string][]string{
	"windows": {
		`C:\Program Files\Lumena\lumena.exe`,
	},
	"darwin": {
		"/Applications/Lumena.app/Contents/MacOS/lumena",
	},
	"linux": {
		"/opt/lumena/bin/lumena",
		"/usr/local/bin/lumena",
	},
}

// FindExecutable locates the Lumena binary.  It checks EnvExecutable,
// then PATH, then conventional install locations for the OS.
func FindExecutable() (string, error) {
	if p := os.Getenv(EnvExecutable); p != "" {
		return p, nil
	}
	if p, err := exec.LookPath("lumena"); err == nil {
		return p, nil
	}
	for _, p := range installPaths[runtime.GOOS] {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", ErrExecutableNotFound
}

// LaunchOptions controls Launch.  The zero value launches the binary
// found by FindExecutable as application 0 on DefaultAddress, waiting
// up to 30 seconds for it to come up.
type LaunchOptions struct {
	// Path to the executable.  Empty means FindExecutable.
	Path string

	// ID the new application registers under.
	ID int

	// Addr the host RC server listens on.  Empty means
	// DefaultAddress.
	Addr string

	// Timeout bounds the wait for the host to accept connections.
	// Zero means 30 seconds.
	Timeout time.Duration
}

// Launch starts a Lumena process and attaches to it.  The process is
// not killed when the client closes; use Application.Quit for that.
func Launch(opts LaunchOptions) (*Client, *Application, error) {
	path := opts.Path
	if path == "" {
		var err error
		path, err = FindExecutable()
		if err != nil {
			return nil, nil, err
		}
	}
	addr := opts.Addr
	if addr == "" {
		addr = DefaultAddress
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	cmd := exec.Command(path,
		fmt.Sprintf("-id=%d", opts.ID),
		fmt.Sprintf("-rc=%s", addr))
	if err := cmd.Start(); err != nil {
		return nil, nil, err
	}
	// reap the child when it eventually exits
	go cmd.Wait()

	var (
		c   *Client
		app *Application
	)
	op := func() error {
		var err error
		if c == nil {
			c, err = Dial(addr)
			if err != nil {
				return err
			}
		}
		app, err = c.GetApplication(opts.ID)
		return err
	}
	err := backoff.Retry(op, &backoff.ExponentialBackOff{
		InitialInterval:     100 * time.Millisecond,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         time.Second,
		MaxElapsedTime:      timeout,
		Clock:               backoff.SystemClock,
	})
	if err != nil {
		if c != nil {
			c.Close()
		}
		return nil, nil, fmt.Errorf("connection timeout to %s", addr)
	}
	return c, app, nil
}
