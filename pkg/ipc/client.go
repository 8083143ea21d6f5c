// Package ipc implements the minimal request/response client for a
// running Hyprland instance's .socket.sock. Each command opens its own
// short-lived connection; there is no persistent session state.
package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
	"github.com/AlexK-Notable/hyprbind/pkg/validate"
)

// Timeout bounds every socket operation (dial, send, receive). Exceeding
// it is a connection failure, not a hang.
const Timeout = 5 * time.Second

// responseBufferSize is the single fixed-size receive for a command's
// response.
const responseBufferSize = 4096

// ErrNotRunning means no Hyprland socket could be discovered: the
// instance signature is unset or no socket file exists. Distinct from a
// connection-level failure so callers can tell "not running" apart from
// "running but unreachable".
var ErrNotRunning = errors.New("hyprland is not running or socket not found")

// ConnectionError wraps a connect, I/O, or response-decode failure
// against a discovered socket.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("hyprland IPC connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SocketPath discovers the IPC socket for the current Hyprland instance.
// It requires $HYPRLAND_INSTANCE_SIGNATURE and tries $XDG_RUNTIME_DIR
// first, then /tmp. Returns "" when no socket is found.
func SocketPath() string {
	signature := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if signature == "" {
		return ""
	}

	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		path := filepath.Join(runtimeDir, "hypr", signature, ".socket.sock")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	path := filepath.Join("/tmp", "hypr", signature, ".socket.sock")
	if _, err := os.Stat(path); err == nil {
		return path
	}

	return ""
}

// IsRunning reports whether a Hyprland instance is reachable, defined
// exactly as "socket discovery succeeds".
func IsRunning() bool {
	return SocketPath() != ""
}

// Client sends keyword commands to Hyprland. The client object is cheap
// and reusable; every Send opens and closes its own socket.
type Client struct {
	socketPath string
}

// NewClient returns an unconnected client.
func NewClient() *Client {
	return &Client{}
}

// Connect discovers the socket path and verifies it is reachable.
// Returns ErrNotRunning when no socket exists and a *ConnectionError
// when the socket exists but cannot be dialed.
func (c *Client) Connect() error {
	path := SocketPath()
	if path == "" {
		return ErrNotRunning
	}

	conn, err := net.DialTimeout("unix", path, Timeout)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	conn.Close()

	c.socketPath = path
	return nil
}

// Send transmits a raw command and returns the decoded JSON response.
// An empty response is an empty success object; non-empty bytes that
// fail to decode are a *ConnectionError naming the decode failure.
func (c *Client) Send(command string) (map[string]any, error) {
	if c.socketPath == "" {
		return nil, ErrNotRunning
	}

	conn, err := net.DialTimeout("unix", c.socketPath, Timeout)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(Timeout)); err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if _, err := conn.Write([]byte(command)); err != nil {
		return nil, &ConnectionError{Err: err}
	}

	buf := make([]byte, responseBufferSize)
	n, err := conn.Read(buf)
	if err != nil && n == 0 {
		return nil, &ConnectionError{Err: err}
	}

	response := buf[:n]
	if len(response) == 0 {
		return map[string]any{}, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(response, &decoded); err != nil {
		return nil, &ConnectionError{Err: fmt.Errorf("invalid response: %w", err)}
	}
	return decoded, nil
}

// AddBinding registers b with the running instance via
// "keyword bind,...". Sanitizer rejection short-circuits before any
// bytes are sent; IPC failures collapse to false.
func (c *Client) AddBinding(b *keybind.Binding) bool {
	if err := validate.ValidateBinding(b); err != nil {
		return false
	}

	mods := validate.Sanitize(strings.Join(b.Modifiers, " "))
	key := validate.Sanitize(b.Key)
	action := validate.Sanitize(b.Action)

	command := fmt.Sprintf("keyword bind,%s,%s,%s", mods, key, action)
	if b.Params != "" {
		command += "," + validate.Sanitize(b.Params)
	}

	_, err := c.Send(command)
	return err == nil
}

// RemoveBinding unregisters b's chord via "keyword unbind,...".
func (c *Client) RemoveBinding(b *keybind.Binding) bool {
	if err := validate.ValidateBinding(b); err != nil {
		return false
	}

	mods := validate.Sanitize(strings.Join(b.Modifiers, " "))
	key := validate.Sanitize(b.Key)

	_, err := c.Send(fmt.Sprintf("keyword unbind,%s,%s", mods, key))
	return err == nil
}
