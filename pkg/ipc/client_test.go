package ipc

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
)

// startFakeHyprland listens on a socket laid out like a real instance
// and answers every connection with response.
func startFakeHyprland(t *testing.T, response string) (string, *commandLog) {
	t.Helper()

	runtimeDir := t.TempDir()
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "testsig")
	t.Setenv("XDG_RUNTIME_DIR", runtimeDir)

	socketDir := filepath.Join(runtimeDir, "hypr", "testsig")
	require.NoError(t, os.MkdirAll(socketDir, 0o755))
	socketPath := filepath.Join(socketDir, ".socket.sock")

	listener, err := net.Listen("unix", socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	log := &commandLog{}
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				buf := make([]byte, 4096)
				n, _ := c.Read(buf)
				if n > 0 {
					log.add(string(buf[:n]))
				}
				c.Write([]byte(response))
			}(conn)
		}
	}()

	return socketPath, log
}

type commandLog struct {
	commands []string
}

func (l *commandLog) add(cmd string) { l.commands = append(l.commands, cmd) }
func (l *commandLog) last() string {
	if len(l.commands) == 0 {
		return ""
	}
	return l.commands[len(l.commands)-1]
}

func TestSocketPathDiscovery(t *testing.T) {
	t.Run("no signature", func(t *testing.T) {
		t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")
		assert.Empty(t, SocketPath())
		assert.False(t, IsRunning())
	})

	t.Run("signature without socket", func(t *testing.T) {
		t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "ghost")
		t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
		assert.Empty(t, SocketPath())
	})

	t.Run("runtime dir socket", func(t *testing.T) {
		path, _ := startFakeHyprland(t, "")
		assert.Equal(t, path, SocketPath())
		assert.True(t, IsRunning())
	})
}

func TestConnectNotRunning(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	c := NewClient()
	err := c.Connect()
	require.ErrorIs(t, err, ErrNotRunning)
}

func TestSendWithoutConnect(t *testing.T) {
	c := NewClient()
	_, err := c.Send("keyword bind,SUPER,Q,killactive")
	require.ErrorIs(t, err, ErrNotRunning)
}

func TestSendJSONResponse(t *testing.T) {
	startFakeHyprland(t, `{"ok": true}`)

	c := NewClient()
	require.NoError(t, c.Connect())

	resp, err := c.Send("keyword bind,SUPER,Q,killactive")
	require.NoError(t, err)
	assert.Equal(t, true, resp["ok"])
}

func TestSendEmptyResponse(t *testing.T) {
	startFakeHyprland(t, "")

	c := NewClient()
	require.NoError(t, c.Connect())

	resp, err := c.Send("keyword unbind,SUPER,Q")
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestSendMalformedResponse(t *testing.T) {
	startFakeHyprland(t, "not json at all")

	c := NewClient()
	require.NoError(t, c.Connect())

	_, err := c.Send("keyword bind,SUPER,Q,killactive")
	require.Error(t, err)

	var connErr *ConnectionError
	require.True(t, errors.As(err, &connErr))
	assert.Contains(t, connErr.Error(), "invalid response")
}

func TestAddBindingCommandGrammar(t *testing.T) {
	_, log := startFakeHyprland(t, "ok")

	c := NewClient()
	require.NoError(t, c.Connect())

	// "ok" is not JSON, so Send reports a decode failure and the add
	// collapses to false - but the command must still have gone out in
	// the documented grammar.
	b := &keybind.Binding{
		Kind:      keybind.KindStandard,
		Modifiers: []string{"$mainMod", "SHIFT"},
		Key:       "Q",
		Action:    "exec",
		Params:    "kitty --single-instance",
	}
	c.AddBinding(b)
	assert.Equal(t, "keyword bind,$mainMod SHIFT,Q,exec,kitty --single-instance", log.last())

	c.RemoveBinding(b)
	assert.Equal(t, "keyword unbind,$mainMod SHIFT,Q", log.last())
}

func TestAddBindingParamsOmittedWhenEmpty(t *testing.T) {
	_, log := startFakeHyprland(t, `{}`)

	c := NewClient()
	require.NoError(t, c.Connect())

	ok := c.AddBinding(&keybind.Binding{
		Kind: keybind.KindStandard, Modifiers: []string{"SUPER"}, Key: "Q", Action: "killactive",
	})
	assert.True(t, ok)
	assert.Equal(t, "keyword bind,SUPER,Q,killactive", log.last())
}

func TestAddBindingSanitizerShortCircuits(t *testing.T) {
	_, log := startFakeHyprland(t, `{}`)

	c := NewClient()
	require.NoError(t, c.Connect())

	ok := c.AddBinding(&keybind.Binding{
		Kind: keybind.KindStandard, Key: "Q\x00", Action: "killactive",
	})
	assert.False(t, ok)
	// Rejection happens before any bytes are sent.
	assert.Empty(t, log.last())
}

func TestAddBindingCollapsesIPCFailure(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	c := NewClient()
	ok := c.AddBinding(&keybind.Binding{
		Kind: keybind.KindStandard, Key: "Q", Action: "killactive",
	})
	assert.False(t, ok)
}
