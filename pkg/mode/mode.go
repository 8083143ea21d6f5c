// Package mode implements the Safe/Live state machine that selects how
// a binding edit is applied: written to the config file, or pushed to a
// running Hyprland instance over IPC without persistence.
package mode

import (
	"fmt"

	"github.com/AlexK-Notable/hyprbind/pkg/ipc"
	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
	"github.com/AlexK-Notable/hyprbind/pkg/manager"
)

// Mode is the operating mode for binding edits.
type Mode int

const (
	// Safe applies edits to the config file only.
	Safe Mode = iota
	// Live pushes edits to the running compositor; nothing is persisted.
	Live
)

func (m Mode) String() string {
	switch m {
	case Safe:
		return "safe"
	case Live:
		return "live"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Action is what to do with a binding. Using a closed enum keeps every
// internal call site exhaustive; only the external boundary decodes
// strings via ParseAction.
type Action int

const (
	ActionAdd Action = iota
	ActionRemove
)

// ParseAction decodes an action label from an external boundary (CLI
// flag, UI event).
func ParseAction(s string) (Action, error) {
	switch s {
	case "add":
		return ActionAdd, nil
	case "remove":
		return ActionRemove, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// liveClient is the slice of ipc.Client the manager depends on,
// narrowed for testing.
type liveClient interface {
	Connect() error
	AddBinding(b *keybind.Binding) bool
	RemoveBinding(b *keybind.Binding) bool
}

// Manager holds the current mode and dispatches binding edits
// accordingly. The live client is created lazily on first use and
// reused afterwards; each command still opens its own socket internally.
type Manager struct {
	configManager *manager.Manager
	current       Mode
	client        liveClient

	// overridable in tests
	isRunning func() bool
	newClient func() liveClient
}

// NewManager returns a Manager starting in Safe mode.
func NewManager(cm *manager.Manager) *Manager {
	return &Manager{
		configManager: cm,
		current:       Safe,
		isRunning:     ipc.IsRunning,
		newClient:     func() liveClient { return ipc.NewClient() },
	}
}

// Mode returns the current operating mode.
func (m *Manager) Mode() Mode { return m.current }

// SetMode switches modes. Entering Live is guarded: it succeeds only
// when the compositor is reachable, otherwise the mode stays Safe and
// false is returned. Leaving Live is unconditional.
func (m *Manager) SetMode(mode Mode) bool {
	if mode == Live && !m.isRunning() {
		return false
	}
	m.current = mode
	return true
}

// LiveAvailable reports whether Live mode could be entered right now.
func (m *Manager) LiveAvailable() bool {
	return m.isRunning()
}

// Apply dispatches a binding edit according to the current mode. An
// Action value outside the enum yields a nil result.
func (m *Manager) Apply(b *keybind.Binding, action Action) *keybind.OperationResult {
	switch action {
	case ActionAdd, ActionRemove:
	default:
		return nil
	}

	if m.current == Safe {
		return m.applySafe(b, action)
	}
	return m.applyLive(b, action)
}

func (m *Manager) applySafe(b *keybind.Binding, action Action) *keybind.OperationResult {
	switch action {
	case ActionAdd:
		return m.configManager.AddBinding(b)
	default:
		return m.configManager.RemoveBinding(b)
	}
}

func (m *Manager) applyLive(b *keybind.Binding, action Action) *keybind.OperationResult {
	if m.client == nil {
		client := m.newClient()
		if err := client.Connect(); err != nil {
			return keybind.Fail(fmt.Sprintf("failed to connect to Hyprland: %v", err))
		}
		m.client = client
	}

	var ok bool
	var verb string
	switch action {
	case ActionAdd:
		ok = m.client.AddBinding(b)
		verb = "added"
	default:
		ok = m.client.RemoveBinding(b)
		verb = "removed"
	}

	if !ok {
		return keybind.Fail("IPC command failed")
	}
	return keybind.OK(fmt.Sprintf("binding %s via IPC (not saved to file)", verb))
}
