package mode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
	"github.com/AlexK-Notable/hyprbind/pkg/manager"
)

type fakeClient struct {
	connectErr error
	connects   int
	added      []*keybind.Binding
	removed    []*keybind.Binding
	ok         bool
}

func (f *fakeClient) Connect() error {
	f.connects++
	return f.connectErr
}

func (f *fakeClient) AddBinding(b *keybind.Binding) bool {
	f.added = append(f.added, b)
	return f.ok
}

func (f *fakeClient) RemoveBinding(b *keybind.Binding) bool {
	f.removed = append(f.removed, b)
	return f.ok
}

func newTestModeManager(t *testing.T, running bool) (*Manager, *fakeClient) {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "keybinds.conf")
	require.NoError(t, os.WriteFile(configPath,
		[]byte("bind = $mainMod, Q, killactive\n"), 0o644))

	cm := manager.New(manager.Options{
		ConfigPath: configPath,
		BackupDir:  filepath.Join(dir, ".backups"),
	})
	_, err := cm.Load()
	require.NoError(t, err)

	client := &fakeClient{ok: true}
	mm := NewManager(cm)
	mm.isRunning = func() bool { return running }
	mm.newClient = func() liveClient { return client }
	return mm, client
}

func TestSetModeGuarded(t *testing.T) {
	mm, _ := newTestModeManager(t, false)

	assert.False(t, mm.SetMode(Live), "live must be refused when the compositor is unreachable")
	assert.Equal(t, Safe, mm.Mode())
	assert.False(t, mm.LiveAvailable())
}

func TestSetModeLiveWhenRunning(t *testing.T) {
	mm, _ := newTestModeManager(t, true)

	assert.True(t, mm.SetMode(Live))
	assert.Equal(t, Live, mm.Mode())

	// Leaving live is unconditional.
	mm.isRunning = func() bool { return false }
	assert.True(t, mm.SetMode(Safe))
	assert.Equal(t, Safe, mm.Mode())
}

func TestApplySafeNeverTouchesClient(t *testing.T) {
	mm, client := newTestModeManager(t, false)

	b := &keybind.Binding{
		Kind: keybind.KindStandard, Modifiers: []string{"$mainMod"},
		Key: "W", Action: "togglefloating", Category: "Test",
	}
	res := mm.Apply(b, ActionAdd)
	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Zero(t, client.connects, "safe mode must not contact the socket")
}

func TestApplySafeConflict(t *testing.T) {
	mm, _ := newTestModeManager(t, false)

	res := mm.Apply(&keybind.Binding{
		Kind: keybind.KindStandard, Modifiers: []string{"$mainMod"},
		Key: "Q", Action: "fullscreen", Category: "Test",
	}, ActionAdd)

	require.NotNil(t, res)
	assert.False(t, res.Success)
	assert.Len(t, res.Conflicts, 1)
}

func TestApplyLiveLazyClientReuse(t *testing.T) {
	mm, client := newTestModeManager(t, true)
	require.True(t, mm.SetMode(Live))

	b := &keybind.Binding{Kind: keybind.KindStandard, Key: "W", Action: "togglefloating"}
	res := mm.Apply(b, ActionAdd)
	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Contains(t, res.Message, "not saved to file")

	res = mm.Apply(b, ActionRemove)
	require.NotNil(t, res)
	assert.True(t, res.Success)

	assert.Equal(t, 1, client.connects, "client connects once and is reused")
	assert.Len(t, client.added, 1)
	assert.Len(t, client.removed, 1)
}

func TestApplyLiveFailure(t *testing.T) {
	mm, client := newTestModeManager(t, true)
	client.ok = false
	require.True(t, mm.SetMode(Live))

	res := mm.Apply(&keybind.Binding{Kind: keybind.KindStandard, Key: "W", Action: "x"}, ActionAdd)
	require.NotNil(t, res)
	assert.False(t, res.Success)
}

func TestApplyInvalidAction(t *testing.T) {
	mm, _ := newTestModeManager(t, true)

	assert.Nil(t, mm.Apply(&keybind.Binding{Key: "Q"}, Action(42)))

	require.True(t, mm.SetMode(Live))
	assert.Nil(t, mm.Apply(&keybind.Binding{Key: "Q"}, Action(-1)))
}

func TestParseAction(t *testing.T) {
	add, err := ParseAction("add")
	require.NoError(t, err)
	assert.Equal(t, ActionAdd, add)

	remove, err := ParseAction("remove")
	require.NoError(t, err)
	assert.Equal(t, ActionRemove, remove)

	_, err = ParseAction("toggle")
	require.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "safe", Safe.String())
	assert.Equal(t, "live", Live.String())
}
