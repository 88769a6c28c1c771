package netsvc

import (
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/raven-os/albinos/internal/configstore"
	"github.com/raven-os/albinos/internal/wire"
)

func startTestServer(t *testing.T) (string, context.CancelFunc) {
	t.Helper()

	dir := t.TempDir()
	sockPath := filepath.Join(dir, "albinos.sock")

	store, err := configstore.Open(filepath.Join(dir, "albinos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	listener, err := Listen(sockPath)
	require.NoError(t, err)

	srv := New(listener, store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		listener.Close()
		<-done
	})

	return sockPath, cancel
}

func dial(t *testing.T, sockPath string) net.Conn {
	t.Helper()
	conn, err := net.Dial("unix", sockPath)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn net.Conn, req wire.Request) wire.Response {
	t.Helper()
	require.NoError(t, json.NewEncoder(conn).Encode(req))

	var resp wire.Response
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	require.NoError(t, json.NewDecoder(conn).Decode(&resp))
	return resp
}

func TestServer_CreateLoadUpdateGet(t *testing.T) {
	sockPath, _ := startTestServer(t)
	conn := dial(t, sockPath)

	created := roundTrip(t, conn, wire.Request{RequestName: wire.ConfigCreate, ConfigName: "demo"})
	require.Equal(t, wire.Success, created.RequestState)
	require.NotEmpty(t, created.ConfigKey)

	loaded := roundTrip(t, conn, wire.Request{RequestName: wire.ConfigLoad, ConfigKey: created.ConfigKey})
	require.Equal(t, wire.Success, loaded.RequestState)
	require.NotZero(t, loaded.ConfigID)

	updated := roundTrip(t, conn, wire.Request{
		RequestName: wire.SettingUpdate,
		ConfigID:    loaded.ConfigID,
		SettingsToUpdate: map[string]string{
			"color": "blue",
		},
	})
	require.Equal(t, wire.Success, updated.RequestState)

	got := roundTrip(t, conn, wire.Request{RequestName: wire.SettingGet, ConfigID: loaded.ConfigID, SettingName: "color"})
	require.Equal(t, wire.Success, got.RequestState)
	require.Equal(t, "blue", got.SettingValue)
}

func TestServer_MalformedRequestKeepsConnectionOpen(t *testing.T) {
	sockPath, _ := startTestServer(t)
	conn := dial(t, sockPath)

	_, err := conn.Write([]byte("{not json"))
	require.NoError(t, err)
	_, err = conn.Write([]byte("}"))
	require.NoError(t, err)

	var resp wire.Response
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	require.NoError(t, json.NewDecoder(conn).Decode(&resp))
	require.Equal(t, wire.InternalError, resp.RequestState)

	// the connection must still be usable afterwards
	created := roundTrip(t, conn, wire.Request{RequestName: wire.ConfigCreate, ConfigName: "still-alive"})
	require.Equal(t, wire.Success, created.RequestState)
}

func TestServer_SubscriptionDeliversEventOnUpdate(t *testing.T) {
	sockPath, _ := startTestServer(t)
	conn := dial(t, sockPath)

	created := roundTrip(t, conn, wire.Request{RequestName: wire.ConfigCreate, ConfigName: "watched"})
	loaded := roundTrip(t, conn, wire.Request{RequestName: wire.ConfigLoad, ConfigKey: created.ConfigKey})

	sub := roundTrip(t, conn, wire.Request{RequestName: wire.SubscribeSetting, ConfigID: loaded.ConfigID, SettingName: "level"})
	require.Equal(t, wire.Success, sub.RequestState)

	require.NoError(t, json.NewEncoder(conn).Encode(wire.Request{
		RequestName: wire.SettingUpdate,
		ConfigID:    loaded.ConfigID,
		SettingsToUpdate: map[string]string{
			"level": "9",
		},
	}))

	dec := json.NewDecoder(conn)
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var updateResp wire.Response
	require.NoError(t, dec.Decode(&updateResp))
	require.Equal(t, wire.Success, updateResp.RequestState)

	var event wire.SubscriptionEvent
	require.NoError(t, dec.Decode(&event))
	require.Equal(t, loaded.ConfigID, event.ConfigID)
	require.Equal(t, "level", event.SettingName)
}
