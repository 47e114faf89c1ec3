package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/client/client"
	"github.com/dmitrijs2005/contactbook/internal/client/controller"
	"github.com/dmitrijs2005/contactbook/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startApp serves a fresh App on a loopback port and returns the API base URL.
func startApp(t *testing.T, dsn string) string {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StoreDSN = dsn
	cfg.LogLevel = "error"

	app, err := NewApp(cfg)
	require.NoError(t, err)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, l) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
		assert.NoError(t, app.repos.Close())
	})

	return "http://" + l.Addr().String() + cfg.EndpointPrefix
}

func allow(context.Context, string) bool { return true }

func TestEndToEnd_ControllerAgainstServer(t *testing.T) {
	for _, dsn := range []string{"memory", "sqlite::memory:"} {
		t.Run(dsn, func(t *testing.T) {
			base := startApp(t, dsn)
			api, err := client.NewHTTPClient(base, client.WithTimeout(5*time.Second))
			require.NoError(t, err)
			ctl := controller.New(api, controller.WithConfirmer(allow))
			t.Cleanup(ctl.Close)
			ctx := context.Background()

			require.NoError(t, ctl.Reload(ctx))
			assert.True(t, ctl.View().Empty())

			for _, kv := range [][2]string{
				{"name", "Sarah"}, {"surname", "Connor"}, {"phone", "+1-555-0000"}, {"email", "sarah@example.com"},
			} {
				require.NoError(t, ctl.UpdateField(kv[0], kv[1]))
			}
			require.NoError(t, ctl.Submit(ctx))

			v := ctl.View()
			assert.Equal(t, controller.MsgContactAdded, v.Success)
			require.Equal(t, 1, v.Count())
			id := v.Contacts[0].ID
			require.NotEmpty(t, id)

			require.NoError(t, ctl.BeginEditByID(id))
			require.NoError(t, ctl.UpdateField("phone", "555-0000"))
			require.NoError(t, ctl.Submit(ctx))
			v = ctl.View()
			assert.Equal(t, controller.MsgContactUpdated, v.Success)
			assert.Equal(t, "555-0000", v.Contacts[0].PhoneNumber)
			assert.True(t, v.Draft.IsEmpty())

			require.NoError(t, ctl.Delete(ctx, id))
			v = ctl.View()
			assert.Equal(t, controller.MsgContactDeleted, v.Success)
			assert.True(t, v.Empty())

			err = ctl.Delete(ctx, id)
			var opErr *controller.OpError
			require.ErrorAs(t, err, &opErr)
			assert.Equal(t, controller.DeleteFailed, opErr.Kind)
			assert.ErrorIs(t, err, client.ErrNotFound)
		})
	}
}

func TestEndToEnd_BackendDown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	api, err := client.NewHTTPClient("http://"+addr+"/api", client.WithTimeout(time.Second))
	require.NoError(t, err)
	ctl := controller.New(api)
	t.Cleanup(ctl.Close)

	err = ctl.Reload(context.Background())
	assert.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, controller.MsgFetchFailed, ctl.View().Error)
}

func TestNewApp_BadDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StoreDSN = "oracle://nope"

	_, err := NewApp(cfg)
	assert.ErrorContains(t, err, "db init error")
}
