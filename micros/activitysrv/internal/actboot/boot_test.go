package actboot_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lesismal/arpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweemingdow/sdact/external/econfig"
	"github.com/sweemingdow/sdact/external/emodel/actmodel"
	"github.com/sweemingdow/sdact/external/erpc/rpcact"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/actboot"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/handlers/hhttp"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/handlers/hrpc"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/routers"
	"github.com/sweemingdow/sdact/micros/activitysrv/internal/services/actsrv"
	"github.com/sweemingdow/sdact/pkg/routebinder"
	"github.com/sweemingdow/sdact/pkg/wrapper"
)

func testServerCfg(rpc bool) econfig.ServerCfg {
	cfg := econfig.DefaultServerCfg()
	cfg.HttpAddr = "127.0.0.1:0"
	if rpc {
		cfg.RpcAddr = "127.0.0.1:0"
	}
	cfg.ShutdownTimeout = 2 * time.Second
	return cfg
}

func newActivityBooter(rpc bool) *actboot.Booter {
	b := actboot.NewBooter(testServerCfg(rpc), actboot.HttpErrorHandler)

	as := actsrv.NewActivityService()
	b.Bind(routers.NewActivityServerRouteBinder(
		hrpc.NewActivityHandler(as),
		hhttp.NewActivityHandler(as),
	))

	return b
}

type panicBinder struct{}

func (panicBinder) BindFiber(fa *fiber.App) {
	fa.Get("/boom", func(_ *fiber.Ctx) error {
		panic("boom")
	})
}

func (panicBinder) BindArpc(_ *arpc.Server) {}

func TestBooterRoutes(t *testing.T) {
	b := newActivityBooter(false)
	b.Bind(panicBinder{})
	fa := b.App()

	t.Run("process", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/activity/process", strings.NewReader(`{"type":"click","userId":42}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := fa.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, actmodel.ProcessedMsg, string(body))

		_, err = uuid.Parse(resp.Header.Get(fiber.HeaderXRequestID))
		assert.NoError(t, err)
	})

	t.Run("unknown path", func(t *testing.T) {
		resp, err := fa.Test(httptest.NewRequest(http.MethodPost, "/api/activity/other", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var hr wrapper.HttpRespWrapper[any]
		require.NoError(t, wrapper.ParseResp(body, &hr))
		assert.True(t, hr.IsGeneralErr())
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/activity/process", strings.NewReader(`{"type":`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := fa.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("recovered panic", func(t *testing.T) {
		resp, err := fa.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestBooterRpcDisabledByDefault(t *testing.T) {
	b := newActivityBooter(false)
	assert.Nil(t, b.RpcServer())
}

func listen(t *testing.T) net.Listener {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func TestBooterServeHttpAndRpc(t *testing.T) {
	b := newActivityBooter(true)
	require.NotNil(t, b.RpcServer())

	httpLn, rpcLn := listen(t), listen(t)
	httpAddr, rpcAddr := httpLn.Addr().String(), rpcLn.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- b.ServeListeners(ctx, httpLn, rpcLn)
	}()

	hc := &http.Client{Timeout: 2 * time.Second}
	var (
		resp *http.Response
		err  error
	)
	require.Eventually(t, func() bool {
		resp, err = hc.Post("http://"+httpAddr+"/api/activity/process", fiber.MIMEApplicationJSON, strings.NewReader(`{}`))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, actmodel.ProcessedMsg, string(body))

	cli, err := arpc.NewClient(func() (net.Conn, error) {
		return net.DialTimeout("tcp", rpcAddr, time.Second)
	})
	require.NoError(t, err)

	provider := rpcact.NewActivityRpcProvider(cli)
	rpcResp, err := provider.ProcessActivity(wrapper.CreateRpcReq(uuid.NewString(), actmodel.ActivityPayload{"type": "click", "userId": 42}))
	require.NoError(t, err)

	result, err := rpcResp.OkOrErr()
	require.NoError(t, err)
	assert.Equal(t, actmodel.Processed(), result)

	cli.Stop()
	hc.CloseIdleConnections()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("booter did not stop")
	}
}

func TestBooterStopsBeforeFirstRequest(t *testing.T) {
	b := newActivityBooter(true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	httpLn, rpcLn := listen(t), listen(t)

	done := make(chan error, 1)
	go func() {
		done <- b.ServeListeners(ctx, httpLn, rpcLn)
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("booter did not stop")
	}
}

func TestBooterListenFailure(t *testing.T) {
	occupied := listen(t)
	defer occupied.Close()

	cfg := testServerCfg(false)
	cfg.HttpAddr = occupied.Addr().String()

	b := actboot.NewBooter(cfg, actboot.HttpErrorHandler)
	err := b.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen http")
}

func TestStartAndServeBinderFailure(t *testing.T) {
	b := actboot.NewBooter(testServerCfg(false), actboot.HttpErrorHandler)

	boom := errors.New("no binder")
	err := b.StartAndServe(context.Background(), func() (_ routebinder.AppRouterBinder, _ error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}
