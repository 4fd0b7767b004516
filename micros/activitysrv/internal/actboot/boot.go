package actboot

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lesismal/arpc"
	"github.com/lesismal/arpc/codec"
	"github.com/sweemingdow/sdact/external/econfig"
	"github.com/sweemingdow/sdact/pkg/applog"
	"github.com/sweemingdow/sdact/pkg/codec/jsonc"
	"github.com/sweemingdow/sdact/pkg/middleware/fibermw"
	"github.com/sweemingdow/sdact/pkg/routebinder"
	"golang.org/x/sync/errgroup"
)

const (
	AppName = "activitysrv"

	BootLogger   = "bootLogger"
	AccessLogger = "accessLogger"
)

var (
	ErrServerExited = errors.New("server exited unexpectedly")

	codecOnce sync.Once
)

type RouterBinderFactory func() (routebinder.AppRouterBinder, error)

type Booter struct {
	cfg    econfig.ServerCfg
	fa     *fiber.App
	rpcSrv *arpc.Server
}

func NewBooter(cfg econfig.ServerCfg, errHandler fiber.ErrorHandler) *Booter {
	applog.AddModuleLogger(BootLogger)
	applog.AddModuleLogger(AccessLogger)

	fa := fiber.New(fiber.Config{
		AppName:               AppName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          errHandler,
		JSONEncoder:           jsonc.Fmt,
		JSONDecoder:           jsonc.Parse,
	})

	fa.Use(fibermw.RequestId())
	fa.Use(fibermw.AccessLog(applog.GetLogger(AccessLogger)))
	fa.Use(recover.New())

	b := &Booter{
		cfg: cfg,
		fa:  fa,
	}

	if cfg.RpcEnabled() {
		codecOnce.Do(func() {
			codec.SetCodec(jsonc.Codec{})
		})
		b.rpcSrv = arpc.NewServer()
	}

	return b
}

func (b *Booter) App() *fiber.App {
	return b.fa
}

// RpcServer is nil when rpc is disabled.
func (b *Booter) RpcServer() *arpc.Server {
	return b.rpcSrv
}

func (b *Booter) Bind(binder routebinder.AppRouterBinder) {
	binder.BindFiber(b.fa)

	if b.rpcSrv != nil {
		binder.BindArpc(b.rpcSrv)
	}
}

func (b *Booter) StartAndServe(ctx context.Context, bf RouterBinderFactory) error {
	binder, err := bf()
	if err != nil {
		return fmt.Errorf("create router binder: %w", err)
	}

	b.Bind(binder)

	return b.Serve(ctx)
}

// Serve listens on the configured addresses and blocks until ctx is done or
// one of the servers fails. Both servers are shut down before it returns.
func (b *Booter) Serve(ctx context.Context) error {
	httpLn, err := net.Listen("tcp", b.cfg.HttpAddr)
	if err != nil {
		return fmt.Errorf("listen http %s: %w", b.cfg.HttpAddr, err)
	}

	var rpcLn net.Listener
	if b.rpcSrv != nil {
		rpcLn, err = net.Listen("tcp", b.cfg.RpcAddr)
		if err != nil {
			_ = httpLn.Close()
			return fmt.Errorf("listen rpc %s: %w", b.cfg.RpcAddr, err)
		}
	}

	return b.ServeListeners(ctx, httpLn, rpcLn)
}

// ServeListeners is Serve on listeners the caller already opened. rpcLn is
// ignored when rpc is disabled.
func (b *Booter) ServeListeners(ctx context.Context, httpLn, rpcLn net.Listener) error {
	lg := applog.GetLogger(BootLogger)

	var (
		mu       sync.Mutex
		stopping bool
		// closed once rpcSrv.Serve has returned, nil if it never ran
		rpcDone chan struct{}
	)

	isStopping := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return stopping
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lg.Info().Str("addr", httpLn.Addr().String()).Msg("http server started")

		err := b.fa.Listener(httpLn)
		if isStopping() {
			return nil
		}

		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return fmt.Errorf("http server: %w", ErrServerExited)
	})

	if b.rpcSrv != nil && rpcLn != nil {
		g.Go(func() error {
			mu.Lock()
			if stopping {
				mu.Unlock()
				return nil
			}
			done := make(chan struct{})
			rpcDone = done
			mu.Unlock()

			defer close(done)

			lg.Info().Str("addr", rpcLn.Addr().String()).Msg("rpc server started")

			err := b.rpcSrv.Serve(rpcLn)
			if isStopping() {
				return nil
			}

			if err != nil {
				return fmt.Errorf("rpc server: %w", err)
			}
			return fmt.Errorf("rpc server: %w", ErrServerExited)
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		mu.Lock()
		stopping = true
		done := rpcDone
		mu.Unlock()

		err := b.shutdown(httpLn, rpcLn, done)

		// the http server may not have reached its accept loop yet
		_ = httpLn.Close()

		return err
	})

	return g.Wait()
}

func (b *Booter) shutdown(httpLn, rpcLn net.Listener, rpcDone chan struct{}) error {
	lg := applog.GetLogger(BootLogger)

	ctx, cancel := context.WithTimeout(context.Background(), b.cfg.ShutdownTimeout)
	defer cancel()

	var errs []error

	if err := b.fa.ShutdownWithContext(ctx); err != nil {
		lg.Error().Stack().Err(err).Msg("stop http server failed")
		errs = append(errs, fmt.Errorf("stop http server: %w", err))
	} else {
		lg.Info().Str("addr", httpLn.Addr().String()).Msg("stop http server successfully")
	}

	if rpcLn == nil {
		return errors.Join(errs...)
	}

	// closing the listener ends the accept loop, after that the server can
	// safely drop its connections
	_ = rpcLn.Close()

	if rpcDone == nil {
		return errors.Join(errs...)
	}

	select {
	case <-rpcDone:
		if err := b.rpcSrv.Shutdown(ctx); err != nil {
			lg.Error().Stack().Err(err).Msg("stop rpc server failed")
			errs = append(errs, fmt.Errorf("stop rpc server: %w", err))
		} else {
			lg.Info().Str("addr", rpcLn.Addr().String()).Msg("stop rpc server successfully")
		}
	case <-ctx.Done():
		errs = append(errs, fmt.Errorf("stop rpc server: %w", ctx.Err()))
	}

	return errors.Join(errs...)
}
