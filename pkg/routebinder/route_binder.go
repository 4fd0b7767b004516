package routebinder

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lesismal/arpc"
)

// AppRouterBinder attaches a service's routes to whichever servers the booter
// started. BindArpc is not called when rpc is disabled.
type AppRouterBinder interface {
	BindFiber(fa *fiber.App)

	BindArpc(srv *arpc.Server)
}
