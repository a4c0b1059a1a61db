package i

import "github.com/gin-gonic/gin"

// Controller is an HTTP handler group mounted by the router.
type Controller interface {
	// RegisterPublic mounts routes that need no credentials.
	RegisterPublic(*gin.RouterGroup)

	// RegisterProtected mounts routes behind the authorization middleware.
	RegisterProtected(*gin.RouterGroup)
}
