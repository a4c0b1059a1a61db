package coverageapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/robot-coverage/service/i"
	"github.com/beka-birhanu/robot-coverage/simulator"
	"github.com/gin-gonic/gin"
)

// RoomController serves the room catalogue and simulations over catalogue rooms.
type RoomController struct {
	catalog i.RoomCatalog
	runner  i.CoverageRunner
}

// NewRoomController initializes a RoomController.
func NewRoomController(catalog i.RoomCatalog, runner i.CoverageRunner) (*RoomController, error) {
	if catalog == nil || runner == nil {
		return nil, errors.New("room controller requires a catalogue and a runner")
	}
	return &RoomController{catalog: catalog, runner: runner}, nil
}

// RegisterPublic registers public routes.
func (rc *RoomController) RegisterPublic(route *gin.RouterGroup) {
	rooms := route.Group("/rooms")
	{
		rooms.GET("", rc.list)
		rooms.GET("/:name", rc.describe)
		rooms.POST("/:name/coverage", rc.coverage)
	}
}

// RegisterProtected registers protected routes.
func (rc *RoomController) RegisterProtected(route *gin.RouterGroup) {}

// list returns the catalogue's room names.
func (rc *RoomController) list(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, RoomListResponse{Rooms: rc.catalog.Names()})
}

// describe returns the shape of one catalogue room.
func (rc *RoomController) describe(ctx *gin.Context) {
	name := ctx.Param("name")
	r, err := rc.catalog.ByName(name)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, RoomResponse{
		Name:      name,
		Width:     r.Width(),
		Height:    r.Height(),
		FreeArea:  r.TotalFreeArea(),
		Start:     r.Start(),
		Rendering: r.String(),
	})
}

// coverage runs a path over a catalogue room.
func (rc *RoomController) coverage(ctx *gin.Context) {
	r, err := rc.catalog.ByName(ctx.Param("name"))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	var request PathRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := rc.runner.Evaluate(ctx, r, simulator.ParseCommands(request.Path))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newRunResponse(run))
}
