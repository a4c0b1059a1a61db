package coverageapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/robot-coverage/room"
	"github.com/beka-birhanu/robot-coverage/service"
	"github.com/beka-birhanu/robot-coverage/service/i"
	"github.com/beka-birhanu/robot-coverage/simulator"
	"github.com/gin-gonic/gin"
)

// CoverageController serves simulations over rooms supplied in the request body.
type CoverageController struct {
	runner i.CoverageRunner
}

// NewCoverageController initializes a CoverageController.
func NewCoverageController(runner i.CoverageRunner) (*CoverageController, error) {
	if runner == nil {
		return nil, errors.New("coverage controller requires a runner")
	}
	return &CoverageController{runner: runner}, nil
}

// RegisterPublic registers public routes.
func (cc *CoverageController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/coverage", cc.coverage)
}

// RegisterProtected registers protected routes.
func (cc *CoverageController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/coverage/batch", cc.batch)
}

// coverage runs one path over the room in the request.
func (cc *CoverageController) coverage(ctx *gin.Context) {
	var request CoverageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := room.New(request.Layout, request.Start)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	run, err := cc.runner.Evaluate(ctx, r, simulator.ParseCommands(request.Path))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newRunResponse(run))
}

// batch runs several paths over the room in the request.
func (cc *CoverageController) batch(ctx *gin.Context) {
	var request BatchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := room.New(request.Layout, request.Start)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	paths := make([][]simulator.Command, len(request.Paths))
	for idx, tokens := range request.Paths {
		paths[idx] = simulator.ParseCommands(tokens)
	}

	runs, err := cc.runner.EvaluateBatch(ctx, r, paths)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	response := BatchResponse{Runs: make([]RunResponse, len(runs))}
	for idx, run := range runs {
		response.Runs[idx] = newRunResponse(run)
	}
	ctx.JSON(http.StatusOK, response)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrRaggedLayout),
		errors.Is(err, room.ErrInvalidCoordinate),
		errors.Is(err, room.ErrCoordinateRange),
		errors.Is(err, simulator.ErrMissingStart),
		errors.Is(err, simulator.ErrNilPath),
		errors.Is(err, service.ErrPathTooLong),
		errors.Is(err, service.ErrEmptyBatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
