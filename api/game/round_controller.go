package gameapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	service_i "github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Defaults fill in the parts of a round request left at zero.
type Defaults struct {
	Cols          int
	Rows          int
	WallThickness int
}

// RoundController manages maze rounds.
type RoundController struct {
	store        i.RoundStore
	newGenerator func() *maze.Generator
	defaults     Defaults
	logger       service_i.Logger
}

// NewRoundController initializes a RoundController. Every round gets its own generator from newGenerator.
func NewRoundController(store i.RoundStore, newGenerator func() *maze.Generator, defaults Defaults, logger service_i.Logger) (*RoundController, error) {
	if store == nil || logger == nil {
		return nil, errors.New("round controller needs a store and a logger")
	}
	if newGenerator == nil {
		newGenerator = func() *maze.Generator { return maze.NewGenerator(nil) }
	}
	return &RoundController{
		store:        store,
		newGenerator: newGenerator,
		defaults:     defaults,
		logger:       logger,
	}, nil
}

// RegisterPublic registers public routes.
func (rc *RoundController) RegisterPublic(route *gin.RouterGroup) {
	rounds := route.Group("/rounds")
	{
		rounds.POST("", rc.create)
		rounds.GET("/:ID", rc.info)
		rounds.DELETE("/:ID", rc.remove)
		rounds.POST("/:ID/scale", rc.scale)
		rounds.POST("/:ID/moves", rc.move)
		rounds.POST("/:ID/restart", rc.restart)
		rounds.POST("/:ID/finish", rc.finish)
		rounds.POST("/:ID/ack", rc.acknowledge)
		rounds.GET("/:ID/drag", rc.drag)
	}
}

// scale computes the placement of a background image behind a round's maze.
func (rc *RoundController) scale(ctx *gin.Context) {
	round, ok := rc.roundFromParam(ctx)
	if !ok {
		return
	}

	var request ScaleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	round.Lock()
	defer round.Unlock()
	result := round.Scale(request.ContainerHeight, request.ContainerWidth, request.ContentHeight, request.ContentWidth)
	ctx.JSON(http.StatusOK, result)
}

// create starts a new round on a fresh maze.
func (rc *RoundController) create(ctx *gin.Context) {
	var request CreateRoundRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	round, err := service.NewRound(uuid.New(), rc.newGenerator(), rc.params(request), rc.logger)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDimensions) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rc.logger.Error(fmt.Sprintf("Creating round: %v", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating round"})
		return
	}

	if err := rc.store.Save(round); err != nil {
		rc.logger.Error(fmt.Sprintf("Saving round: %v", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating round"})
		return
	}

	round.Lock()
	response := newRoundResponse(round)
	round.Unlock()

	rc.logger.Info(fmt.Sprintf("Round %s created, %d live", round.ID, rc.store.Count()))
	ctx.JSON(http.StatusCreated, response)
}

func (rc *RoundController) params(request CreateRoundRequest) service.GenerateParams {
	p := service.GenerateParams{
		Cols:             request.Cols,
		Rows:             request.Rows,
		PlaygroundWidth:  request.PlaygroundWidth,
		PlaygroundHeight: request.PlaygroundHeight,
		WallThickness:    request.WallThickness,
	}
	if p.Cols == 0 {
		p.Cols = rc.defaults.Cols
	}
	if p.Rows == 0 {
		p.Rows = rc.defaults.Rows
	}
	if p.WallThickness == 0 {
		p.WallThickness = rc.defaults.WallThickness
	}
	return p
}

// info returns the round state and an ASCII view of its maze.
func (rc *RoundController) info(ctx *gin.Context) {
	round, ok := rc.roundFromParam(ctx)
	if !ok {
		return
	}

	round.Lock()
	defer round.Unlock()
	ctx.JSON(http.StatusOK, &StateResponse{
		ID:    round.ID.String(),
		State: round.State(),
		Maze:  round.String(),
	})
}

// remove discards a round.
func (rc *RoundController) remove(ctx *gin.Context) {
	round, ok := rc.roundFromParam(ctx)
	if !ok {
		return
	}

	if err := rc.store.Delete(round.ID); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	rc.logger.Info(fmt.Sprintf("Round %s removed, %d live", round.ID, rc.store.Count()))
	ctx.Status(http.StatusNoContent)
}

// move evaluates a player position.
func (rc *RoundController) move(ctx *gin.Context) {
	round, ok := rc.roundFromParam(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	round.Lock()
	defer round.Unlock()
	signal := round.Move(request.Player)
	ctx.JSON(http.StatusOK, &MoveResponse{
		Signal: signal,
		State:  round.State(),
		Player: round.Player(),
	})
}

// restart unlocks the round on the same maze.
func (rc *RoundController) restart(ctx *gin.Context) {
	rc.transition(ctx, func(r *service.Round) error {
		r.Restart()
		return nil
	})
}

// finish locks the round.
func (rc *RoundController) finish(ctx *gin.Context) {
	rc.transition(ctx, func(r *service.Round) error {
		r.Finish()
		return nil
	})
}

// acknowledge closes the outcome of a locked round.
func (rc *RoundController) acknowledge(ctx *gin.Context) {
	rc.transition(ctx, (*service.Round).Acknowledge)
}

func (rc *RoundController) transition(ctx *gin.Context, apply func(*service.Round) error) {
	round, ok := rc.roundFromParam(ctx)
	if !ok {
		return
	}

	round.Lock()
	defer round.Unlock()
	if err := apply(round); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newRoundResponse(round))
}

// roundFromParam resolves the round named by the ID path parameter, answering the request on failure.
func (rc *RoundController) roundFromParam(ctx *gin.Context) (*service.Round, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid round id"})
		return nil, false
	}

	round, err := rc.store.ByID(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "round not found"})
		return nil, false
	}
	return round, true
}
