package services

import (
	"context"
	"fleetd/internal/models"
	"fleetd/internal/providers"
	"fmt"
	"sync"
)

type DraftState int

const (
	StateIdle DraftState = iota
	StateDrawing
	StatePendingConfirm
)

func (s DraftState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StatePendingConfirm:
		return "pending_confirm"
	default:
		return "unknown"
	}
}

type DraftWorkflowInterface interface {
	StartDrawing(editZoneID int64) error
	CompleteDrawing(vertices models.Polygon) error
	ConfirmDraft(ctx context.Context, name, note string) (*models.Zone, error)
	CancelDraft()
	State() DraftState
	Vertices() models.Polygon
}

// DraftWorkflow coordinates the idle -> drawing -> pending-confirm cycle
// for polygon drafts. At most one draft exists at a time; starting a new
// drawing while another draft is active is rejected (never implicitly
// cancelled), so an accidental double-click cannot throw work away.
type DraftWorkflow struct {
	logger providers.Logger
	zones  ZoneServiceInterface

	mu         sync.Mutex
	state      DraftState
	vertices   models.Polygon
	editZoneID int64
}

func NewDraftWorkflow(logger providers.Logger, zones ZoneServiceInterface) DraftWorkflowInterface {
	return &DraftWorkflow{
		logger: logger,
		zones:  zones,
	}
}

// StartDrawing begins a new draft. A nonzero editZoneID reshapes an
// existing zone, keeping its identity on confirm.
func (w *DraftWorkflow) StartDrawing(editZoneID int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateIdle {
		return fmt.Errorf("%w (state %s)", ErrDraftActive, w.state)
	}

	w.vertices = nil
	w.editZoneID = editZoneID
	w.state = StateDrawing
	return nil
}

// CompleteDrawing stores the drawn vertices verbatim and moves the draft to
// pending confirmation. Vertex-count validation belongs to the persistence
// step, not here.
func (w *DraftWorkflow) CompleteDrawing(vertices models.Polygon) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateDrawing {
		return fmt.Errorf("%w: complete requires an active drawing (state %s)", ErrInvalidState, w.state)
	}

	w.vertices = make(models.Polygon, len(vertices))
	copy(w.vertices, vertices)
	w.state = StatePendingConfirm
	return nil
}

// ConfirmDraft persists the pending draft as a zone. On any failure the
// draft stays pending so the user can retry without redrawing.
func (w *DraftWorkflow) ConfirmDraft(ctx context.Context, name, note string) (*models.Zone, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StatePendingConfirm {
		return nil, fmt.Errorf("%w: confirm requires a pending draft (state %s)", ErrInvalidState, w.state)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: zone name is required", ErrValidation)
	}
	if len(w.vertices) == 0 {
		return nil, fmt.Errorf("%w: draft has no vertices", ErrValidation)
	}

	input := &ZoneInput{
		ID:      w.editZoneID,
		Name:    name,
		Note:    note,
		Polygon: w.vertices,
	}
	zone, err := w.zones.SaveZone(ctx, input)
	if err != nil {
		return nil, err
	}

	w.logger.Infof(providers.TypeApp, "Draft confirmed as zone %q (id=%d)", zone.Name, zone.ID)
	w.reset()
	return zone, nil
}

// CancelDraft discards any in-progress or pending draft. Calling it from
// idle is a no-op.
func (w *DraftWorkflow) CancelDraft() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

func (w *DraftWorkflow) State() DraftState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *DraftWorkflow) Vertices() models.Polygon {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(models.Polygon, len(w.vertices))
	copy(out, w.vertices)
	return out
}

func (w *DraftWorkflow) reset() {
	w.state = StateIdle
	w.vertices = nil
	w.editZoneID = 0
}
