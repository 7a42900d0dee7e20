package services

import (
	"context"
	"errors"
	"fleetd/internal/models"
	"fleetd/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubZoneService struct {
	SaveZoneFn func(ctx context.Context, input *ZoneInput) (*models.Zone, error)
	saved      []*ZoneInput
}

func (s *stubZoneService) ListZones(context.Context) ([]models.Zone, error) { return nil, nil }

func (s *stubZoneService) SaveZone(ctx context.Context, input *ZoneInput) (*models.Zone, error) {
	s.saved = append(s.saved, input)
	if s.SaveZoneFn != nil {
		return s.SaveZoneFn(ctx, input)
	}
	return &models.Zone{ID: 1, Name: input.Name, Note: input.Note, Polygon: input.Polygon}, nil
}

func (s *stubZoneService) DeleteZone(context.Context, int64) error { return nil }

func newTestWorkflow(zones ZoneServiceInterface) DraftWorkflowInterface {
	return NewDraftWorkflow(&testutil.MockLogger{}, zones)
}

func TestDraftWorkflow_HappyPath(t *testing.T) {
	zones := &stubZoneService{}
	w := newTestWorkflow(zones)
	assert.Equal(t, StateIdle, w.State())

	require.NoError(t, w.StartDrawing(0))
	assert.Equal(t, StateDrawing, w.State())

	require.NoError(t, w.CompleteDrawing(validPolygon()))
	assert.Equal(t, StatePendingConfirm, w.State())

	zone, err := w.ConfirmDraft(context.Background(), "North Reach", "busy lane")
	require.NoError(t, err)
	assert.Equal(t, "North Reach", zone.Name)
	assert.Equal(t, StateIdle, w.State())
	assert.Empty(t, w.Vertices())

	require.Len(t, zones.saved, 1)
	assert.Equal(t, validPolygon(), zones.saved[0].Polygon)
	assert.Zero(t, zones.saved[0].ID)
}

func TestDraftWorkflow_EditKeepsZoneIdentity(t *testing.T) {
	zones := &stubZoneService{}
	w := newTestWorkflow(zones)

	require.NoError(t, w.StartDrawing(42))
	require.NoError(t, w.CompleteDrawing(validPolygon()))
	_, err := w.ConfirmDraft(context.Background(), "Reshaped", "")
	require.NoError(t, err)

	require.Len(t, zones.saved, 1)
	assert.Equal(t, int64(42), zones.saved[0].ID)
}

func TestDraftWorkflow_StartWhileActive_Rejected(t *testing.T) {
	w := newTestWorkflow(&stubZoneService{})

	require.NoError(t, w.StartDrawing(0))
	require.ErrorIs(t, w.StartDrawing(0), ErrDraftActive)
	assert.Equal(t, StateDrawing, w.State())

	require.NoError(t, w.CompleteDrawing(validPolygon()))
	require.ErrorIs(t, w.StartDrawing(0), ErrDraftActive)
	assert.Equal(t, StatePendingConfirm, w.State())
	assert.Equal(t, validPolygon(), w.Vertices())
}

func TestDraftWorkflow_CompleteRequiresDrawing(t *testing.T) {
	w := newTestWorkflow(&stubZoneService{})

	require.ErrorIs(t, w.CompleteDrawing(validPolygon()), ErrInvalidState)

	require.NoError(t, w.StartDrawing(0))
	require.NoError(t, w.CompleteDrawing(validPolygon()))
	require.ErrorIs(t, w.CompleteDrawing(validPolygon()), ErrInvalidState)
}

func TestDraftWorkflow_ConfirmRequiresPendingDraft(t *testing.T) {
	zones := &stubZoneService{}
	w := newTestWorkflow(zones)

	_, err := w.ConfirmDraft(context.Background(), "North Reach", "")
	require.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, w.StartDrawing(0))
	_, err = w.ConfirmDraft(context.Background(), "North Reach", "")
	require.ErrorIs(t, err, ErrInvalidState)
	assert.Empty(t, zones.saved)
}

func TestDraftWorkflow_ConfirmEmptyName_StaysPending(t *testing.T) {
	zones := &stubZoneService{}
	w := newTestWorkflow(zones)

	require.NoError(t, w.StartDrawing(0))
	require.NoError(t, w.CompleteDrawing(validPolygon()))

	_, err := w.ConfirmDraft(context.Background(), "", "")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StatePendingConfirm, w.State())
	assert.Empty(t, zones.saved)

	// naming it fixes the retry
	_, err = w.ConfirmDraft(context.Background(), "North Reach", "")
	require.NoError(t, err)
	assert.Equal(t, StateIdle, w.State())
}

func TestDraftWorkflow_PersistFailure_DraftSurvivesForRetry(t *testing.T) {
	fail := true
	zones := &stubZoneService{
		SaveZoneFn: func(_ context.Context, input *ZoneInput) (*models.Zone, error) {
			if fail {
				return nil, errors.New("upstream down")
			}
			return &models.Zone{ID: 9, Name: input.Name, Polygon: input.Polygon}, nil
		},
	}
	w := newTestWorkflow(zones)

	require.NoError(t, w.StartDrawing(0))
	require.NoError(t, w.CompleteDrawing(validPolygon()))

	_, err := w.ConfirmDraft(context.Background(), "North Reach", "")
	require.Error(t, err)
	assert.Equal(t, StatePendingConfirm, w.State())
	assert.Equal(t, validPolygon(), w.Vertices())

	fail = false
	zone, err := w.ConfirmDraft(context.Background(), "North Reach", "")
	require.NoError(t, err)
	assert.Equal(t, int64(9), zone.ID)
	assert.Equal(t, StateIdle, w.State())
}

func TestDraftWorkflow_CancelFromAnyState(t *testing.T) {
	w := newTestWorkflow(&stubZoneService{})

	// idle cancel is a no-op
	w.CancelDraft()
	assert.Equal(t, StateIdle, w.State())

	require.NoError(t, w.StartDrawing(0))
	w.CancelDraft()
	assert.Equal(t, StateIdle, w.State())

	require.NoError(t, w.StartDrawing(7))
	require.NoError(t, w.CompleteDrawing(validPolygon()))
	w.CancelDraft()
	assert.Equal(t, StateIdle, w.State())
	assert.Empty(t, w.Vertices())

	// cancelled edit does not leak its zone id into the next draft
	impl := w.(*DraftWorkflow)
	require.NoError(t, w.StartDrawing(0))
	assert.Zero(t, impl.editZoneID)
}

func TestDraftWorkflow_ConfirmWithoutVertices_Rejected(t *testing.T) {
	zones := &stubZoneService{}
	w := newTestWorkflow(zones)

	require.NoError(t, w.StartDrawing(0))
	require.NoError(t, w.CompleteDrawing(models.Polygon{}))

	_, err := w.ConfirmDraft(context.Background(), "North Reach", "")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StatePendingConfirm, w.State())
	assert.Empty(t, zones.saved)
}

func TestDraftWorkflow_CompleteDrawing_CopiesVertices(t *testing.T) {
	w := newTestWorkflow(&stubZoneService{})

	input := validPolygon()
	require.NoError(t, w.StartDrawing(0))
	require.NoError(t, w.CompleteDrawing(input))

	input[0].Lon = 99
	assert.Equal(t, validPolygon(), w.Vertices())
}

func TestDraftWorkflow_VerticesReturnsCopy(t *testing.T) {
	w := newTestWorkflow(&stubZoneService{})

	require.NoError(t, w.StartDrawing(0))
	require.NoError(t, w.CompleteDrawing(validPolygon()))

	got := w.Vertices()
	got[0].Lat = 99
	assert.Equal(t, validPolygon(), w.Vertices())
}
