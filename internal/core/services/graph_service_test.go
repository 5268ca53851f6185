package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalbrief/brief-cli/internal/core/domain"
)

func TestGraphService_Refresh(t *testing.T) {
	backend := &mockBackend{
		graphFunc: func(_ context.Context) ([]domain.GraphElement, error) {
			return []domain.GraphElement{
				{ID: "A", Label: "NDA.pdf"},
				{ID: "B", Label: "NDA.pdf"},
				{Source: "A", Target: "B"},
			}, nil
		},
	}
	svc := NewGraphService(backend)

	assert.Nil(t, svc.Model())

	model, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, model.Nodes, 2)
	assert.Len(t, model.Edges, 1)
	assert.Same(t, model, svc.Model())
}

func TestGraphService_RebuildsWholesale(t *testing.T) {
	payload := []domain.GraphElement{{ID: "A"}}
	backend := &mockBackend{
		graphFunc: func(_ context.Context) ([]domain.GraphElement, error) {
			return payload, nil
		},
	}
	svc := NewGraphService(backend)

	first, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	// Second fetch returns a disjoint payload; nothing of the old model
	// survives.
	payload = []domain.GraphElement{{ID: "X"}, {ID: "Y"}, {Source: "X", Target: "Y"}}
	second, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, second.Nodes, "A")
	assert.Len(t, second.Nodes, 2)
	assert.NotSame(t, first, second)
}

func TestGraphService_TransportFailureKeepsModel(t *testing.T) {
	failing := false
	backend := &mockBackend{
		graphFunc: func(_ context.Context) ([]domain.GraphElement, error) {
			if failing {
				return nil, &domain.TransportError{Status: 502, Message: "bad gateway"}
			}
			return []domain.GraphElement{{ID: "A"}}, nil
		},
	}
	svc := NewGraphService(backend)

	model, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	failing = true
	_, err = svc.Refresh(context.Background())
	require.Error(t, err)

	var transportErr *domain.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Same(t, model, svc.Model())
}

func TestGraphService_MalformedPayloadKeepsModel(t *testing.T) {
	payload := []domain.GraphElement{{ID: "A"}}
	backend := &mockBackend{
		graphFunc: func(_ context.Context) ([]domain.GraphElement, error) {
			return payload, nil
		},
	}
	svc := NewGraphService(backend)

	model, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	// Dangling edge: assembly fails whole, no partial graph replaces the
	// held model.
	payload = []domain.GraphElement{{ID: "A"}, {Source: "A", Target: "B"}}
	_, err = svc.Refresh(context.Background())

	var malformed *domain.MalformedGraphError
	require.ErrorAs(t, err, &malformed)
	assert.Same(t, model, svc.Model())
}
