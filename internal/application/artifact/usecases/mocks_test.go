package usecases

import (
	"bytes"
	"context"
	"io"
	"time"

	"dropcircle/internal/domain/artifact"
	"dropcircle/internal/domain/circle"
)

type mockArtifactRepository struct {
	SaveFunc             func(ctx context.Context, a *artifact.Artifact) error
	ListByCircleIDFunc   func(ctx context.Context, circleID uint) ([]*artifact.Artifact, error)
	CountByCircleIDsFunc func(ctx context.Context, circleIDs []uint) (map[uint]int64, error)
}

func (m *mockArtifactRepository) Save(ctx context.Context, a *artifact.Artifact) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockArtifactRepository) ListByCircleID(ctx context.Context, circleID uint) ([]*artifact.Artifact, error) {
	if m.ListByCircleIDFunc != nil {
		return m.ListByCircleIDFunc(ctx, circleID)
	}
	return nil, nil
}

func (m *mockArtifactRepository) CountByCircleIDs(ctx context.Context, circleIDs []uint) (map[uint]int64, error) {
	if m.CountByCircleIDsFunc != nil {
		return m.CountByCircleIDsFunc(ctx, circleIDs)
	}
	return map[uint]int64{}, nil
}

type mockCircleRepository struct {
	FindBySIDFunc func(ctx context.Context, sid string) (*circle.Circle, error)
}

func (m *mockCircleRepository) Save(ctx context.Context, c *circle.Circle) error   { return nil }
func (m *mockCircleRepository) Update(ctx context.Context, c *circle.Circle) error { return nil }

func (m *mockCircleRepository) FindBySID(ctx context.Context, sid string) (*circle.Circle, error) {
	if m.FindBySIDFunc != nil {
		return m.FindBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockCircleRepository) ListByOwner(ctx context.Context, ownerAccountID string) ([]*circle.Circle, error) {
	return nil, nil
}

func (m *mockCircleRepository) CountByOwner(ctx context.Context, ownerAccountID string) (int64, error) {
	return 0, nil
}

func (m *mockCircleRepository) CountByOwnerForUpdate(ctx context.Context, ownerAccountID string) (int64, error) {
	return 0, nil
}

type mockBlobStore struct {
	PutFunc func(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	stored map[string][]byte
}

func newMockBlobStore() *mockBlobStore {
	return &mockBlobStore{stored: make(map[string][]byte)}
}

func (m *mockBlobStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, contentType, r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.stored[key] = data
	return key, nil
}

func (m *mockBlobStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(m.stored[path])), nil
}

func (m *mockBlobStore) Remove(ctx context.Context, path string) error {
	delete(m.stored, path)
	return nil
}

func storedCircle(sid, ownerAccountID string) *circle.Circle {
	now := time.Now().UTC()
	c, err := circle.ReconstructCircle(1, sid, "Night Sessions", ownerAccountID, false, now, now)
	if err != nil {
		panic(err)
	}
	return c
}
