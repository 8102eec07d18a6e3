// Package catalog supplies the read-only flight list the booking flow
// selects from.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fastays/fastays/internal/domain"
)

var ErrNotFound = errors.New("flight not found")

type Source interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
}

// FileSource serves flights from a JSON file loaded once at startup.
// The file shape matches the shipped demo data: {"flights": [...]}.
type FileSource struct {
	flights []domain.Flight
}

type catalogFile struct {
	Flights []domain.Flight `json:"flights"`
}

func NewFileSource(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flight catalog: %w", err)
	}
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse flight catalog: %w", err)
	}
	return &FileSource{flights: file.Flights}, nil
}

func (s *FileSource) List(ctx context.Context) ([]domain.Flight, error) {
	flights := make([]domain.Flight, len(s.flights))
	copy(flights, s.flights)
	return flights, nil
}

func (s *FileSource) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	for _, f := range s.flights {
		if f.ID == id {
			flight := f
			return &flight, nil
		}
	}
	return nil, ErrNotFound
}

var _ Source = (*FileSource)(nil)
