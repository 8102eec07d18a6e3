package catalog

import (
	"context"

	"github.com/fastays/fastays/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGSource reads the catalog from Postgres. The table is seeded out of
// band; the application only ever selects from it.
type PGSource struct {
	db *pgxpool.Pool
}

func NewPGSource(db *pgxpool.Pool) *PGSource {
	return &PGSource{db: db}
}

const flightColumns = `id, airline, flight_number,
	departure_airport, departure_city, departure_time, departure_date,
	arrival_airport, arrival_city, arrival_time, arrival_date,
	duration, price, currency, stops, class`

func (s *PGSource) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := s.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_date, departure_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (s *PGSource) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	row := s.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func scanFlight(row pgx.Row) (domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.Airline, &f.FlightNumber,
		&f.Departure.Airport, &f.Departure.City, &f.Departure.Time, &f.Departure.Date,
		&f.Arrival.Airport, &f.Arrival.City, &f.Arrival.Time, &f.Arrival.Date,
		&f.Duration, &f.Price, &f.Currency, &f.Stops, &f.Class)
	return f, err
}

var _ Source = (*PGSource)(nil)
