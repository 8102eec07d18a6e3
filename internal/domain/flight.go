package domain

// Endpoint is one side of a flight segment.
type Endpoint struct {
	Airport string `json:"airport"`
	City    string `json:"city"`
	Time    string `json:"time"`
	Date    string `json:"date"`
}

// Flight is read-only catalog data; the core never mutates it.
type Flight struct {
	ID           string   `json:"id"`
	Airline      string   `json:"airline"`
	FlightNumber string   `json:"flightNumber"`
	Departure    Endpoint `json:"departure"`
	Arrival      Endpoint `json:"arrival"`
	Duration     string   `json:"duration"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Stops        int      `json:"stops"`
	Class        string   `json:"class"`
}
