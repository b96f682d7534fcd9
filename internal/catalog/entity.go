package catalog

type Service struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           float64  `json:"price"`
	Description     string   `json:"description"`
	Features        []string `json:"features"`
}

// Free reports whether the service is offered without charge.
func (s *Service) Free() bool {
	return s.Price == 0
}
