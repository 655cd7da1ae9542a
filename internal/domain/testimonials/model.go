package testimonials

import "time"

// Testimonial es una reseña de un dueño que se muestra en la landing.
type Testimonial struct {
	ID int64

	Name    string
	DogName string
	// DogAge es texto libre ("8 years", "6 months").
	DogAge string

	// Status es la etapa de vida mostrada ("Senior", "Adult"...).
	Status      string
	StatusColor string

	Image string
	Quote string

	IsActive bool
	Order    int

	CreatedAt time.Time
	UpdatedAt time.Time
}
