package cafe

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCafeID     = errors.New("cafe id cannot be empty")
	ErrEmptyCafeName   = errors.New("cafe name cannot be empty")
	ErrInvalidRating   = errors.New("rating must be between 0 and 5")
	ErrCafeNameTooLong = errors.New("cafe name is too long (max 255 characters)")
)

const MaxCafeNameLength = 255

// Cafe is an immutable reference owned by the static catalog. The booking core
// only ever reads it.
type Cafe struct {
	id       string
	name     string
	image    string
	tagline  string
	location string
	rating   float64
	openTime string
}

func NewCafe(id, name, image, tagline, location string, rating float64, openTime string) (*Cafe, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyCafeID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCafeName
	}
	if len(name) > MaxCafeNameLength {
		return nil, ErrCafeNameTooLong
	}
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}

	return &Cafe{
		id:       id,
		name:     name,
		image:    image,
		tagline:  tagline,
		location: location,
		rating:   rating,
		openTime: openTime,
	}, nil
}

// Summary is the subset of cafe data carried on booking and redemption records.
type Summary struct {
	ID       string
	Name     string
	Image    string
	Location string
}

func (c *Cafe) Summarize() Summary {
	return Summary{
		ID:       c.id,
		Name:     c.name,
		Image:    c.image,
		Location: c.location,
	}
}

func (c *Cafe) ID() string       { return c.id }
func (c *Cafe) Name() string     { return c.name }
func (c *Cafe) Image() string    { return c.image }
func (c *Cafe) Tagline() string  { return c.tagline }
func (c *Cafe) Location() string { return c.location }
func (c *Cafe) Rating() float64  { return c.rating }
func (c *Cafe) OpenTime() string { return c.openTime }
