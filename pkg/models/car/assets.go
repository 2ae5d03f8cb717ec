package car

import (
	"errors"
	"fmt"
	"image/color"
)

// Palette is a fixed ordered list of selectable car colors
type Palette struct {
	colors []color.RGBA
}

// NewPalette creates a palette. At least one color is required.
func NewPalette(colors ...color.RGBA) (*Palette, error) {
	if len(colors) == 0 {
		return nil, errors.New("palette needs at least one color")
	}
	p := &Palette{colors: make([]color.RGBA, len(colors))}
	copy(p.colors, colors)
	return p, nil
}

// Len returns the number of colors in the palette
func (p *Palette) Len() int {
	return len(p.colors)
}

// Index maps any requested index, including negative ones, onto the palette
func (p *Palette) Index(i int) int {
	return wrap(i, len(p.colors))
}

// At returns the color for a requested index after wrapping it
func (p *Palette) At(i int) color.RGBA {
	return p.colors[p.Index(i)]
}

// Catalog is the fixed ordered set of selectable cars
type Catalog struct {
	cars []*Car
}

// NewCatalog creates a catalog. At least one car is required.
func NewCatalog(cars ...*Car) (*Catalog, error) {
	if len(cars) == 0 {
		return nil, errors.New("catalog needs at least one car")
	}
	for i, c := range cars {
		if c == nil {
			return nil, fmt.Errorf("car %d is nil", i)
		}
	}
	cat := &Catalog{cars: make([]*Car, len(cars))}
	copy(cat.cars, cars)
	return cat, nil
}

// Len returns the number of cars
func (c *Catalog) Len() int {
	return len(c.cars)
}

// Index maps any requested index onto the catalog
func (c *Catalog) Index(i int) int {
	return wrap(i, len(c.cars))
}

// At returns the car for a requested index after wrapping it
func (c *Catalog) At(i int) *Car {
	return c.cars[c.Index(i)]
}

// All returns the cars in catalog order
func (c *Catalog) All() []*Car {
	out := make([]*Car, len(c.cars))
	copy(out, c.cars)
	return out
}

// Assets are the car models and colors shared by the car selection screen and
// the in-game view. They are loaded once and never mutated afterwards.
type Assets struct {
	Cars    *Catalog
	Palette *Palette
}

// Texture returns the texture name for the requested car index
func (a *Assets) Texture(i int) string {
	return a.Cars.At(i).Texture
}

// DefaultAssets returns the stock cars and color palette
func DefaultAssets() *Assets {
	cars, _ := NewCatalog(DefaultCars()...)
	palette, _ := NewPalette(DefaultColors()...)
	return &Assets{Cars: cars, Palette: palette}
}

// DefaultColors is the stock car color palette
func DefaultColors() []color.RGBA {
	return []color.RGBA{
		{220, 20, 20, 255},   // red
		{255, 200, 50, 255},  // yellow
		{40, 110, 220, 255},  // blue
		{30, 160, 60, 255},   // green
		{240, 240, 240, 255}, // white
		{30, 30, 30, 255},    // black
		{240, 120, 20, 255},  // orange
		{150, 60, 200, 255},  // purple
	}
}

// DefaultCars returns the three stock cars, from easiest to fastest
func DefaultCars() []*Car {
	sedan := NewCar("Toyota", "Camry", 1500)
	sedan.Texture = "car1.png"
	sedan.MaxSpeed = 120
	sedan.Acceleration = 20
	sedan.Handling = 0.8
	sedan.Brakes.StoppingPower = 1.0

	sports := NewCar("Ferrari", "Testarossa", 1200)
	sports.Texture = "car2.png"
	sports.MaxSpeed = 160
	sports.Acceleration = 28
	sports.Handling = 0.75
	sports.Brakes.Type = "carbon-ceramic"
	sports.Brakes.StoppingPower = 1.2

	race := NewCar("McLaren", "F1", 1000)
	race.Texture = "car3.png"
	race.MaxSpeed = 200
	race.Acceleration = 35
	race.Handling = 0.65
	race.Brakes.Type = "carbon-ceramic"
	race.Brakes.StoppingPower = 1.5

	return []*Car{sedan, sports, race}
}

// wrap returns i modulo n as a non-negative value
func wrap(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
