package car

// Brakes represents the braking system of a car
type Brakes struct {
	Type          string  `json:"type"`
	Condition     float64 `json:"condition"`      // 0.0 to 1.0
	Performance   float64 `json:"performance"`    // 0.0 to 1.0
	StoppingPower float64 `json:"stopping_power"` // multiplier, 1.0 is a well braked car
}

// Car describes one of the selectable cars
type Car struct {
	Make    string `json:"make"`
	Model   string `json:"model"`
	Texture string `json:"texture"` // texture file name under the textures directory

	Weight       float64 `json:"weight"`        // in kg
	MaxSpeed     float64 `json:"max_speed"`     // in mph
	Acceleration float64 `json:"acceleration"`  // mph gained per second at full throttle
	Handling     float64 `json:"handling"`      // 0.0 to 1.0, lateral grip
	Brakes       Brakes  `json:"brakes"`
}

// NewCar creates a new car with default values
func NewCar(make, model string, weight float64) *Car {
	return &Car{
		Make:         make,
		Model:        model,
		Weight:       weight,
		MaxSpeed:     150,
		Acceleration: 25,
		Handling:     0.7,
		Brakes: Brakes{
			Type:          "disc",
			Condition:     1.0,
			Performance:   1.0,
			StoppingPower: 1.0,
		},
	}
}

// Name returns "Make Model"
func (c *Car) Name() string {
	return c.Make + " " + c.Model
}

// BrakeEfficiency combines brake condition, performance and stopping power
func (c *Car) BrakeEfficiency() float64 {
	return c.Brakes.Condition * c.Brakes.Performance * c.Brakes.StoppingPower
}

// BrakeDeceleration returns the fraction of the current speed removed per
// frame at 60 FPS while braking. Lighter cars and better brakes stop faster.
// The result is always within [0.01, 0.04].
func (c *Car) BrakeDeceleration() float64 {
	baseBrakeCoefficient := 0.02

	baseWeight := 1500.0
	weightFactor := 1.0
	if c.Weight > 0 {
		weightFactor = baseWeight / c.Weight
	}
	if weightFactor > 1.5 {
		weightFactor = 1.5
	}
	if weightFactor < 0.5 {
		weightFactor = 0.5
	}

	brakeCoefficient := baseBrakeCoefficient * c.BrakeEfficiency() * weightFactor
	if brakeCoefficient < 0.01 {
		brakeCoefficient = 0.01
	}
	if brakeCoefficient > 0.04 {
		brakeCoefficient = 0.04
	}
	return brakeCoefficient
}
