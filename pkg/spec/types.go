package spec

// BikeFile is the top-level shape of a bicycle document.
type BikeFile struct {
	Bicycle Bicycle `yaml:"bicycle" json:"bicycle"`
}

// Bicycle is the parsed description of one bicycle. All dimensions are
// optional pointer fields: presence is checked explicitly by the solver,
// never inferred from zero values. Lengths are millimeters, angles are
// degrees up from horizontal.
type Bicycle struct {
	Name  string `yaml:"name" json:"name"`
	Size  string `yaml:"size" json:"size"`
	Color string `yaml:"color" json:"color"`

	BBDrop          *float64 `yaml:"bb_drop" json:"bb_drop"`
	ChainstayLength *float64 `yaml:"chainstay_length" json:"chainstay_length"`
	SeatTubeAngle   *float64 `yaml:"seat_tube_angle" json:"seat_tube_angle"`
	SeatTubeLength  *float64 `yaml:"seat_tube_length" json:"seat_tube_length"`
	HeadTubeAngle   *float64 `yaml:"head_tube_angle" json:"head_tube_angle"`
	HeadTubeLength  *float64 `yaml:"head_tube_length" json:"head_tube_length"`
	ForkLength      *float64 `yaml:"fork_length" json:"fork_length"`
	ForkOffset      *float64 `yaml:"fork_offset" json:"fork_offset"`
	Wheelbase       *float64 `yaml:"wheelbase" json:"wheelbase"`
	Reach           *float64 `yaml:"reach" json:"reach"`
	Stack           *float64 `yaml:"stack" json:"stack"`
	WheelDiameter   *float64 `yaml:"wheel_diameter" json:"wheel_diameter"`
	HandlebarReach  *float64 `yaml:"handlebar_reach" json:"handlebar_reach"`
	HandlebarStack  *float64 `yaml:"handlebar_stack" json:"handlebar_stack"`
}

// DefaultWheelDiameter is assumed when a document omits wheel_diameter.
const DefaultWheelDiameter = 700.0

// WheelDiameterOrDefault returns the document's wheel diameter, falling
// back to the 700mm default.
func (b *Bicycle) WheelDiameterOrDefault() float64 {
	if b.WheelDiameter != nil {
		return *b.WheelDiameter
	}
	return DefaultWheelDiameter
}

// Label returns the display label used in legends and summaries.
func (b *Bicycle) Label() string {
	if b.Size != "" {
		return b.Name + " " + b.Size
	}
	return b.Name
}

// Dimension is a named optional measurement, used to enumerate the schema.
type Dimension struct {
	Name  string
	Value *float64
}

// Dimensions lists every optional measurement in document order. The
// solver and validator iterate this instead of reflecting over fields.
func (b *Bicycle) Dimensions() []Dimension {
	return []Dimension{
		{"bb_drop", b.BBDrop},
		{"chainstay_length", b.ChainstayLength},
		{"seat_tube_angle", b.SeatTubeAngle},
		{"seat_tube_length", b.SeatTubeLength},
		{"head_tube_angle", b.HeadTubeAngle},
		{"head_tube_length", b.HeadTubeLength},
		{"fork_length", b.ForkLength},
		{"fork_offset", b.ForkOffset},
		{"wheelbase", b.Wheelbase},
		{"reach", b.Reach},
		{"stack", b.Stack},
		{"wheel_diameter", b.WheelDiameter},
		{"handlebar_reach", b.HandlebarReach},
		{"handlebar_stack", b.HandlebarStack},
	}
}

// RiderFile is the top-level shape of a rider document.
type RiderFile struct {
	Rider Rider `yaml:"rider" json:"rider"`
}

// Rider holds body measurements shared read-only across all solver runs.
// Only inseam currently moves a fit point (saddle height); the remaining
// measurements are loaded and validated but do not affect placement.
type Rider struct {
	Inseam      *float64 `yaml:"inseam" json:"inseam"`
	TorsoLength *float64 `yaml:"torso_length" json:"torso_length"`
	ArmLength   *float64 `yaml:"arm_length" json:"arm_length"`
}

// Measurements lists every rider measurement in document order.
func (r *Rider) Measurements() []Dimension {
	return []Dimension{
		{"inseam", r.Inseam},
		{"torso_length", r.TorsoLength},
		{"arm_length", r.ArmLength},
	}
}
