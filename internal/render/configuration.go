package render

// Precision is the shader float precision tier
type Precision string

const (
	PrecisionLow    Precision = "lowp"
	PrecisionMedium Precision = "mediump"
	PrecisionHigh   Precision = "highp"
)

// PowerPreference hints which GPU the context should use
type PowerPreference string

const (
	PowerDefault         PowerPreference = "default"
	PowerHighPerformance PowerPreference = "high-performance"
)

// ConfigurationCount is the number of fixed configuration tiers
const ConfigurationCount = 3

// ShadowTier is the lowest tier index that enables shadows
const ShadowTier = 2

// Configuration is one named parameter set for creating a rendering context
type Configuration struct {
	Index                        int             `yaml:"index"`
	Name                         string          `yaml:"name"`
	Antialias                    bool            `yaml:"antialias"`
	Alpha                        bool            `yaml:"alpha"`
	Depth                        bool            `yaml:"depth"`
	Stencil                      bool            `yaml:"stencil"`
	PreserveDrawingBuffer        bool            `yaml:"preserve_drawing_buffer"`
	FailIfMajorPerformanceCaveat bool            `yaml:"fail_if_major_performance_caveat"`
	LogarithmicDepthBuffer       bool            `yaml:"logarithmic_depth_buffer"`
	Precision                    Precision       `yaml:"precision"`
	PowerPreference              PowerPreference `yaml:"power_preference"`
	Shadows                      bool            `yaml:"shadows"`
	PixelRatio                   float32         `yaml:"pixel_ratio"`
}

// Ordered from most compatible to highest quality
var configurations = [ConfigurationCount]Configuration{
	{
		Index:           0,
		Name:            "compatible",
		Depth:           true,
		Precision:       PrecisionLow,
		PowerPreference: PowerDefault,
		PixelRatio:      1,
	},
	{
		Index:           1,
		Name:            "balanced",
		Depth:           true,
		Precision:       PrecisionMedium,
		PowerPreference: PowerDefault,
		PixelRatio:      1,
	},
	{
		Index:           2,
		Name:            "quality",
		Antialias:       true,
		Depth:           true,
		Precision:       PrecisionHigh,
		PowerPreference: PowerHighPerformance,
		Shadows:         true,
		PixelRatio:      1,
	},
}

// Configurations returns a copy of the fixed configuration list
func Configurations() []Configuration {
	out := make([]Configuration, ConfigurationCount)
	copy(out, configurations[:])
	return out
}

// ConfigurationAt returns the configuration for index wrapped into range
func ConfigurationAt(index int) Configuration {
	return configurations[WrapIndex(index, ConfigurationCount)]
}

// WrapIndex maps any integer into [0, n)
func WrapIndex(index, n int) int {
	if n <= 0 {
		return 0
	}
	i := index % n
	if i < 0 {
		i += n
	}
	return i
}

// StarCount is the background star density for the precision tier
func (c Configuration) StarCount() int {
	switch c.Precision {
	case PrecisionHigh:
		return 600
	case PrecisionMedium:
		return 300
	default:
		return 150
	}
}
