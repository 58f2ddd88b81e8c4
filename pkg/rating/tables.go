package rating

import (
	domain "github.com/carexpo/car-expo/pkg/types"
)

// defaultBrandReliability is the reliability score used for makes missing
// from the brand table.
const defaultBrandReliability = 70.0

// brandReliability maps make to a 0-100 brand reliability score.
var brandReliability = map[string]float64{
	"Toyota":        95,
	"Honda":         92,
	"Lexus":         90,
	"Mazda":         88,
	"Subaru":        87,
	"BMW":           85,
	"Audi":          84,
	"Mercedes-Benz": 83,
	"Mercedes":      83,
	"Porsche":       82,
	"Volkswagen":    80,
	"Nissan":        78,
	"Hyundai":       77,
	"Kia":           76,
	"Ford":          75,
	"Chevrolet":     74,
	"Chevy":         74,
	"GMC":           73,
	"Dodge":         70,
	"Chrysler":      68,
	"Jeep":          67,
	"Tesla":         85,
	"Genesis":       88,
	"Infiniti":      79,
	"Acura":         86,
	"Volvo":         81,
	"Jaguar":        75,
	"Land Rover":    70,
	"Mitsubishi":    72,
	"Buick":         76,
	"Cadillac":      78,
	"Lincoln":       77,
	"Ram":           72,
	"Alfa Romeo":    65,
	"Fiat":          60,
	"Maserati":      70,
	"Bentley":       75,
	"Rolls-Royce":   80,
	"Ferrari":       75,
	"Lamborghini":   70,
	"McLaren":       75,
	"Aston Martin":  70,
	"Lotus":         65,
	"MINI":          75,
	"Smart":         60,
	"Suzuki":        70,
	"Isuzu":         65,
	"Saab":          60,
	"Saturn":        55,
	"Pontiac":       55,
	"Oldsmobile":    50,
	"Plymouth":      50,
	"Eagle":         50,
	"Geo":           45,
	"Daewoo":        40,
	"Yugo":          30,
}

// defaultBaseValue is the market-value base price for makes missing from
// the base value table.
const defaultBaseValue = 25000.0

// baseValues maps make to a new-vehicle base price used by the market
// value estimator.
var baseValues = map[string]float64{
	"Toyota":     25000,
	"Honda":      24000,
	"BMW":        45000,
	"Mercedes":   50000,
	"Audi":       42000,
	"Porsche":    80000,
	"Tesla":      55000,
	"Ford":       28000,
	"Chevrolet":  26000,
	"Nissan":     22000,
	"Hyundai":    20000,
	"Kia":        19000,
	"Subaru":     27000,
	"Mazda":      23000,
	"Lexus":      40000,
	"Infiniti":   35000,
	"Acura":      32000,
	"Volvo":      38000,
	"Jaguar":     45000,
	"Land Rover": 55000,
	"Genesis":    45000,
}

// typeMultipliers adjusts the performance, efficiency, and style factors
// per vehicle category. The multiplier is applied after the additive terms
// and before clamping.
type typeMultiplier struct {
	performance float64
	efficiency  float64
	style       float64
}

var defaultMultiplier = typeMultiplier{performance: 1.0, efficiency: 1.0, style: 1.0}

var typeMultipliers = map[domain.VehicleType]typeMultiplier{
	domain.TypeSedan:       {performance: 1.0, efficiency: 1.1, style: 1.0},
	domain.TypeSUV:         {performance: 0.9, efficiency: 0.8, style: 1.1},
	domain.TypeTruck:       {performance: 1.1, efficiency: 0.7, style: 1.0},
	domain.TypeEV:          {performance: 1.2, efficiency: 1.3, style: 1.2},
	domain.TypeConvertible: {performance: 1.1, efficiency: 0.9, style: 1.3},
	domain.TypeCoupe:       {performance: 1.1, efficiency: 0.9, style: 1.2},
	domain.TypeHatchback:   {performance: 1.0, efficiency: 1.1, style: 0.9},
	domain.TypeWagon:       {performance: 0.9, efficiency: 1.0, style: 0.8},
}

func multiplierFor(t domain.VehicleType) typeMultiplier {
	if m, ok := typeMultipliers[t]; ok {
		return m
	}
	return defaultMultiplier
}

// defaultFeatureWeight applies to options not present in featureWeights.
const defaultFeatureWeight = 2.0

// featureWeights maps option names to their contribution weight in the
// features factor.
var featureWeights = map[string]float64{
	"Leather Seats":               8,
	"Heated Seats":                6,
	"Cooled Seats":                7,
	"Sunroof":                     5,
	"Navigation":                  6,
	"Bluetooth":                   4,
	"Backup Camera":               5,
	"Blind Spot Monitoring":       7,
	"Lane Departure Warning":      6,
	"Adaptive Cruise Control":     8,
	"Automatic Emergency Braking": 9,
	"Apple CarPlay":               5,
	"Android Auto":                5,
	"Premium Sound System":        6,
	"All-Wheel Drive":             7,
	"Four-Wheel Drive":            7,
	"Turbocharged":                6,
	"Hybrid":                      8,
	"Electric":                    9,
	"Manual Transmission":         4,
	"Automatic Transmission":      5,
	"CVT":                         3,
	"Keyless Entry":               4,
	"Remote Start":                5,
	"Power Windows":               3,
	"Power Locks":                 3,
	"Air Conditioning":            4,
	"Cruise Control":              3,
	"ABS":                         5,
	"Traction Control":            5,
	"Stability Control":           6,
	"Side Airbags":                7,
	"Curtain Airbags":             7,
	"Knee Airbags":                6,
	"Parking Sensors":             5,
	"360 Camera":                  7,
	"Heated Steering Wheel":       5,
	"Memory Seats":                4,
	"Power Seats":                 4,
	"Lumbar Support":              3,
	"Third Row Seating":           6,
	"Towing Package":              5,
	"Off-Road Package":            6,
	"Sport Package":               6,
	"Luxury Package":              8,
	"Technology Package":          7,
	"Safety Package":              9,
	"Comfort Package":             6,
}

// Brand appeal lists for the style factor. A make in more than one list
// counts only for the first list that contains it, in this order:
// luxury, sporty, reliable.
var (
	luxuryBrands   = []string{"BMW", "Mercedes", "Audi", "Lexus", "Porsche", "Tesla", "Genesis"}
	sportyBrands   = []string{"Porsche", "BMW", "Audi", "Mercedes", "Nissan", "Subaru", "Mazda"}
	reliableBrands = []string{"Toyota", "Honda", "Mazda", "Subaru"}
)
