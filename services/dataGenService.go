package services

import (
	"math"
	"math/rand"
	"time"
)

// DataGenService generates a random walk around a mean value, used to feed
// measurement variables of the demo plant.
type DataGenService struct {
	// data mean value
	mean float64
	// data standard deviation value
	standardDeviation float64
	// stepSizeFactor is used when calculating the next value.
	stepSizeFactor float64
	// current value
	value float64

	rnd *rand.Rand
}

func NewDataGenService(mean, standardDeviation float64) *DataGenService {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &DataGenService{
		mean:              mean,
		standardDeviation: math.Abs(standardDeviation),
		stepSizeFactor:    math.Abs(standardDeviation) / 10,
		value:             mean - rnd.Float64(),
		rnd:               rnd,
	}
}

func (gen *DataGenService) CalculateNextValue() float64 {
	// first calculate how much the value will be changed
	valueChange := gen.rnd.Float64() * gen.stepSizeFactor
	// second decide if the value is increased or decreased
	factor := gen.decideFactor()
	// apply valueChange and factor to value and return
	gen.value += valueChange * factor
	return gen.value
}

func (gen *DataGenService) decideFactor() float64 {
	var (
		continueDirection, changeDirection float64
		distance                           float64 // the distance from the mean.
	)
	// depending on if the current value is smaller or bigger than the mean
	// the direction changes.
	if gen.value > gen.mean {
		distance = gen.value - gen.mean
		continueDirection = 1
		changeDirection = -1
	} else {
		distance = gen.mean - gen.value
		continueDirection = -1
		changeDirection = 1
	}
	// the chance is calculated by taking half of the standardDeviation
	// and subtracting the distance divided by 50. A distance of zero
	// means a 50/50 chance for the value to go higher or lower.
	chance := (gen.standardDeviation / 2) - (distance / 50)
	randomValue := gen.standardDeviation * gen.rnd.Float64()
	if randomValue < chance {
		return continueDirection
	}
	return changeDirection
}
