package hydraulics

import (
	"fmt"
	"math"
)

const (
	// LaminarReynoldsLimit is the upper Reynolds number of the laminar regime (inclusive).
	LaminarReynoldsLimit = 2300.0

	DefaultInitialGuess  = 0.02
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

type Regime int

const (
	Laminar Regime = iota + 1
	Turbulent
)

func (r Regime) String() string {
	switch r {
	case Laminar:
		return "laminar"
	case Turbulent:
		return "turbulent"
	default:
		return "unknown"
	}
}

func (r Regime) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Regime) UnmarshalText(text []byte) error {
	switch string(text) {
	case "laminar":
		*r = Laminar
	case "turbulent":
		*r = Turbulent
	default:
		return fmt.Errorf("unknown flow regime %q", text)
	}
	return nil
}

func RegimeOf(reynolds float64) Regime {
	if reynolds <= LaminarReynoldsLimit {
		return Laminar
	}
	return Turbulent
}

type FrictionResult struct {
	Reynolds       float64 `json:"reynolds"`
	FrictionFactor float64 `json:"frictionFactor"`
	Regime         Regime  `json:"regime"`
	Iterations     int     `json:"iterations"`
}

// FrictionFactorSolver solves the Colebrook-White equation by fixed-point
// iteration. Zero values are used as given; start from NewFrictionFactorSolver.
type FrictionFactorSolver struct {
	InitialGuess  float64
	Tolerance     float64
	MaxIterations int
}

func NewFrictionFactorSolver() FrictionFactorSolver {
	return FrictionFactorSolver{
		InitialGuess:  DefaultInitialGuess,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Solve returns the Darcy-Weisbach friction factor. Laminar flow uses 64/Re
// without iterating.
func (s FrictionFactorSolver) Solve(reynolds, diameter, roughness float64) (FrictionResult, error) {
	if err := firstErr(
		positive("reynolds", reynolds),
		positive("diameter", diameter),
		nonNegative("roughness", roughness),
	); err != nil {
		return FrictionResult{}, err
	}

	res := FrictionResult{Reynolds: reynolds, Regime: RegimeOf(reynolds)}
	if res.Regime == Laminar {
		res.FrictionFactor = 64 / reynolds
		return res, nil
	}

	if err := firstErr(positive("initialGuess", s.InitialGuess), positive("tolerance", s.Tolerance)); err != nil {
		return FrictionResult{}, err
	}
	if s.MaxIterations < 0 {
		return FrictionResult{}, &InvalidInputError{Field: "maxIterations", Value: float64(s.MaxIterations), Reason: "must be >= 0"}
	}

	relRoughness := roughness / (3.7 * diameter)
	f, delta := s.InitialGuess, math.Inf(1)
	for i := 1; i <= s.MaxIterations; i++ {
		rhs := -2 * math.Log10(relRoughness+2.51/(reynolds*math.Sqrt(f)))
		next := 1 / (rhs * rhs)
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= 0 {
			return FrictionResult{}, &ConvergenceError{Iterations: i, Last: next, Delta: math.NaN()}
		}
		delta = math.Abs(next - f)
		f = next
		if delta < s.Tolerance {
			res.FrictionFactor = next
			res.Iterations = i
			return res, nil
		}
	}
	return FrictionResult{}, &ConvergenceError{Iterations: s.MaxIterations, Last: f, Delta: delta}
}

// PressureDrop is the Darcy-Weisbach frictional loss in Pa over length (m).
func PressureDrop(length, diameter, velocity, frictionFactor, density float64) float64 {
	return frictionFactor * (length / diameter) * (density * velocity * velocity / 2)
}
