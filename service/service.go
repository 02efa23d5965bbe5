package service

import (
	"fmt"

	"hydrocalc/hydraulics"
	"hydrocalc/model"
	"hydrocalc/pkg/logger"

	"gorm.io/gorm"
)

type Config struct {
	Solver      hydraulics.FrictionFactorSolver
	CurveRatios []float64
	Gravity     float64
	DropDivisor float64
}

func DefaultConfig() Config {
	ratios, _ := hydraulics.SweepRatios(0.2, 1.5, 0.1)
	return Config{
		Solver:      hydraulics.NewFrictionFactorSolver(),
		CurveRatios: ratios,
		Gravity:     9.81,
		DropDivisor: 2,
	}
}

type Service struct {
	db   *gorm.DB
	cfg  Config
	pipe *hydraulics.PipelineSizingCalculator
}

// NewService 创建服务，db 为 nil 时不保存计算记录
func NewService(db *gorm.DB, cfg Config) *Service {
	return &Service{
		db:   db,
		cfg:  cfg,
		pipe: hydraulics.NewPipelineSizingCalculator(cfg.Solver),
	}
}

func (s *Service) Config() Config {
	return s.cfg
}

func (s *Service) CorrectPump(label string, ref hydraulics.PumpWaterReference, fluid hydraulics.ViscousFluidProperties) (*hydraulics.ViscosityCorrectionResult, error) {
	res, err := hydraulics.CorrectWaterPerformance(ref, fluid)
	if err != nil {
		logger.Logger.Errorf("pump correction %q failed: %v", label, err)
		return nil, fmt.Errorf("pump correction: %w", err)
	}
	logWarnings(label, res.Warnings)

	s.save(model.KindPumpCorrection, label, pumpCorrectionInput{Reference: ref, Fluid: fluid}, res, res.Warnings)
	return res, nil
}

// CorrectPumpCurve sweeps the water curve given by points, or a flat BEP curve
// over ratios (the configured sweep when ratios is empty).
func (s *Service) CorrectPumpCurve(label string, ref hydraulics.PumpWaterReference, fluid hydraulics.ViscousFluidProperties,
	ratios []float64, points []hydraulics.WaterCurvePoint) (*hydraulics.CurveResult, error) {
	if len(points) == 0 {
		if len(ratios) == 0 {
			ratios = s.cfg.CurveRatios
		}
		points = hydraulics.FlatWaterCurve(ref, ratios)
	}

	res, err := hydraulics.CorrectCurve(ref, fluid, points)
	if err != nil {
		logger.Logger.Errorf("pump curve %q failed: %v", label, err)
		return nil, fmt.Errorf("pump curve: %w", err)
	}
	logWarnings(label, res.Warnings)

	s.save(model.KindPumpCurve, label, pumpCurveInput{Reference: ref, Fluid: fluid, Points: points}, res, res.Warnings)
	return res, nil
}

func (s *Service) EquivalentWater(label string, op hydraulics.ViscousOperatingPoint, fluid hydraulics.ViscousFluidProperties) (*hydraulics.EquivalentWaterResult, error) {
	res, err := hydraulics.EquivalentWaterPerformance(op, fluid)
	if err != nil {
		logger.Logger.Errorf("equivalent water %q failed: %v", label, err)
		return nil, fmt.Errorf("equivalent water performance: %w", err)
	}
	logWarnings(label, res.Warnings)

	s.save(model.KindPumpEquivalent, label, pumpEquivalentInput{Operating: op, Fluid: fluid}, res, res.Warnings)
	return res, nil
}

// SolveFriction uses the configured solver unless the request overrides its settings.
func (s *Service) SolveFriction(req FrictionRequest) (hydraulics.FrictionResult, error) {
	solver := s.cfg.Solver
	if req.InitialGuess != nil {
		solver.InitialGuess = *req.InitialGuess
	}
	if req.Tolerance != nil {
		solver.Tolerance = *req.Tolerance
	}
	if req.MaxIterations != nil {
		solver.MaxIterations = *req.MaxIterations
	}

	res, err := solver.Solve(req.Reynolds, req.Diameter, req.Roughness)
	if err != nil {
		logger.Logger.Errorf("friction factor Re=%g failed: %v", req.Reynolds, err)
		return hydraulics.FrictionResult{}, fmt.Errorf("friction factor: %w", err)
	}
	logger.Logger.Debugf("friction factor Re=%g f=%.6f regime=%s iterations=%d", res.Reynolds, res.FrictionFactor, res.Regime, res.Iterations)

	s.save(model.KindFriction, "", req, res, nil)
	return res, nil
}

func (s *Service) SizePipeline(c PipelineCase) (*hydraulics.PipelineSizingResult, error) {
	res, err := s.sizePipeline(c)
	if err != nil {
		logger.Logger.Errorf("pipeline sizing %q failed: %v", c.Label, err)
		return nil, err
	}
	s.save(model.KindPipelineSizing, c.Label, c, res, nil)
	return res, nil
}

func (s *Service) sizePipeline(c PipelineCase) (*hydraulics.PipelineSizingResult, error) {
	in, err := c.sizingInput(s.cfg)
	if err != nil {
		return nil, fmt.Errorf("pipeline sizing: %w", err)
	}
	res, err := s.pipe.Size(in)
	if err != nil {
		return nil, fmt.Errorf("pipeline sizing: %w", err)
	}
	return res, nil
}

func logWarnings(label string, warnings []hydraulics.OutOfRangeWarning) {
	for _, w := range warnings {
		logger.Logger.Warnf("%q outside validated envelope: %s", label, w)
	}
}
