// Package host wires a puppet model to its engine, inspector, and pose
// store, and drives the per-frame update loop.
package host

import (
	"context"
	gomath "math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/marionette/internal/config"
	"github.com/Faultbox/marionette/internal/inspect"
	"github.com/Faultbox/marionette/internal/logger"
	"github.com/Faultbox/marionette/pkg/core"
	"github.com/Faultbox/marionette/pkg/formats"
	"github.com/Faultbox/marionette/pkg/model"
	"github.com/Faultbox/marionette/pkg/pose"
)

// Host owns one model instance and everything serving it.
type Host struct {
	cfg       *config.Config
	model     *model.Model
	metrics   *inspect.Metrics
	inspector *inspect.Server
	store     *pose.Store

	frame uint64
	start time.Time
}

// New loads the puppet, builds the model, and starts the optional
// inspector and pose store.
func New(cfg *config.Config) (*Host, error) {
	data, err := os.ReadFile(cfg.Puppet.Path)
	if err != nil {
		return nil, err
	}
	puppet, err := formats.ParsePuppet(data)
	if err != nil {
		return nil, err
	}

	m := model.NewModel(core.NewStaticEngine(puppet.BuildSnapshot()), nil)
	m.Initialize()
	logger.Info("puppet loaded",
		zap.String("path", cfg.Puppet.Path),
		zap.Int("parameters", m.ParameterCount()),
		zap.Int("parts", m.PartCount()),
		zap.Int("drawables", m.DrawableCount()))

	h := &Host{cfg: cfg, model: m, metrics: inspect.NewMetrics(), start: time.Now()}
	h.metrics.Parameters.Set(float64(m.ParameterCount()))
	h.metrics.Drawables.Set(float64(m.DrawableCount()))

	if cfg.Puppet.PoseDB != "" {
		store, err := pose.OpenStore(cfg.Puppet.PoseDB)
		if err != nil {
			h.Close()
			return nil, err
		}
		h.store = store
		if err := h.applyStartingPose(); err != nil {
			h.Close()
			return nil, err
		}
	}

	if cfg.Inspector.Enabled {
		srv := inspect.NewServer(logger.Named("inspector"), h.metrics)
		if err := srv.Start(cfg.Inspector.Listen); err != nil {
			h.Close()
			return nil, err
		}
		h.inspector = srv
	}

	return h, nil
}

// applyStartingPose applies the first stored pose, if any, so the model
// starts in an authored state rather than raw defaults.
func (h *Host) applyStartingPose() error {
	names, err := h.store.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	p, err := h.store.Load(names[0])
	if err != nil {
		return err
	}
	pose.Apply(h.model, p, 1)
	logger.Info("starting pose applied", zap.String("pose", p.Name))
	return nil
}

// Run drives the frame loop until SIGINT/SIGTERM.
func (h *Host) Run() error {
	fps := h.cfg.Host.FPS
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	logger.Info("frame loop running", zap.Int("fps", fps))
	for {
		select {
		case <-sig:
			logger.Info("shutdown signal received")
			return nil
		case <-ticker.C:
			h.Step(time.Since(h.start))
		}
	}
}

// Step runs one frame: drive the demo animation, update the model, and
// publish state.
func (h *Host) Step(elapsed time.Duration) {
	t0 := time.Now()

	// Sweep every parameter through its range with staggered phases, so
	// an attached inspector has something to watch.
	for i := 0; i < h.model.ParameterCount(); i++ {
		min := h.model.ParameterMin(i)
		max := h.model.ParameterMax(i)
		mid := (min + max) / 2
		amp := (max - min) / 2
		phase := elapsed.Seconds() + float64(i)*0.7
		h.model.SetParameterValue(i, mid+amp*float32(gomath.Sin(phase)), 1)
	}

	h.model.Update()
	h.frame++

	h.metrics.FramesTotal.Inc()
	h.metrics.FrameDuration.Observe(time.Since(t0).Seconds())

	if h.inspector != nil {
		h.inspector.Broadcast(inspect.CaptureFrame(h.model, h.frame))
	}
}

// Close shuts the inspector and pose store down and releases the model.
func (h *Host) Close() {
	if h.inspector != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := h.inspector.Shutdown(ctx); err != nil {
			logger.Warn("inspector shutdown failed", zap.Error(err))
		}
		h.inspector = nil
	}
	if h.store != nil {
		if err := h.store.Close(); err != nil {
			logger.Warn("pose store close failed", zap.Error(err))
		}
		h.store = nil
	}
	if h.model != nil {
		h.model.Release()
		h.model = nil
	}
}
