package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/speechcore/lpc10"
)

// encoderConfig mirrors lpc10.Settings for YAML override files. Fields
// absent from the file stay nil and keep the compiled-in default; applyTo
// overlays the fields that are set.
type encoderConfig struct {
	PitchLowCut  *float32 `yaml:"pitch_low_cut"`
	PitchHighCut *float32 `yaml:"pitch_high_cut"`
	PitchQFactor *float32 `yaml:"pitch_q_factor"`

	ProcessingLowCut  *float32 `yaml:"processing_low_cut"`
	ProcessingHighCut *float32 `yaml:"processing_high_cut"`
	ProcessingQFactor *float32 `yaml:"processing_q_factor"`

	UnvoicedThresh          *float32 `yaml:"unvoiced_thresh"`
	UnvoicedRMSMultiply     *float32 `yaml:"unvoiced_rms_multiply"`
	DoPreEmphasis           *bool    `yaml:"do_pre_emphasis"`
	PreEmphasisAlpha        *float32 `yaml:"pre_emphasis_alpha"`
	PreEmphasisConventional *bool    `yaml:"pre_emphasis_conventional"`

	FrameSizeMS          *uint32 `yaml:"frame_size_ms"`
	WindowSizeInSegments *uint32 `yaml:"window_size_in_segments"`
}

func loadConfigFile(path string) (encoderConfig, error) {
	var cfg encoderConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyTo overlays any fields set in cfg onto settings.
func (cfg encoderConfig) applyTo(settings *lpc10.Settings) {
	if cfg.PitchLowCut != nil {
		settings.PitchLowCut = *cfg.PitchLowCut
	}
	if cfg.PitchHighCut != nil {
		settings.PitchHighCut = *cfg.PitchHighCut
	}
	if cfg.PitchQFactor != nil {
		settings.PitchQFactor = *cfg.PitchQFactor
	}
	if cfg.ProcessingLowCut != nil {
		settings.ProcessingLowCut = *cfg.ProcessingLowCut
	}
	if cfg.ProcessingHighCut != nil {
		settings.ProcessingHighCut = *cfg.ProcessingHighCut
	}
	if cfg.ProcessingQFactor != nil {
		settings.ProcessingQFactor = *cfg.ProcessingQFactor
	}
	if cfg.UnvoicedThresh != nil {
		settings.UnvoicedThresh = *cfg.UnvoicedThresh
	}
	if cfg.UnvoicedRMSMultiply != nil {
		settings.UnvoicedRMSMultiply = *cfg.UnvoicedRMSMultiply
	}
	if cfg.DoPreEmphasis != nil {
		settings.DoPreEmphasis = *cfg.DoPreEmphasis
	}
	if cfg.PreEmphasisAlpha != nil {
		settings.PreEmphasisAlpha = *cfg.PreEmphasisAlpha
	}
	if cfg.PreEmphasisConventional != nil {
		settings.PreEmphasisConventional = *cfg.PreEmphasisConventional
	}
	if cfg.FrameSizeMS != nil {
		settings.FrameSizeMS = *cfg.FrameSizeMS
	}
	if cfg.WindowSizeInSegments != nil {
		settings.WindowSizeInSegments = *cfg.WindowSizeInSegments
	}
}
