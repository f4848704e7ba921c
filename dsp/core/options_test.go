package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(
		WithSampleRate(8000),
		WithDuration(3),
		WithRenderScale(10),
		WithTargetLUFS(-23),
	)
	if cfg.SampleRate != 8000 {
		t.Fatalf("sample rate = %d, want 8000", cfg.SampleRate)
	}
	if cfg.Duration != 3 {
		t.Fatalf("duration = %d, want 3", cfg.Duration)
	}
	if cfg.RenderScale != 10 {
		t.Fatalf("render scale = %v, want 10", cfg.RenderScale)
	}
	if cfg.TargetLUFS != -23 {
		t.Fatalf("target = %v, want -23", cfg.TargetLUFS)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithDuration(-1), WithRenderScale(0), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestLegacyDefaults(t *testing.T) {
	def := DefaultProcessorConfig()
	if def.RenderScale != 100 {
		t.Fatalf("render scale = %v, want 100", def.RenderScale)
	}
	if def.TargetLUFS != -14 {
		t.Fatalf("target = %v, want -14", def.TargetLUFS)
	}
}
