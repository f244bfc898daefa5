package promptgen

import (
	"strings"
	"testing"
)

func forestContext(params SliderParams) ModelContext {
	return ModelContext{
		BasePrompt:              "a fox in a forest",
		CreativeControlsEnabled: true,
		SliderParams:            params,
	}
}

func TestMidjourneyFlagSequence(t *testing.T) {
	params := ModelMidjourney.TranslateSliders(80, 30, 60)
	got := ModelMidjourney.FinalizePrompt(forestContext(params))

	want := "a fox in a forest --s 800 --chaos 30 --q 2"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMidjourneyFullFinalizeOrder(t *testing.T) {
	ctx := forestContext(ModelMidjourney.TranslateSliders(80, 30, 60))
	ctx.AspectRatioDisplay = "16:9"
	ctx.NegativePrompt = "blurry"

	got := ModelMidjourney.FinalizePrompt(ctx)
	want := "a fox in a forest --ar 16:9 --no blurry --s 800 --chaos 30 --q 2"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMidjourneyQualityThreshold(t *testing.T) {
	cases := []struct {
		uniqueness int
		want       string
	}{
		{0, "--q 1"},
		{50, "--q 1"},
		{51, "--q 2"},
		{100, "--q 2"},
	}
	for _, tc := range cases {
		got := ModelMidjourney.TranslateSliders(50, 50, tc.uniqueness)
		if got.Quality != tc.want {
			t.Fatalf("uniqueness %d: got %q, want %q", tc.uniqueness, got.Quality, tc.want)
		}
	}
}

func TestNijiAlwaysPinsVersion(t *testing.T) {
	ctx := forestContext(ModelNiji.TranslateSliders(50, 50, 50))
	got := ModelNiji.FinalizePrompt(ctx)
	if !strings.HasSuffix(got, "--niji 6") {
		t.Fatalf("missing version flag: %q", got)
	}

	ctx.CreativeControlsEnabled = false
	got = ModelNiji.FinalizePrompt(ctx)
	if got != "a fox in a forest --niji 6" {
		t.Fatalf("disabled controls should leave only the version flag: %q", got)
	}
}

func TestStableDiffusionParameterLines(t *testing.T) {
	ctx := forestContext(ModelStableDiffusion.TranslateSliders(80, 30, 80))
	ctx.NegativePrompt = "blurry"
	ctx.AspectRatioDisplay = "4:3"

	got := ModelStableDiffusion.FinalizePrompt(ctx)
	lines := strings.Split(got, "\n")
	want := []string{
		"a fox in a forest",
		"Negative prompt: blurry",
		"Aspect ratio: 4:3",
		"CFG scale: 24.0",
		"Denoising strength: 0.30",
		"Clip skip: 2",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), got)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], line)
		}
	}
}

func TestStableDiffusionClipSkipThreshold(t *testing.T) {
	if got := ModelStableDiffusion.TranslateSliders(50, 50, 70); got.Quality != "" {
		t.Fatalf("uniqueness 70 should not enable clip skip: %q", got.Quality)
	}
	if got := ModelStableDiffusion.TranslateSliders(50, 50, 71); got.Quality != "Clip skip: 2" {
		t.Fatalf("uniqueness 71 should enable clip skip: %q", got.Quality)
	}
}

func TestFluxBracketBlock(t *testing.T) {
	ctx := forestContext(ModelFlux.TranslateSliders(80, 30, 60))
	ctx.AspectRatioDisplay = "16:9"

	got := ModelFlux.FinalizePrompt(ctx)
	want := "a fox in a forest\n[aspect ratio: 16:9] [guidance: 16.0] [variance: low] [steps: 38]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFluxVarianceThresholds(t *testing.T) {
	cases := []struct {
		variation int
		want      string
	}{
		{0, "[variance: low]"},
		{30, "[variance: low]"},
		{31, "[variance: moderate]"},
		{70, "[variance: moderate]"},
		{71, "[variance: high]"},
	}
	for _, tc := range cases {
		got := ModelFlux.TranslateSliders(50, tc.variation, 50)
		if got.Variation != tc.want {
			t.Fatalf("variation %d: got %q, want %q", tc.variation, got.Variation, tc.want)
		}
	}
}

func TestLeonardoInlineParameters(t *testing.T) {
	ctx := forestContext(ModelLeonardo.TranslateSliders(80, 30, 70))
	ctx.AspectRatioDisplay = "1:1"
	ctx.NegativePrompt = "text"

	got := ModelLeonardo.FinalizePrompt(ctx)
	want := "a fox in a forest [aspect: 1:1] [negative: text] [guidance_scale: 16] [init_strength: 0.30] [contrast: high]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIdeogramNeverEmitsNegativeDespiteContract(t *testing.T) {
	if !ModelIdeogram.SupportsNegativePrompt() {
		t.Fatal("ideogram contract should declare negative-prompt support")
	}
	ctx := forestContext(ModelIdeogram.TranslateSliders(50, 50, 50))
	ctx.NegativePrompt = "blurry"

	got := ModelIdeogram.FinalizePrompt(ctx)
	if strings.Contains(got, "blurry") {
		t.Fatalf("ideogram leaked negative prompt: %q", got)
	}
	if !strings.Contains(got, "[style: balanced]") || !strings.Contains(got, "[chaos: low]") {
		t.Fatalf("missing slider tokens: %q", got)
	}
}

func TestDallePrefixesAndDropsEverythingElse(t *testing.T) {
	ctx := forestContext(ModelDalle.TranslateSliders(100, 100, 100))
	ctx.NegativePrompt = "blurry"
	ctx.AspectRatioDisplay = "16:9"

	got := ModelDalle.FinalizePrompt(ctx)
	if !strings.HasPrefix(got, dallePrefix) {
		t.Fatalf("missing instruction prefix: %q", got)
	}
	if strings.Contains(got, "blurry") {
		t.Fatalf("dalle leaked negative prompt: %q", got)
	}
	if !strings.Contains(got, "16:9 aspect ratio composition") {
		t.Fatalf("missing aspect ratio prose: %q", got)
	}
}

func TestGPTImageThresholdSentences(t *testing.T) {
	ctx := forestContext(ModelGPTImage.TranslateSliders(80, 50, 80))
	ctx.NegativePrompt = "blurry"

	got := ModelGPTImage.FinalizePrompt(ctx)
	for _, fragment := range []string{
		"a fox in a forest.",
		"Avoid: blurry.",
		"Interpret the scene with bold creative liberties.",
		"Push for an unconventional, unexpected composition.",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("missing %q in %q", fragment, got)
		}
	}

	// Middle band stays silent.
	quiet := ModelGPTImage.TranslateSliders(50, 50, 50)
	if quiet.Creativity != "" || quiet.Quality != "" {
		t.Fatalf("mid-range sliders should produce no sentences: %+v", quiet)
	}
}

func TestNanoBananaSlidersHaveNoEffect(t *testing.T) {
	low := ModelNanoBanana.TranslateSliders(0, 0, 0)
	high := ModelNanoBanana.TranslateSliders(100, 100, 100)
	if low != high || low != (SliderParams{}) {
		t.Fatalf("nano-banana sliders should be inert: low=%+v high=%+v", low, high)
	}

	ctx := forestContext(SliderParams{})
	ctx.NegativePrompt = "watermarks"
	got := ModelNanoBanana.FinalizePrompt(ctx)
	if !strings.Contains(got, "Do not include watermarks.") {
		t.Fatalf("missing exclusion sentence: %q", got)
	}
}

func TestDisabledControlsDropSliderTokens(t *testing.T) {
	for _, m := range SupportedModels() {
		ctx := forestContext(m.TranslateSliders(90, 90, 90))
		ctx.CreativeControlsEnabled = false
		got := m.FinalizePrompt(ctx)
		params := ctx.SliderParams
		for _, token := range []string{params.Creativity, params.Variation, params.Quality} {
			if token == "" {
				continue
			}
			if strings.Contains(got, token) {
				t.Fatalf("%s emitted %q with controls disabled: %q", m, token, got)
			}
		}
	}
}

func TestTranslateSlidersIsTotal(t *testing.T) {
	values := []int{-50, 0, 1, 30, 31, 50, 70, 71, 100, 400}
	for _, m := range SupportedModels() {
		for _, c := range values {
			for _, v := range values {
				for _, u := range values {
					params := m.TranslateSliders(c, v, u)
					_ = params
				}
			}
		}
	}
}
