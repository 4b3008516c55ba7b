package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ExperienceFile = "experience.yaml"
	ConsoleFile    = "console.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Seconds is a duration written in yaml as a number of seconds.
type Seconds float64

func (s Seconds) Duration() time.Duration {
	return time.Duration(float64(s) * float64(time.Second))
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type ExperienceSpec struct {
	Boot   BootSpec            `yaml:"boot"`
	Camera CameraSpec          `yaml:"camera"`
	Views  map[string]ViewSpec `yaml:"views"`
	Stream StreamSpec          `yaml:"stream"`
	Rings  RingsSpec           `yaml:"rings"`
	Grid   GridSpec            `yaml:"grid"`
	Fog    FogSpec             `yaml:"fog"`
	Reveal RevealSpec          `yaml:"reveal"`
	Nodes  NodesSpec           `yaml:"nodes"`
	Audio  AudioSpec           `yaml:"audio"`
	Resume ResumeSpec          `yaml:"resume"`
}

type BootSpec struct {
	Lines     []string `yaml:"lines"`
	CharDelay Seconds  `yaml:"char_delay"`
	LinePause Seconds  `yaml:"line_pause"`
	Prompt    string   `yaml:"prompt"`
}

type CameraSpec struct {
	FOV           float64  `yaml:"fov"`
	Near          float64  `yaml:"near"`
	Far           float64  `yaml:"far"`
	Start         Vec3Spec `yaml:"start"`
	IntroDuration Seconds  `yaml:"intro_duration"`
	IntroEase     string   `yaml:"intro_ease"`
	MoveDuration  Seconds  `yaml:"move_duration"`
	MoveEase      string   `yaml:"move_ease"`
}

type ViewSpec struct {
	Position Vec3Spec `yaml:"position"`
	LookAt   Vec3Spec `yaml:"look_at"`
}

type StreamSpec struct {
	Count  int       `yaml:"count"`
	Radius float64   `yaml:"radius"`
	Length float64   `yaml:"length"`
	Margin float64   `yaml:"margin"`
	Speed  float64   `yaml:"speed"`
	Size   float64   `yaml:"size"`
	Color  YAMLColor `yaml:"color"`
}

type RingsSpec struct {
	Count     int       `yaml:"count"`
	MaxRadius float64   `yaml:"max_radius"`
	Tube      float64   `yaml:"tube"`
	Margin    float64   `yaml:"margin"`
	Color     YAMLColor `yaml:"color"`
	Opacity   float64   `yaml:"opacity"`
	SpinMin   Seconds   `yaml:"spin_min"`
	SpinSpan  Seconds   `yaml:"spin_span"`
}

type GridSpec struct {
	Y           float64   `yaml:"y"`
	Size        float64   `yaml:"size"`
	Divisions   int       `yaml:"divisions"`
	Color       YAMLColor `yaml:"color"`
	OpacityFrom float64   `yaml:"opacity_from"`
	OpacityTo   float64   `yaml:"opacity_to"`
	Period      Seconds   `yaml:"period"`
}

type FogSpec struct {
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

type TitleSpec struct {
	Text     string    `yaml:"text"`
	Size     float64   `yaml:"size"`
	Position Vec3Spec  `yaml:"position"`
	Color    YAMLColor `yaml:"color"`
	// Rise is the y offset the title eases in from.
	Rise      float64 `yaml:"rise"`
	FadeDelay Seconds `yaml:"fade_delay"`
	MoveDelay Seconds `yaml:"move_delay"`
}

type RevealSpec struct {
	Font      string    `yaml:"font"`
	Main      TitleSpec `yaml:"main"`
	Sub       TitleSpec `yaml:"sub"`
	Camera    ViewSpec  `yaml:"camera"`
	Tint      Vec3Spec  `yaml:"tint"`
	TintDelay Seconds   `yaml:"tint_delay"`
	Veil      Seconds   `yaml:"veil"`
}

type NodeSpec struct {
	Name     string    `yaml:"name"`
	Position Vec3Spec  `yaml:"position"`
	Color    YAMLColor `yaml:"color"`
}

type NodesSpec struct {
	Radius float64    `yaml:"radius"`
	Script string     `yaml:"script"`
	List   []NodeSpec `yaml:"list"`
}

type AudioSpec struct {
	Track  string  `yaml:"track"`
	Volume float64 `yaml:"volume"`
}

type ResumeSpec struct {
	File         string `yaml:"file"`
	DownloadName string `yaml:"download_name"`
}

type ConsoleSpec struct {
	Prompt  string   `yaml:"prompt"`
	Welcome []string `yaml:"welcome"`
	Help    []string `yaml:"help"`
}

func LoadExperienceSpec() (*ExperienceSpec, error) {
	spec, err := LoadSpec[ExperienceSpec](ExperienceFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", ExperienceFile, err)
	}
	return &spec, nil
}

func LoadConsoleSpec() (*ConsoleSpec, error) {
	spec, err := LoadSpec[ConsoleSpec](ConsoleFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// RequiredViews are the camera views every experience must define.
var RequiredViews = []string{"home", "projects", "experience", "contact"}

func (s *ExperienceSpec) Validate() error {
	for _, name := range RequiredViews {
		if _, ok := s.Views[name]; !ok {
			return fmt.Errorf("missing camera view %q", name)
		}
	}
	if s.Stream.Length <= 0 {
		return fmt.Errorf("stream length must be positive")
	}
	if s.Stream.Count < 0 || s.Rings.Count < 0 {
		return fmt.Errorf("stream and ring counts must not be negative")
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour as color.RGBA, white when unset.
func (c YAMLColor) RGBA8() color.RGBA {
	if c.Color == nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
