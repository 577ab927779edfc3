// Package scene loads declarative scene documents and instantiates them
// through the erased item registry.
//
// A scene document is a YAML file describing a set of widget items, the
// values and links of their properties, and optional animated writes. The
// loader resolves widget kinds by name at runtime, so it only ever speaks
// the dynamic value shape; it never mentions a concrete item struct.
package scene

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/prism/pkg/animation"
	"github.com/go-drift/prism/pkg/graphics"
	"github.com/go-drift/prism/pkg/rtti"
)

// RuntimeVersion is the scene format version this loader understands.
// Documents declaring a different major version are rejected.
const RuntimeVersion = "v1.0.0"

// Document is the top-level YAML schema of a scene file.
type Document struct {
	// Runtime is the semantic version of the scene format the file was
	// written for, for example "v1.0.0".
	Runtime string `yaml:"runtime"`

	Items      []ItemConfig      `yaml:"items"`
	Links      []LinkConfig      `yaml:"links"`
	Animations []AnimationConfig `yaml:"animations"`
}

// ItemConfig declares one widget item: its registry kind, its scene name,
// and initial values for properties and plain fields.
type ItemConfig struct {
	Name       string               `yaml:"name"`
	Kind       string               `yaml:"kind"`
	Properties map[string]yaml.Node `yaml:"properties"`
	Fields     map[string]yaml.Node `yaml:"fields"`
}

// Endpoint names one property of one item.
type Endpoint struct {
	Item     string `yaml:"item"`
	Property string `yaml:"property"`
}

// LinkConfig declares a two-way link between two property endpoints.
type LinkConfig struct {
	From Endpoint `yaml:"from"`
	To   Endpoint `yaml:"to"`
}

// AnimationConfig declares an animated write applied after the scene is
// built.
type AnimationConfig struct {
	Item     string    `yaml:"item"`
	Property string    `yaml:"property"`
	To       yaml.Node `yaml:"to"`

	DurationMS int       `yaml:"duration_ms"`
	DelayMS    int       `yaml:"delay_ms"`
	Iterations int       `yaml:"iterations"`
	Easing     yaml.Node `yaml:"easing"`
}

// Item is one instantiated widget in a built scene.
type Item struct {
	Name string
	Kind rtti.ItemType
	Ptr  any
}

// Scene is a built scene: the instantiated items, addressable by name.
type Scene struct {
	Items []*Item

	byName map[string]*Item
}

// Item returns the named item, if the scene has one.
func (s *Scene) Item(name string) (*Item, bool) {
	it, ok := s.byName[name]
	return it, ok
}

// Load reads and builds a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return Build(&doc)
}

// Build instantiates a parsed document.
func Build(doc *Document) (*Scene, error) {
	if err := checkRuntime(doc.Runtime); err != nil {
		return nil, err
	}

	s := &Scene{byName: make(map[string]*Item)}
	for _, cfg := range doc.Items {
		item, err := buildItem(cfg)
		if err != nil {
			return nil, err
		}
		if _, dup := s.byName[item.Name]; dup {
			return nil, fmt.Errorf("scene: duplicate item name %q", item.Name)
		}
		s.byName[item.Name] = item
		s.Items = append(s.Items, item)
	}

	for _, link := range doc.Links {
		if err := s.applyLink(link); err != nil {
			return nil, err
		}
	}
	for _, anim := range doc.Animations {
		if err := s.applyAnimation(anim); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// checkRuntime validates the document's declared format version against
// the loader's. Only the major version has to agree.
func checkRuntime(v string) error {
	if v == "" {
		return fmt.Errorf("scene: document does not declare a runtime version")
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("scene: invalid runtime version %q", v)
	}
	if semver.Major(v) != semver.Major(RuntimeVersion) {
		return fmt.Errorf("scene: runtime version %s is not compatible with %s", v, RuntimeVersion)
	}
	return nil
}

func buildItem(cfg ItemConfig) (*Item, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("scene: item with kind %q has no name", cfg.Kind)
	}
	kind, ok := rtti.LookupItem(cfg.Kind)
	if !ok {
		return nil, fmt.Errorf("scene: item %q has unknown kind %q", cfg.Name, cfg.Kind)
	}
	ptr := kind.New()

	for name, node := range cfg.Properties {
		v, err := decodeValue(&node)
		if err != nil {
			return nil, fmt.Errorf("scene: item %q property %q: %w", cfg.Name, name, err)
		}
		if err := kind.SetProperty(ptr, name, v, nil); err != nil {
			return nil, fmt.Errorf("scene: item %q: %w", cfg.Name, err)
		}
	}
	for name, node := range cfg.Fields {
		v, err := decodeValue(&node)
		if err != nil {
			return nil, fmt.Errorf("scene: item %q field %q: %w", cfg.Name, name, err)
		}
		if err := kind.SetField(ptr, name, v); err != nil {
			return nil, fmt.Errorf("scene: item %q: %w", cfg.Name, err)
		}
	}
	return &Item{Name: cfg.Name, Kind: kind, Ptr: ptr}, nil
}

func (s *Scene) applyLink(link LinkConfig) error {
	from, ok := s.byName[link.From.Item]
	if !ok {
		return fmt.Errorf("scene: link names unknown item %q", link.From.Item)
	}
	to, ok := s.byName[link.To.Item]
	if !ok {
		return fmt.Errorf("scene: link names unknown item %q", link.To.Item)
	}
	peer, err := to.Kind.PropertyHandle(to.Ptr, link.To.Property)
	if err != nil {
		return fmt.Errorf("scene: link: %w", err)
	}
	if err := from.Kind.LinkTwoWay(from.Ptr, link.From.Property, peer); err != nil {
		return fmt.Errorf("scene: link %s.%s to %s.%s: %w",
			link.From.Item, link.From.Property, link.To.Item, link.To.Property, err)
	}
	return nil
}

func (s *Scene) applyAnimation(cfg AnimationConfig) error {
	item, ok := s.byName[cfg.Item]
	if !ok {
		return fmt.Errorf("scene: animation names unknown item %q", cfg.Item)
	}
	target, err := decodeValue(&cfg.To)
	if err != nil {
		return fmt.Errorf("scene: animation on %s.%s: %w", cfg.Item, cfg.Property, err)
	}
	easing, err := decodeEasing(&cfg.Easing)
	if err != nil {
		return fmt.Errorf("scene: animation on %s.%s: %w", cfg.Item, cfg.Property, err)
	}
	anim := animation.PropertyAnimation{
		Duration:   time.Duration(cfg.DurationMS) * time.Millisecond,
		Delay:      time.Duration(cfg.DelayMS) * time.Millisecond,
		Iterations: cfg.Iterations,
		Easing:     easing,
	}
	if err := item.Kind.SetProperty(item.Ptr, cfg.Property, target, &anim); err != nil {
		return fmt.Errorf("scene: animation on %s.%s: %w", cfg.Item, cfg.Property, err)
	}
	return nil
}

// decodeValue converts a YAML literal into a dynamic value. Scalars map
// directly, strings starting with '#' are parsed as colors, and the
// mapping forms {resource: path} and {easing: ...} load a resource from
// disk and build an easing curve.
func decodeValue(node *yaml.Node) (rtti.Value, error) {
	if node.Kind == 0 {
		return rtti.Value{}, fmt.Errorf("missing value")
	}
	if node.Kind == yaml.MappingNode {
		return decodeMappingValue(node)
	}

	var b bool
	if err := node.Decode(&b); err == nil {
		return rtti.MustValue(b), nil
	}
	var i int64
	if err := node.Decode(&i); err == nil {
		return rtti.MustValue(i), nil
	}
	var f float64
	if err := node.Decode(&f); err == nil {
		return rtti.MustValue(f), nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return rtti.Value{}, fmt.Errorf("unsupported value %q", node.Value)
	}
	if strings.HasPrefix(s, "#") {
		c, err := graphics.ParseColor(s)
		if err != nil {
			return rtti.Value{}, err
		}
		return rtti.MustValue(c), nil
	}
	return rtti.MustValue(s), nil
}

// decodeMappingValue handles the tagged mapping forms of a value literal.
func decodeMappingValue(node *yaml.Node) (rtti.Value, error) {
	var res struct {
		Resource string    `yaml:"resource"`
		Easing   yaml.Node `yaml:"easing"`
	}
	if err := node.Decode(&res); err != nil {
		return rtti.Value{}, err
	}
	switch {
	case res.Resource != "":
		r, err := graphics.LoadResource(res.Resource)
		if err != nil {
			return rtti.Value{}, err
		}
		return rtti.MustValue(r), nil
	case res.Easing.Kind != 0:
		e, err := decodeEasing(&res.Easing)
		if err != nil {
			return rtti.Value{}, err
		}
		return rtti.MustValue(e), nil
	default:
		return rtti.Value{}, fmt.Errorf("unsupported value mapping")
	}
}

// decodeEasing accepts a named curve ("linear", "ease", "ease-in",
// "ease-out", "ease-in-out") or a four-element control point list. An
// absent node means linear.
func decodeEasing(node *yaml.Node) (animation.EasingCurve, error) {
	if node == nil || node.Kind == 0 {
		return animation.EasingCurve{}, nil
	}
	if node.Kind == yaml.SequenceNode {
		var pts []float64
		if err := node.Decode(&pts); err != nil {
			return animation.EasingCurve{}, err
		}
		if len(pts) != 4 {
			return animation.EasingCurve{}, fmt.Errorf("easing control points need 4 values, got %d", len(pts))
		}
		return animation.CubicBezier(pts[0], pts[1], pts[2], pts[3]), nil
	}
	var name string
	if err := node.Decode(&name); err != nil {
		return animation.EasingCurve{}, err
	}
	switch name {
	case "", "linear":
		return animation.EasingCurve{}, nil
	case "ease":
		return animation.Ease, nil
	case "ease-in":
		return animation.EaseIn, nil
	case "ease-out":
		return animation.EaseOut, nil
	case "ease-in-out":
		return animation.EaseInOut, nil
	default:
		return animation.EasingCurve{}, fmt.Errorf("unknown easing %q", name)
	}
}
