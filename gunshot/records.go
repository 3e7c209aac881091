package gunshot

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/metu-sparg/gunshot/geometry"
)

// Scene describes one gun/microphone configuration. Positions are in
// meters; the barrel direction need not be normalized.
type Scene struct {
	Label           string
	GunPosition     geometry.Vec3
	MicPosition     geometry.Vec3
	BarrelDirection geometry.Vec3
}

// Ballistics describes one gun/ammunition pairing. MuzzlePressure keeps
// the traditional kg/cm² unit of published load tables; everything else
// is SI.
type Ballistics struct {
	GunLabel       string
	AmmoLabel      string
	BulletDiameter float64 // m
	BulletLength   float64 // m
	BarrelLength   float64 // m
	MuzzlePressure float64 // kg/cm²
	ExitVelocity   float64 // m/s
}

// sceneJSON is the on-disk layout, compatible with existing geometry
// record files (positions as 3-element arrays).
type sceneJSON struct {
	Label  string     `json:"label"`
	Gun    [3]float64 `json:"xgun"`
	Mic    [3]float64 `json:"xmic"`
	Barrel [3]float64 `json:"ngun"`
}

// ballisticsJSON is the on-disk layout of existing gun record files.
type ballisticsJSON struct {
	GunLabel       string  `json:"gunlabel"`
	AmmoLabel      string  `json:"ammolabel"`
	BulletDiameter float64 `json:"bulletDiam"`
	BulletLength   float64 `json:"bulletLen"`
	BarrelLength   float64 `json:"barrelLength"`
	MuzzlePressure float64 `json:"pexit"`
	ExitVelocity   float64 `json:"uexit"`
}

func vecToArray(v geometry.Vec3) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

func arrayToVec(a [3]float64) geometry.Vec3 { return geometry.Vec3{X: a[0], Y: a[1], Z: a[2]} }

// MarshalJSON writes the Scene in the reference record layout.
func (s Scene) MarshalJSON() ([]byte, error) {
	return json.Marshal(sceneJSON{
		Label:  s.Label,
		Gun:    vecToArray(s.GunPosition),
		Mic:    vecToArray(s.MicPosition),
		Barrel: vecToArray(s.BarrelDirection),
	})
}

// UnmarshalJSON reads the Scene from the reference record layout.
func (s *Scene) UnmarshalJSON(data []byte) error {
	var raw sceneJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Label = raw.Label
	s.GunPosition = arrayToVec(raw.Gun)
	s.MicPosition = arrayToVec(raw.Mic)
	s.BarrelDirection = arrayToVec(raw.Barrel)

	return nil
}

// MarshalJSON writes the Ballistics in the reference record layout.
func (b Ballistics) MarshalJSON() ([]byte, error) {
	return json.Marshal(ballisticsJSON(b))
}

// UnmarshalJSON reads the Ballistics from the reference record layout.
func (b *Ballistics) UnmarshalJSON(data []byte) error {
	var raw ballisticsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Ballistics(raw)

	return nil
}

// Validate reports whether the ballistic parameters are physically
// usable: every dimension, pressure and speed must be positive.
func (b Ballistics) Validate() error {
	if b.BulletDiameter <= 0 || b.BulletLength <= 0 || b.BarrelLength <= 0 ||
		b.MuzzlePressure <= 0 || b.ExitVelocity <= 0 {
		return fmt.Errorf("Ballistics %q/%q: %w", b.GunLabel, b.AmmoLabel, ErrInvalidParameter)
	}

	return nil
}

// LoadScene reads a scene record from a JSON file.
func LoadScene(path string) (Scene, error) {
	var s Scene
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("LoadScene: %w", err)
	}
	if err = json.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("LoadScene %s: %w", path, err)
	}

	return s, nil
}

// SaveScene writes a scene record as a JSON file.
func SaveScene(s Scene, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("SaveScene: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("SaveScene: %w", err)
	}

	return nil
}

// LoadBallistics reads a ballistics record from a JSON file.
func LoadBallistics(path string) (Ballistics, error) {
	var b Ballistics
	data, err := os.ReadFile(path)
	if err != nil {
		return Ballistics{}, fmt.Errorf("LoadBallistics: %w", err)
	}
	if err = json.Unmarshal(data, &b); err != nil {
		return Ballistics{}, fmt.Errorf("LoadBallistics %s: %w", path, err)
	}

	return b, nil
}

// SaveBallistics writes a ballistics record as a JSON file.
func SaveBallistics(b Ballistics, path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("SaveBallistics: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("SaveBallistics: %w", err)
	}

	return nil
}

// CaliberToMeters converts a caliber (hundredths of an inch, the usual
// small-arms convention) to the bullet diameter in meters and the bore
// area in m².
func CaliberToMeters(cal float64) (diameter, boreArea float64) {
	diameter = cal * 0.0254
	r := diameter / 2

	return diameter, math.Pi * r * r
}
